package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devflow_workspace/dto"
	"devflow_workspace/services"
)

func GetTagsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var page dto.PageDTO
		if err := c.QueryParser(&page); err != nil {
			return badBody(c)
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		result, err := services.GetTags(ctx, db, page)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusOK, result)
	}
}

func GetTagQuestionsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var page dto.PageDTO
		if err := c.QueryParser(&page); err != nil {
			return badBody(c)
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		result, err := services.GetTagQuestions(ctx, db, c.Params("id"), page)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusOK, result)
	}
}
