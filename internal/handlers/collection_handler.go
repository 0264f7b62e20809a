package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devflow_workspace/dto"
	"devflow_workspace/internal/authctx"
	"devflow_workspace/services"
)

func ToggleSaveHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CollectionBaseDTO
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		result, err := services.ToggleSaveQuestion(ctx, db, body, authctx.SessionFrom(c))
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusOK, result)
	}
}

func HasSavedHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := dto.CollectionBaseDTO{QuestionID: c.Query("questionId")}

		ctx, cancel := requestCtx(c)
		defer cancel()

		result, err := services.HasSavedQuestion(ctx, db, body, authctx.SessionFrom(c))
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusOK, result)
	}
}

func GetSavedQuestionsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var page dto.PageDTO
		if err := c.QueryParser(&page); err != nil {
			return badBody(c)
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		result, err := services.GetSavedQuestions(ctx, db, page, authctx.SessionFrom(c))
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusOK, result)
	}
}
