package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devflow_workspace/dto"
	"devflow_workspace/services"
)

// ListUsersHandler serves GET /api/users: every user, no paging.
func ListUsersHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestCtx(c)
		defer cancel()

		users, err := services.ListUsers(ctx, db)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusOK, users)
	}
}

func CreateUserHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CreateUserDTO
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		user, err := services.CreateUser(ctx, db, body)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusCreated, user)
	}
}

func GetUsersHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var page dto.PageDTO
		if err := c.QueryParser(&page); err != nil {
			return badBody(c)
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		result, err := services.GetUsers(ctx, db, page)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusOK, result)
	}
}

func GetUserHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestCtx(c)
		defer cancel()

		profile, err := services.GetUserByID(ctx, db, dto.GetUserDTO{UserID: c.Params("id")})
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusOK, profile)
	}
}

func GetUserQuestionsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.GetUserDTO
		if err := c.QueryParser(&body.PageDTO); err != nil {
			return badBody(c)
		}
		body.UserID = c.Params("id")

		ctx, cancel := requestCtx(c)
		defer cancel()

		result, err := services.GetUserQuestions(ctx, db, body)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusOK, result)
	}
}

func GetUserAnswersHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.GetUserDTO
		if err := c.QueryParser(&body.PageDTO); err != nil {
			return badBody(c)
		}
		body.UserID = c.Params("id")

		ctx, cancel := requestCtx(c)
		defer cancel()

		result, err := services.GetUserAnswers(ctx, db, body)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusOK, result)
	}
}
