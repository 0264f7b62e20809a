package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devflow_workspace/configs"
	"devflow_workspace/dto"
	"devflow_workspace/services"
)

func SignUpHandler(db *mongo.Database, cfg *configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.SignUpDTO
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		resp, err := services.SignUp(ctx, db, cfg, body)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusCreated, resp)
	}
}

func SignInHandler(db *mongo.Database, cfg *configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.SignInDTO
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		resp, err := services.SignIn(ctx, db, cfg, body)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusOK, resp)
	}
}
