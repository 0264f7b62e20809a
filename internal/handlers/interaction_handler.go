package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devflow_workspace/dto"
	"devflow_workspace/internal/authctx"
	"devflow_workspace/services"
)

func CreateInteractionHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CreateInteractionDTO
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		interaction, err := services.CreateInteraction(ctx, db, body, authctx.SessionFrom(c))
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusCreated, interaction)
	}
}
