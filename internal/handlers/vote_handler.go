package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devflow_workspace/dto"
	"devflow_workspace/internal/authctx"
	"devflow_workspace/services"
)

func CreateVoteHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CreateVoteDTO
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		if err := services.CreateVote(ctx, db, body, authctx.SessionFrom(c)); err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusOK, nil)
	}
}

func HasVotedHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := dto.HasVotedDTO{
			TargetID:   c.Query("targetId"),
			TargetType: c.Query("targetType"),
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		result, err := services.HasVoted(ctx, db, body, authctx.SessionFrom(c))
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusOK, result)
	}
}
