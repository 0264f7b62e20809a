package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devflow_workspace/dto"
	"devflow_workspace/services"
)

func ListAccountsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestCtx(c)
		defer cancel()

		accounts, err := services.ListAccounts(ctx, db)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusOK, accounts)
	}
}

func CreateAccountHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CreateAccountDTO
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		account, err := services.CreateAccount(ctx, db, body)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusCreated, account)
	}
}
