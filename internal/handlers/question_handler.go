package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devflow_workspace/dto"
	"devflow_workspace/internal/authctx"
	"devflow_workspace/services"
)

func CreateQuestionHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.AskQuestionDTO
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		question, err := services.CreateQuestion(ctx, db, body, authctx.SessionFrom(c))
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusCreated, question)
	}
}

func EditQuestionHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.EditQuestionDTO
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}
		body.QuestionID = c.Params("id")

		ctx, cancel := requestCtx(c)
		defer cancel()

		question, err := services.EditQuestion(ctx, db, body, authctx.SessionFrom(c))
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusOK, question)
	}
}

func GetQuestionHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestCtx(c)
		defer cancel()

		question, err := services.GetQuestion(ctx, db, dto.GetQuestionDTO{QuestionID: c.Params("id")})
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusOK, question)
	}
}

func IncrementViewsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestCtx(c)
		defer cancel()

		if err := services.IncrementViews(ctx, db, dto.GetQuestionDTO{QuestionID: c.Params("id")}); err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusOK, nil)
	}
}

func GetQuestionsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var page dto.PageDTO
		if err := c.QueryParser(&page); err != nil {
			return badBody(c)
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		result, err := services.GetQuestions(ctx, db, page)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusOK, result)
	}
}

func GetQuestionAnswersHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.GetAnswersDTO
		if err := c.QueryParser(&body.PageDTO); err != nil {
			return badBody(c)
		}
		body.QuestionID = c.Params("id")

		ctx, cancel := requestCtx(c)
		defer cancel()

		result, err := services.GetAnswers(ctx, db, body)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusOK, result)
	}
}
