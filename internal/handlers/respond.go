package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"devflow_workspace/dto"
	"devflow_workspace/internal/apperr"
)

const requestTimeout = 5 * time.Second

// requestCtx bounds the request's storage work and follows the caller: a
// client disconnect cancels any in-flight transaction.
func requestCtx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), requestTimeout)
}

func ok(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(dto.OK(data))
}

// fail normalizes any error into the envelope; nothing escapes un-normalized.
func fail(c *fiber.Ctx, err error) error {
	ae := apperr.Normalize(err)
	return c.Status(ae.Status()).JSON(dto.Fail(ae.Message, ae.Fields))
}

func badBody(c *fiber.Ctx) error {
	return fail(c, apperr.Validation(map[string][]string{"body": {"invalid request body"}}))
}

// ErrorHandler renders errors that escape a handler, middleware rejections
// included, in the same envelope as fail. Wired into fiber.Config.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.Fail(fe.Message, nil))
	}
	return fail(c, err)
}
