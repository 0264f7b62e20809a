package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"devflow_workspace/internal/apperr"
)

// RequireAuth rejects requests that reached here without an authenticated
// user id in Locals. Rejections go through the shared error envelope.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := c.Locals("user_id").(string)
		if !ok || strings.TrimSpace(uid) == "" {
			return apperr.Unauthorized()
		}
		return c.Next()
	}
}
