package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devflow_workspace/internal/handlers"
)

func requireAuthApp(pre fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	if pre != nil {
		app.Use(pre)
	}
	app.Use(RequireAuth())
	app.Get("/secure", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	app := requireAuthApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/secure", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "you must be logged in", body.Error.Message)
}

func TestRequireAuthAllowsAuthenticated(t *testing.T) {
	app := requireAuthApp(func(c *fiber.Ctx) error {
		c.Locals("user_id", "68bf0f1a2a3c4d5e6f708091")
		return c.Next()
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/secure", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAuthRejectsBlankUserID(t *testing.T) {
	app := requireAuthApp(func(c *fiber.Ctx) error {
		c.Locals("user_id", "  ")
		return c.Next()
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/secure", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.False(t, body.Success)
}
