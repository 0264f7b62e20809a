package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devflow_workspace/dto"
	"devflow_workspace/internal/apperr"
)

// A cancelled caller must cancel the request context so in-flight
// transactions abort with it.
func TestRequestCtxFollowsCaller(t *testing.T) {
	app := fiber.New()
	var cancelled bool
	app.Get("/", func(c *fiber.Ctx) error {
		parent, cancel := context.WithCancel(context.Background())
		c.SetUserContext(parent)
		cancel()

		ctx, done := requestCtx(c)
		defer done()

		select {
		case <-ctx.Done():
			cancelled = true
		default:
		}
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))

	require.NoError(t, err)
	assert.True(t, cancelled)
}

func TestErrorHandlerEnvelope(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/unauthorized", func(c *fiber.Ctx) error { return apperr.Unauthorized() })
	app.Get("/fiber-error", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/unauthorized", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body dto.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "you must be logged in", body.Error.Message)

	resp, err = app.Test(httptest.NewRequest("GET", "/fiber-error", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	body = dto.Response{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "short and stout", body.Error.Message)
}
