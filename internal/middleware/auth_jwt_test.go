package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devflow_workspace/dto"
	"devflow_workspace/internal/handlers"
)

const testSecret = "test-secret"

func jwtApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Use(JWTAuth(testSecret))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		return c.SendString(uid)
	})
	return app
}

func signed(t *testing.T, secret, sub string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func decodeEnvelope(t *testing.T, resp *http.Response) dto.Response {
	t.Helper()
	var body dto.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestJWTAuthAnonymousPassesThrough(t *testing.T) {
	app := jwtApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTAuthValidToken(t *testing.T) {
	app := jwtApp(t)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signed(t, testSecret, "68bf0f1a2a3c4d5e6f708091"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := make([]byte, 64)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, "68bf0f1a2a3c4d5e6f708091", string(body[:n]))
}

func TestJWTAuthInvalidToken(t *testing.T) {
	app := jwtApp(t)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signed(t, "wrong-secret", "abc"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "invalid token", body.Error.Message)
}

func TestJWTAuthMissingSubject(t *testing.T) {
	app := jwtApp(t)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signed(t, testSecret, ""))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "missing uid/sub", body.Error.Message)
}
