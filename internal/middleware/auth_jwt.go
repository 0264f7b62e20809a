package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"devflow_workspace/internal/apperr"
)

// JWTAuth parses an optional bearer token and stores the caller's user id in
// Locals. Requests without a token pass through as anonymous; invalid tokens
// are rejected outright.
func JWTAuth(secret string) fiber.Handler {
	type claims struct {
		UID string `json:"uid,omitempty"`
		jwt.RegisteredClaims
	}

	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Next()
		}
		if secret == "" {
			return &apperr.Error{Kind: apperr.KindUnauthorized, Message: "missing JWT_SECRET"}
		}

		tokenStr := strings.TrimSpace(auth[7:])
		var cl claims

		token, err := jwt.ParseWithClaims(
			tokenStr,
			&cl,
			func(t *jwt.Token) (any, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return &apperr.Error{Kind: apperr.KindUnauthorized, Message: "invalid token"}
		}

		uid := cl.UID
		if uid == "" {
			uid = cl.Subject
		}
		if uid == "" {
			return &apperr.Error{Kind: apperr.KindUnauthorized, Message: "missing uid/sub"}
		}

		c.Locals("user_id", uid)
		return c.Next()
	}
}
