// Package authctx turns the ambient request identity into an explicit
// session value that services receive as a parameter.
package authctx

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type Session struct {
	UserID bson.ObjectID
	Name   string
	Image  string
}

// SessionFrom reads the user id the JWT middleware left in Locals.
// Returns nil when the caller is unauthenticated.
func SessionFrom(c *fiber.Ctx) *Session {
	v := c.Locals("user_id")
	if v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	oid, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return nil
	}
	return &Session{UserID: oid}
}
