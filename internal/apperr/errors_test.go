package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest, Validation(nil).Status())
	assert.Equal(t, fiber.StatusNotFound, NotFound("Question").Status())
	assert.Equal(t, fiber.StatusUnauthorized, Unauthorized().Status())
	assert.Equal(t, fiber.StatusForbidden, Forbidden("no").Status())
	assert.Equal(t, fiber.StatusConflict, Conflict("dup").Status())
	assert.Equal(t, fiber.StatusInternalServerError, Internal("boom").Status())
}

func TestNormalizePassesThrough(t *testing.T) {
	want := NotFound("Answer")

	got := Normalize(fmt.Errorf("wrapped: %w", want))

	assert.Same(t, want, got)
}

func TestNormalizeDuplicateKey(t *testing.T) {
	err := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000}},
	}

	got := Normalize(err)

	assert.Equal(t, KindConflict, got.Kind)
}

func TestNormalizeNoDocuments(t *testing.T) {
	got := Normalize(mongo.ErrNoDocuments)

	assert.Equal(t, KindNotFound, got.Kind)
}

func TestNormalizeUnknown(t *testing.T) {
	got := Normalize(errors.New("disk on fire"))

	assert.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, "disk on fire", got.Message)
}
