// Package apperr defines the error taxonomy every mutation boundary
// normalizes into before anything reaches the wire.
package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindConflict
)

type Error struct {
	Kind    Kind
	Message string
	// Fields is populated for validation errors only: field -> messages.
	Fields map[string][]string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	case KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func Validation(fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Message: "you must be logged in"}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}

// Normalize folds an arbitrary error into the taxonomy. Mongo duplicate-key
// writes (code 11000) become conflicts; everything unrecognized is internal.
func Normalize(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	if mongo.IsDuplicateKeyError(err) {
		return Conflict("a record with the same unique key already exists")
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return NotFound("resource")
	}
	return Internal(err.Error())
}
