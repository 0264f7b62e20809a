// Package guard is the single gate every mutation and query passes through
// before touching storage: validate the input DTO against its declared
// schema, then enforce authentication when the operation demands it.
package guard

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"

	"devflow_workspace/internal/apperr"
	"devflow_workspace/internal/authctx"
)

type Options struct {
	// Authorize requires a resolved session; the guard never downgrades a
	// missing session to anonymous.
	Authorize bool
	Session   *authctx.Session
}

var (
	once     sync.Once
	validate *validator.Validate
)

func validatorInstance() *validator.Validate {
	once.Do(func() {
		v := validator.New()

		// Report field names by their json tag so error maps match the wire.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := fld.Tag.Get("json")
			if name == "" {
				return fld.Name
			}
			for i := 0; i < len(name); i++ {
				if name[i] == ',' {
					return name[:i]
				}
			}
			return name
		})

		_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
			_, err := bson.ObjectIDFromHex(fl.Field().String())
			return err == nil
		})

		validate = v
	})
	return validate
}

// Check validates params and, when opts.Authorize is set, requires a
// session. On success it returns the caller's session (nil for anonymous
// operations). It performs no storage access.
func Check(params any, opts Options) (*authctx.Session, error) {
	if err := validatorInstance().Struct(params); err != nil {
		return nil, toValidationError(err)
	}

	if opts.Authorize && opts.Session == nil {
		return nil, apperr.Unauthorized()
	}

	return opts.Session, nil
}

func toValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.Internal(err.Error())
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], friendlyMessage(fe))
	}
	return apperr.Validation(fields)
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	case "oneof":
		return "must be one of: " + e.Param()
	case "alphanum":
		return "must contain only letters and numbers"
	case "objectid":
		return "must be a valid id"
	default:
		return "is invalid"
	}
}
