// Package validator plugs request normalisation and struct validation into echo.
package validator

import (
	"context"

	"vitae/internal/domain/entity"

	"github.com/go-playground/mold/v4"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator implements echo.Validator. Fields are first normalised through their
// `mod` tags (e.g. trim) and then checked against their `validate` tags.
type Validator struct {
	modifier *mold.Transformer
	validate *validator.Validate
}

// New creates a Validator with required-struct checks enabled and the
// `username` tag registered.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or nil func.
	_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return entity.IsValidUsername(fl.Field().String())
	})

	return &Validator{
		modifier: modifiers.New(),
		validate: validate,
	}
}

// Validate normalises and validates i, which must be a pointer to a struct.
func (v *Validator) Validate(i any) error {
	if err := v.modifier.Struct(context.Background(), i); err != nil {
		return errors.Wrap(err, "failed to normalise request")
	}

	return v.validate.Struct(i)
}
