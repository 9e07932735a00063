package handler

import (
	domainerrors "vitae/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate fills req from the body (JSON or form, by content type) and validates it.
// Failures are returned as validation errors for the centralized error handler.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
