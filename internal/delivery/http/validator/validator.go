// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	domainerrors "quill/internal/domain/errors"
)

// CustomValidator wraps a single validator instance; it caches struct
// metadata and is safe for concurrent use.
type CustomValidator struct {
	validate *validator.Validate
}

// New constructs the validator used by the echo server.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Schema violations come back as the
// application's validation error with per-field details attached.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	ok := false
	if ve, isVE := err.(validator.ValidationErrors); isVE {
		fieldErrs = ve
		ok = true
	}
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	violations := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, fe.Field()+": "+fe.Tag())
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(violations, "; "))
}
