// Package validator adapts go-playground/validator to echo and the GraphQL resolvers.
package validator

import (
	"strings"

	domainerrors "eats/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator validates struct tags and reports failures as ErrValidationFailed.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator. It satisfies echo.Validator.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks i and returns a validation error listing the failing fields.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Namespace()+" failed on "+fe.Tag())
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(fields, "; "))
}
