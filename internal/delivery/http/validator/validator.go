// Package validator wires go-playground/validator into Echo's binding.
package validator

import (
	"fmt"
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator instance for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a new validator for Echo.
func New() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Failures surface as a 400 validation
// error carrying the offending fields.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				fields = append(fields, fmt.Sprintf("%s (%s)", fieldErr.Field(), fieldErr.Tag()))
			}

			return domainerrors.ErrValidationFailed.WithDetails(strings.Join(fields, ", "))
		}

		return domainerrors.ErrValidationFailed
	}

	return nil
}
