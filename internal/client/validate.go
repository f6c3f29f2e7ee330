package client

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "vendorpanel/pkg/errors"
)

// validationError converts a validator failure into a user-facing AppError
// before anything is sent to the backend.
func validationError(err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) && len(validationErr) > 0 {
		fieldErr := validationErr[0]
		field := strings.ToLower(fieldErr.Field())

		var message string
		switch fieldErr.Tag() {
		case "required":
			message = field + " is required"
		case "oneof":
			message = field + " must be one of: " + fieldErr.Param()
		case "gt":
			message = field + " must be greater than " + fieldErr.Param()
		case "min":
			message = field + " must be at least " + fieldErr.Param()
		case "max":
			message = field + " must be at most " + fieldErr.Param()
		case "email":
			message = field + " must be a valid email address"
		default:
			message = field + " is invalid"
		}
		return apperrors.New("VALIDATION_ERROR", message, http.StatusBadRequest, err)
	}
	return apperrors.BadRequest("invalid input", err)
}
