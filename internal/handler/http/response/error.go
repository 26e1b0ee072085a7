package response

import (
	"errors"
	"net/http"

	"github.com/attendly/attendance-gateway/internal/domain/attendance"
	"github.com/attendly/attendance-gateway/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, attendance.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, attendance.ErrUpstreamUnavailable):
		BadGateway(w, "Attendance service is unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
