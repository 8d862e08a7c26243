package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/pulse"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/workforce"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	// Workforce domain errors
	case errors.Is(err, workforce.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Pulse domain errors
	case errors.Is(err, pulse.ErrInvalidSnoozeDuration):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, pulse.ErrMissingExceptionID):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
