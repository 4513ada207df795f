package errors

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Display       string `json:"message"`
	InternalError string `json:"internal_error,omitempty"`
}

// NewErrorResponse builds the response body for an error, surfacing hints to
// the caller and keeping the internal chain for logs.
func NewErrorResponse(err error) ErrorResponse {
	display := strings.Join(errors.GetAllHints(err), "; ")
	if display == "" {
		display = err.Error()
	}

	return ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Display:       display,
			InternalError: err.Error(),
		},
	}
}
