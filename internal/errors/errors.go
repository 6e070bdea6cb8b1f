package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrCredentialsTaken is returned when registering an email that already exists.
	ErrCredentialsTaken = errors.New("credentials taken")
	// ErrInvalidCredentials is returned on login with an unknown email or a
	// wrong password. The two causes share one error so responses cannot
	// reveal which occurred.
	ErrInvalidCredentials = errors.New("credentials incorrect")
	// ErrAccessDenied is returned when a caller tries to mutate a todo that
	// does not exist or belongs to another user.
	ErrAccessDenied = errors.New("access to resource denied")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrCredentialsTaken):
		return NewHTTPError(http.StatusForbidden, err.Error(), "CREDENTIALS_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusForbidden, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrAccessDenied):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ACCESS_DENIED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
