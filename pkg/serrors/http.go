package serrors

import (
	"errors"
	"net/http"
)

// HTTPStatus maps err to the HTTP status code that should be returned to the
// client. Errors without a known kind map to 500.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed
	case errors.Is(err, ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message that is safe to show to a client. Messages
// of client-side kinds are passed through; anything else is replaced by a
// generic text so internal details never leak.
func PublicMessage(err error) string {
	var se *Error
	if errors.As(err, &se) && HTTPStatus(err) < http.StatusInternalServerError && se.msg != "" {
		return se.msg
	}

	return http.StatusText(HTTPStatus(err))
}
