package errors

import (
	"fmt"
	"net/http"
)

// HTTPError carries the status code and the client-visible message of a failed request.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "Bad Request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "Not Found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too Many Requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
)
