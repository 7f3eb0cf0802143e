package http

import (
	"errors"
	"net/http"

	"todo-api/internal/todo"
	pkgErrors "todo-api/pkg/errors"
)

const (
	msgTodoNotFound       = "ToDo not found"
	msgInvalidRequestBody = "Invalid request body"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything unrecognised becomes an opaque 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, todo.ErrTodoNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, msgTodoNotFound)
	case errors.Is(err, todo.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msgInvalidRequestBody)
	default:
		return pkgErrors.ErrInternalServerError
	}
}
