package todo

import "errors"

var (
	ErrTodoNotFound   = errors.New("ToDo not found")
	ErrInvalidPayload = errors.New("invalid payload")
)
