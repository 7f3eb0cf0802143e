package todo

// --- Todo Domain Model ---

// Todo is the core domain entity managed by this module.
type Todo struct {
	ID          string
	Title       string
	Description string
	IsCompleted bool
}

// TodoDTO is the wire-facing shape returned by the UseCase.
// It mirrors Todo so the transport layer never depends on the entity itself.
type TodoDTO struct {
	ID          string
	Title       string
	Description string
	IsCompleted bool
}

// --- UseCase Inputs ---

// CreateTodoInput is the caller-supplied todo. A nil Description is stored as "".
type CreateTodoInput struct {
	ID          string
	Title       string
	Description *string
	IsCompleted bool
}

// UpdateTodoInput holds the fields to overlay on the stored todo.
// A nil field keeps the stored value; a non-nil one overwrites it, even when empty.
type UpdateTodoInput struct {
	Title       *string
	Description *string
	IsCompleted *bool
}
