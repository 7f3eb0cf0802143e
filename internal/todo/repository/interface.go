package repository

import (
	"context"

	"todo-api/internal/todo"
)

// Repository is the storage abstraction for Todo records.
// Not-found is reported through the bool results, never as an error.
type Repository interface {
	// GetAll returns every stored todo in implementation-defined order.
	GetAll(ctx context.Context) ([]todo.Todo, error)
	// GetByID returns the first todo whose ID matches exactly.
	GetByID(ctx context.Context, id string) (todo.Todo, bool, error)
	// Create stores t as given and returns the stored representation.
	Create(ctx context.Context, t todo.Todo) (todo.Todo, error)
	// Update replaces the stored todo carrying t.ID with t.
	Update(ctx context.Context, t todo.Todo) (todo.Todo, bool, error)
	// Delete removes the todo with the given id and reports whether one was removed.
	Delete(ctx context.Context, id string) (bool, error)
}
