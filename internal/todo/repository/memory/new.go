package memory

import (
	"sync"

	"todo-api/internal/todo"
	"todo-api/internal/todo/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	todos []todo.Todo
}

// New creates an in-memory Repository. Records live as long as the process.
func New() repository.Repository {
	return &implRepository{}
}
