package memory

import (
	"context"

	"todo-api/internal/todo"
)

// GetAll returns a copy of every stored todo in insertion order.
func (r *implRepository) GetAll(ctx context.Context) ([]todo.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := make([]todo.Todo, len(r.todos))
	copy(todos, r.todos)
	return todos, nil
}

// GetByID returns the first todo with a matching ID.
func (r *implRepository) GetByID(ctx context.Context, id string) (todo.Todo, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.todos[i], true, nil
	}
	return todo.Todo{}, false, nil
}

// Create appends t. IDs are not checked for uniqueness: a duplicate coexists
// with the earlier record and lookups keep returning the earlier one.
func (r *implRepository) Create(ctx context.Context, t todo.Todo) (todo.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.todos = append(r.todos, t)
	return t, nil
}

// Update replaces the first todo carrying t.ID.
func (r *implRepository) Update(ctx context.Context, t todo.Todo) (todo.Todo, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(t.ID)
	if i < 0 {
		return todo.Todo{}, false, nil
	}
	r.todos[i] = t
	return t, true, nil
}

// Delete drops every todo carrying id.
func (r *implRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.todos[:0]
	for _, t := range r.todos {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	removed := len(kept) < len(r.todos)
	clear(r.todos[len(kept):])
	r.todos = kept
	return removed, nil
}

// indexOf must be called with r.mu held.
func (r *implRepository) indexOf(id string) int {
	for i, t := range r.todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}
