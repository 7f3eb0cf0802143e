package usecase

import (
	"context"

	"todo-api/internal/todo"
)

// UpdateTodo overlays the provided fields on the stored todo and persists the result.
// Returns false when the todo does not exist, or vanished before the write.
func (uc *implUseCase) UpdateTodo(ctx context.Context, id string, input todo.UpdateTodoInput) (todo.TodoDTO, bool, error) {
	existing, found, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateTodo GetByID: %v", err)
		return todo.TodoDTO{}, false, err
	}
	if !found {
		return todo.TodoDTO{}, false, nil
	}

	updated, found, err := uc.repo.Update(ctx, uc.merge(existing, input))
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateTodo Update: %v", err)
		return todo.TodoDTO{}, false, err
	}
	if !found {
		uc.l.Warnf(ctx, "uc.UpdateTodo: todo %s deleted before update", id)
		return todo.TodoDTO{}, false, nil
	}
	return uc.toDTO(updated), true, nil
}

// DeleteTodo removes the todo and reports whether it existed.
func (uc *implUseCase) DeleteTodo(ctx context.Context, id string) (bool, error) {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteTodo Delete: %v", err)
		return false, err
	}
	return deleted, nil
}
