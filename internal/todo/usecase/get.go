package usecase

import (
	"context"

	"todo-api/internal/todo"
)

// GetAllTodos returns every stored todo projected to its wire shape.
func (uc *implUseCase) GetAllTodos(ctx context.Context) ([]todo.TodoDTO, error) {
	todos, err := uc.repo.GetAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetAllTodos GetAll: %v", err)
		return nil, err
	}

	dtos := make([]todo.TodoDTO, len(todos))
	for i, t := range todos {
		dtos[i] = uc.toDTO(t)
	}
	return dtos, nil
}

// GetTodoByID returns the todo with the given id, or false when there is none.
func (uc *implUseCase) GetTodoByID(ctx context.Context, id string) (todo.TodoDTO, bool, error) {
	t, found, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetTodoByID GetByID: %v", err)
		return todo.TodoDTO{}, false, err
	}
	if !found {
		return todo.TodoDTO{}, false, nil
	}
	return uc.toDTO(t), true, nil
}
