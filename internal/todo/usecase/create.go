package usecase

import (
	"context"

	"todo-api/internal/todo"
)

// CreateTodo stores the caller-supplied todo. No field is validated.
func (uc *implUseCase) CreateTodo(ctx context.Context, input todo.CreateTodoInput) (todo.TodoDTO, error) {
	t, err := uc.repo.Create(ctx, todo.Todo{
		ID:          input.ID,
		Title:       input.Title,
		Description: uc.stringOrEmpty(input.Description),
		IsCompleted: input.IsCompleted,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTodo Create: %v", err)
		return todo.TodoDTO{}, err
	}
	return uc.toDTO(t), nil
}
