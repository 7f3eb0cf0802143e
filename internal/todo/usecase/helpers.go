package usecase

import "todo-api/internal/todo"

// toDTO projects the entity to its wire shape.
func (uc *implUseCase) toDTO(t todo.Todo) todo.TodoDTO {
	return todo.TodoDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		IsCompleted: t.IsCompleted,
	}
}

// merge starts from the stored todo and overwrites every field present in input.
// The id is never taken from input.
func (uc *implUseCase) merge(existing todo.Todo, input todo.UpdateTodoInput) todo.Todo {
	merged := existing
	if input.Title != nil {
		merged.Title = *input.Title
	}
	if input.Description != nil {
		merged.Description = *input.Description
	}
	if input.IsCompleted != nil {
		merged.IsCompleted = *input.IsCompleted
	}
	return merged
}

func (uc *implUseCase) stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
