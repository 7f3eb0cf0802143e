package todo

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Todo CRUD
	GetAllTodos(ctx context.Context) ([]TodoDTO, error)
	GetTodoByID(ctx context.Context, id string) (TodoDTO, bool, error)
	CreateTodo(ctx context.Context, input CreateTodoInput) (TodoDTO, error)
	UpdateTodo(ctx context.Context, id string, input UpdateTodoInput) (TodoDTO, bool, error)
	DeleteTodo(ctx context.Context, id string) (bool, error)
}
