package usecase

import (
	"todo-api/internal/todo"
	"todo-api/internal/todo/repository"
	"todo-api/pkg/log"
)

// implUseCase is the private implementation of todo.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ todo.UseCase = (*implUseCase)(nil)

// New creates a new todo UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
