package http

import (
	"todo-api/internal/todo"
)

// --- Request DTOs ---

type createReq struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	IsCompleted bool    `json:"isCompleted"`
}

func (r createReq) toInput() todo.CreateTodoInput {
	return todo.CreateTodoInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		IsCompleted: r.IsCompleted,
	}
}

// ---

// updateReq keeps pointers so an omitted field can be told apart from a zero value.
type updateReq struct {
	ID          string  `json:"-"` // populated from URI param
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsCompleted *bool   `json:"isCompleted"`
}

func (r updateReq) toInput() todo.UpdateTodoInput {
	return todo.UpdateTodoInput{
		Title:       r.Title,
		Description: r.Description,
		IsCompleted: r.IsCompleted,
	}
}

// --- Response DTOs ---

type todoResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	IsCompleted bool   `json:"isCompleted"`
}

func newTodoResp(dto todo.TodoDTO) todoResp {
	return todoResp{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		IsCompleted: dto.IsCompleted,
	}
}

func (h *handler) newListResp(dtos []todo.TodoDTO) []todoResp {
	resp := make([]todoResp, len(dtos))
	for i, dto := range dtos {
		resp[i] = newTodoResp(dto)
	}
	return resp
}
