package http

import (
	"github.com/gin-gonic/gin"

	"todo-api/internal/todo"
	"todo-api/pkg/response"
)

// List godoc
// @Summary     List todos
// @Description Returns every stored todo.
// @Tags        Todo
// @Produce     json
// @Success     200 {array}  todoResp
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/todos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GetAllTodos(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetAllTodos: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get todo detail
// @Description Returns a single todo by its ID.
// @Tags        Todo
// @Produce     json
// @Param       id path string true "Todo ID"
// @Success     200 {object} todoResp
// @Failure     404 {object} response.ErrorResp "ToDo not found"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/todos/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, found, err := h.uc.GetTodoByID(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetTodoByID: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	if !found {
		response.Error(c, h.mapError(todo.ErrTodoNotFound))
		return
	}

	response.OK(c, newTodoResp(output))
}

// Create godoc
// @Summary     Create a new todo
// @Description Stores the todo as sent, including its caller-supplied id.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Todo data"
// @Success     201  {object} todoResp
// @Failure     400  {object} response.ErrorResp "Invalid request body"
// @Failure     500  {object} response.ErrorResp "Internal Server Error"
// @Router      /api/todos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.CreateTodo(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateTodo: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newTodoResp(output))
}

// Update godoc
// @Summary     Update a todo
// @Description Overlays the sent fields on the stored todo. Omitted fields keep their value.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Todo ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} todoResp
// @Failure     400 {object} response.ErrorResp "Invalid request body"
// @Failure     404 {object} response.ErrorResp "ToDo not found"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/todos/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, found, err := h.uc.UpdateTodo(ctx, req.ID, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateTodo: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	if !found {
		response.Error(c, h.mapError(todo.ErrTodoNotFound))
		return
	}

	response.OK(c, newTodoResp(output))
}

// Delete godoc
// @Summary     Delete a todo
// @Description Permanently removes a todo by ID.
// @Tags        Todo
// @Produce     json
// @Param       id path string true "Todo ID"
// @Success     204 "No Content"
// @Failure     404 {object} response.ErrorResp "ToDo not found"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/todos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	deleted, err := h.uc.DeleteTodo(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteTodo: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	if !deleted {
		response.Error(c, h.mapError(todo.ErrTodoNotFound))
		return
	}

	response.NoContent(c)
}
