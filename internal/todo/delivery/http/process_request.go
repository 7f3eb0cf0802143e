package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"todo-api/internal/todo"
)

// bindJSON decodes the request body into req. A missing body binds as {}.
func (h *handler) bindJSON(c *gin.Context, req any) error {
	err := c.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// processCreateReq binds the create todo request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := h.bindJSON(c, &req); err != nil {
		h.l.Warnf(c.Request.Context(), "processCreateReq ShouldBindJSON: %v", err)
		return req, todo.ErrInvalidPayload
	}
	return req, nil
}

// processUpdateReq binds the update todo request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := h.bindJSON(c, &req); err != nil {
		h.l.Warnf(c.Request.Context(), "processUpdateReq ShouldBindJSON: %v", err)
		return req, todo.ErrInvalidPayload
	}
	req.ID = c.Param("id")
	return req, nil
}
