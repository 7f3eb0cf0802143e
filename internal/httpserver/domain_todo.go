package httpserver

import (
	"context"

	"todo-api/internal/middleware"
	todoHTTP "todo-api/internal/todo/delivery/http"
	todoUC "todo-api/internal/todo/usecase"

	"github.com/gin-gonic/gin"
)

// setupTodoDomain wires the todo service over the injected repository and
// registers its routes.
func (srv *HTTPServer) setupTodoDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := todoUC.New(srv.todoRepo, srv.l)
	h := todoHTTP.New(srv.l, uc)

	// Registers /api/todos
	todoHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Todo domain registered")
	return nil
}
