package http

import (
	"todo-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route goes through the per-client rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	todos := rg.Group("/todos")
	{
		todos.GET("", mw.RateLimit(), h.List)
		todos.GET("/:id", mw.RateLimit(), h.Detail)
		todos.POST("", mw.RateLimit(), h.Create)
		todos.PUT("/:id", mw.RateLimit(), h.Update)
		todos.DELETE("/:id", mw.RateLimit(), h.Delete)
	}
}
