package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"todo-api/pkg/response"
)

// Recovery turns a panic anywhere in the chain into the generic 500 body.
func (mw Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		mw.l.Errorf(c.Request.Context(), "panic recovered: %v\n%s", recovered, debug.Stack())
		response.InternalError(c)
	})
}
