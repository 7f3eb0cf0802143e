package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "todo-api/pkg/errors"
)

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with the created resource.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends 204 with an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends the status and public message of an *errors.HTTPError.
// Any other error is answered with an opaque 500.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		InternalError(c)
		return
	}
	c.AbortWithStatusJSON(httpErr.Code, ErrorResp{Error: httpErr.Message})
}

// InternalError sends 500 internal server error without leaking the cause.
func InternalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResp{Error: MessageInternalServerError})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResp{Error: MessageTooManyRequests})
}
