package httpserver

import (
	"net/http"

	"todo-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Todo API is up"
	HealthVersion = "1.0.0"
	ServiceName   = "todo-api"
)

func statusResp(status string) response.StatusResp {
	return response.StatusResp{
		Status:  status,
		Message: HealthMessage,
		Version: HealthVersion,
		Service: ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.StatusResp "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, statusResp("healthy"))
}

// readyCheck reports ready once the storage backend answers.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.StatusResp "API is ready"
// @Failure 503 {object} response.StatusResp "Database unreachable"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if srv.db != nil {
		ctx := c.Request.Context()
		sqlDB, err := srv.db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			srv.l.Errorf(ctx, "httpserver.readyCheck: database ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, statusResp("unavailable"))
			return
		}
	}
	response.OK(c, statusResp("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.StatusResp "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, statusResp("alive"))
}
