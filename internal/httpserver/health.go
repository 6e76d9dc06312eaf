package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"art-historian/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Art Historian API"
	HealthVersion = "1.0.0"
	ServiceName   = "art-historian"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports the configured providers and the number of live conversations.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "No generator configured"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	conversations := 0
	if srv.store != nil {
		conversations = srv.store.Len()
	}

	body := gin.H{
		"status":        "ready",
		"message":       HealthMessage,
		"version":       HealthVersion,
		"service":       ServiceName,
		"providers":     srv.providers,
		"conversations": conversations,
	}

	if len(srv.providers) == 0 {
		body["status"] = "not ready"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}

	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
