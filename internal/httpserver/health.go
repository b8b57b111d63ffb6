package httpserver

import (
	"github.com/gin-gonic/gin"

	"review-task-board/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Review task board is up"
	HealthVersion = "1.0.0"
	ServiceName   = "review-task-board"
)

func (srv HTTPServer) probe(c *gin.Context, status string) {
	response.OK(c, gin.H{
		"status":      status,
		"message":     HealthMessage,
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) { srv.probe(c, "healthy") }

// readyCheck reports ready once routes are mapped, which New guarantees.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) { srv.probe(c, "ready") }

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) { srv.probe(c, "alive") }
