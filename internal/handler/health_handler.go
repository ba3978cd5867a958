package handler

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	draining atomic.Bool
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// SetDraining marks the server as shutting down so readiness fails.
func (h *HealthHandler) SetDraining() {
	h.draining.Store(true)
}

// Liveness handles GET /healthz
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.draining.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "server is shutting down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
