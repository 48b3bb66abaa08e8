package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingHandler reports storage liveness.
type PingHandler struct {
	health HealthChecker
}

// NewPingHandler constructs PingHandler.
func NewPingHandler(health HealthChecker) *PingHandler {
	return &PingHandler{health: health}
}

// Ping handles GET /ping.
func (h *PingHandler) Ping(c *gin.Context) {
	if err := h.health.HealthCheck(c.Request.Context()); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}
