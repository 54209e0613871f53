package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthProbe reports whether the ledger backend is reachable.
type HealthProbe interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	probe HealthProbe
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(probe HealthProbe) *HealthHandler {
	return &HealthHandler{probe: probe}
}

// Check responds 200 while the ledger is reachable, 503 otherwise.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.probe.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
