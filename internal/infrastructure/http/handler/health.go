package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/erickmarcia/To-Do-Tisk/internal/config"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	config *config.Config
}

func NewHealthHandler(config *config.Config) *HealthHandler {
	return &HealthHandler{config: config}
}

// Health handles GET /health. Plain shape, no envelope.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   h.config.App.Version,
	})
}
