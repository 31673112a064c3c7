package handler

import (
	"net/http"

	"langportal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SystemHandler serves the reset endpoints
type SystemHandler struct {
	system *service.SystemService
	logger *zap.Logger
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(system *service.SystemService, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{system: system, logger: logger}
}

// ResetHistory handles POST /api/reset_history
func (h *SystemHandler) ResetHistory(c *gin.Context) {
	if err := h.system.ResetHistory(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "failed to reset study history",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Study history has been reset",
	})
}

// FullReset handles POST /api/full_reset
func (h *SystemHandler) FullReset(c *gin.Context) {
	if err := h.system.FullReset(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "failed to reset the system",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "System has been fully reset",
	})
}
