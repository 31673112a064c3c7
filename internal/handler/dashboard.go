package handler

import (
	"net/http"
	"time"

	"langportal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the read-only dashboard endpoints
type DashboardHandler struct {
	dashboard *service.DashboardService
	logger    *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, logger: logger}
}

type lastSessionJSON struct {
	ID              int       `json:"id"`
	GroupID         int       `json:"group_id"`
	CreatedAt       time.Time `json:"created_at"`
	StudyActivityID int       `json:"study_activity_id"`
	GroupName       string    `json:"group_name"`
}

// LastSession handles GET /api/dashboard/last_study_session
func (h *DashboardHandler) LastSession(c *gin.Context) {
	session, err := h.dashboard.LastSession(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if session == nil {
		c.JSON(http.StatusOK, gin.H{"study_session": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"study_session": lastSessionJSON{
		ID:              session.ID,
		GroupID:         session.GroupID,
		CreatedAt:       session.StartTime,
		StudyActivityID: session.StudyActivityID,
		GroupName:       session.GroupName,
	}})
}

// Progress handles GET /api/dashboard/study_progress
func (h *DashboardHandler) Progress(c *gin.Context) {
	progress, err := h.dashboard.Progress(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_words_studied":   progress.TotalWordsStudied,
		"total_available_words": progress.TotalAvailableWords,
	})
}

// QuickStats handles GET /api/dashboard/quick_stats
func (h *DashboardHandler) QuickStats(c *gin.Context) {
	stats, err := h.dashboard.QuickStats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success_rate":         stats.SuccessRate,
		"total_study_sessions": stats.TotalStudySessions,
		"total_active_groups":  stats.TotalActiveGroups,
		"study_streak_days":    stats.StudyStreakDays,
	})
}
