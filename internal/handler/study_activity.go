package handler

import (
	"net/http"

	"langportal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StudyActivityHandler serves the study activity endpoints
type StudyActivityHandler struct {
	activities *service.StudyActivityService
	logger     *zap.Logger
}

// NewStudyActivityHandler creates a new study activity handler
func NewStudyActivityHandler(activities *service.StudyActivityService, logger *zap.Logger) *StudyActivityHandler {
	return &StudyActivityHandler{activities: activities, logger: logger}
}

// List handles GET /api/study_activities
func (h *StudyActivityHandler) List(c *gin.Context) {
	activities, pagination, err := h.activities.ListActivities(c.Request.Context(), pageParam(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	items := make([]activityJSON, 0, len(activities))
	for _, a := range activities {
		items = append(items, toActivityJSON(a))
	}

	c.JSON(http.StatusOK, listResponse{
		Items:      items,
		Pagination: toPaginationJSON(pagination),
	})
}

// Get handles GET /api/study_activities/:id
func (h *StudyActivityHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	activity, err := h.activities.GetActivity(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toActivityJSON(*activity))
}

// Sessions handles GET /api/study_activities/:id/study_sessions
func (h *StudyActivityHandler) Sessions(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	sessions, pagination, err := h.activities.ActivitySessions(c.Request.Context(), id, pageParam(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, listResponse{
		Items:      toSessionListJSON(sessions),
		Pagination: toPaginationJSON(pagination),
	})
}
