package handler

import (
	"net/http"

	"langportal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GroupHandler serves the group endpoints
type GroupHandler struct {
	groups *service.GroupService
	logger *zap.Logger
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(groups *service.GroupService, logger *zap.Logger) *GroupHandler {
	return &GroupHandler{groups: groups, logger: logger}
}

// List handles GET /api/groups
func (h *GroupHandler) List(c *gin.Context) {
	groups, pagination, err := h.groups.ListGroups(
		c.Request.Context(),
		pageParam(c),
		c.Query("sort_by"),
		c.Query("order"),
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	items := make([]groupJSON, 0, len(groups))
	for _, g := range groups {
		items = append(items, groupJSON{ID: g.ID, Name: g.Name, WordCount: g.WordCount})
	}

	c.JSON(http.StatusOK, listResponse{
		Items:      items,
		Pagination: toPaginationJSON(pagination),
	})
}

// Get handles GET /api/groups/:id
func (h *GroupHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	group, err := h.groups.GetGroup(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, groupDetailJSON{
		ID:    group.ID,
		Name:  group.Name,
		Stats: groupStatsJSON{TotalWordCount: group.WordCount},
	})
}

// Words handles GET /api/groups/:id/words
func (h *GroupHandler) Words(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	words, pagination, err := h.groups.GroupWords(c.Request.Context(), id, pageParam(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, listResponse{
		Items:      toWordListJSON(words),
		Pagination: toPaginationJSON(pagination),
	})
}

// Sessions handles GET /api/groups/:id/study_sessions
func (h *GroupHandler) Sessions(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	sessions, pagination, err := h.groups.GroupSessions(c.Request.Context(), id, pageParam(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, listResponse{
		Items:      toSessionListJSON(sessions),
		Pagination: toPaginationJSON(pagination),
	})
}
