package handler

import (
	"net/http"

	"langportal/internal/domain"
	"langportal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StudySessionHandler serves the study session and review endpoints
type StudySessionHandler struct {
	sessions *service.StudySessionService
	logger   *zap.Logger
}

// NewStudySessionHandler creates a new study session handler
func NewStudySessionHandler(sessions *service.StudySessionService, logger *zap.Logger) *StudySessionHandler {
	return &StudySessionHandler{sessions: sessions, logger: logger}
}

type createSessionRequest struct {
	GroupID         int `json:"group_id"`
	StudyActivityID int `json:"study_activity_id"`
}

// Create handles POST /api/study_sessions
func (h *StudySessionHandler) Create(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, domain.NewValidationError("invalid request body"))
		return
	}

	id, err := h.sessions.CreateSession(c.Request.Context(), req.GroupID, req.StudyActivityID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "group_id": req.GroupID})
}

// List handles GET /api/study_sessions
func (h *StudySessionHandler) List(c *gin.Context) {
	sessions, pagination, err := h.sessions.ListSessions(c.Request.Context(), pageParam(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, listResponse{
		Items:      toSessionListJSON(sessions),
		Pagination: toPaginationJSON(pagination),
	})
}

// Get handles GET /api/study_sessions/:id
func (h *StudySessionHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	session, err := h.sessions.GetSession(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toSessionJSON(*session))
}

// UpdateTime handles POST /api/study_sessions/:id/update_time,
// closing an open session
func (h *StudySessionHandler) UpdateTime(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	session, err := h.sessions.CloseSession(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toSessionJSON(*session))
}

// Words handles GET /api/study_sessions/:id/words
func (h *StudySessionHandler) Words(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	words, pagination, err := h.sessions.SessionWords(c.Request.Context(), id, pageParam(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, listResponse{
		Items:      toWordListJSON(words),
		Pagination: toPaginationJSON(pagination),
	})
}

type reviewRequest struct {
	Correct *bool `json:"correct"`
}

// Review handles POST /api/study_sessions/:id/words/:word_id/review
func (h *StudySessionHandler) Review(c *gin.Context) {
	sessionID, err := idParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	wordID, err := idParam(c, "word_id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Correct == nil {
		respondError(c, h.logger, domain.NewValidationError("correct is required"))
		return
	}

	item, err := h.sessions.SubmitReview(c.Request.Context(), sessionID, wordID, *req.Correct)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"word_id":          item.WordID,
		"study_session_id": item.StudySessionID,
		"correct":          item.Correct,
		"created_at":       item.CreatedAt,
	})
}
