package handler

import (
	"encoding/json"
	"net/http"

	"langportal/internal/domain"
	"langportal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WordHandler serves the word endpoints
type WordHandler struct {
	words  *service.WordService
	logger *zap.Logger
}

// NewWordHandler creates a new word handler
func NewWordHandler(words *service.WordService, logger *zap.Logger) *WordHandler {
	return &WordHandler{words: words, logger: logger}
}

// List handles GET /api/words
func (h *WordHandler) List(c *gin.Context) {
	words, pagination, err := h.words.ListWords(
		c.Request.Context(),
		pageParam(c),
		c.Query("sort_by"),
		c.Query("order"),
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, listResponse{
		Items:      toWordListJSON(words),
		Pagination: toPaginationJSON(pagination),
	})
}

// Get handles GET /api/words/:id
func (h *WordHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	word, err := h.words.GetWord(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toWordDetailJSON(*word))
}

type createWordRequest struct {
	French  string          `json:"french"`
	English string          `json:"english"`
	Gender  *string         `json:"gender"`
	Parts   json.RawMessage `json:"parts"`
}

// Create handles POST /api/words
func (h *WordHandler) Create(c *gin.Context) {
	var req createWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, domain.NewValidationError("invalid request body"))
		return
	}

	parts, err := domain.DecodeParts(req.Parts)
	if err != nil {
		respondError(c, h.logger, domain.NewValidationError(err.Error()))
		return
	}

	id, err := h.words.CreateWord(c.Request.Context(), domain.NewWord{
		French:  req.French,
		English: req.English,
		Gender:  req.Gender,
		Parts:   parts,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}
