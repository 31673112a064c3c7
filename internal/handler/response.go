package handler

import (
	"errors"
	"net/http"
	"time"

	"langportal/internal/domain"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// errorBody is the envelope returned by every failing endpoint
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// respondError maps domain errors onto HTTP statuses. NotFound and
// validation failures are expected client outcomes and are not logged;
// everything else is logged server-side and surfaced as a generic 500.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorBody{
			Error:   "not_found",
			Message: "the requested resource was not found",
		})
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, errorBody{
			Error:   "validation_error",
			Message: err.Error(),
		})
	default:
		logger.Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, errorBody{
			Error:   "internal_error",
			Message: "the server encountered an unexpected condition",
		})
	}
}

type paginationJSON struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalItems   int `json:"total_items"`
	ItemsPerPage int `json:"items_per_page"`
}

func toPaginationJSON(p domain.Pagination) paginationJSON {
	return paginationJSON{
		CurrentPage:  p.CurrentPage,
		TotalPages:   p.TotalPages,
		TotalItems:   p.TotalItems,
		ItemsPerPage: p.ItemsPerPage,
	}
}

type listResponse struct {
	Items      any            `json:"items"`
	Pagination paginationJSON `json:"pagination"`
}

type wordStatsJSON struct {
	CorrectCount int `json:"correct_count"`
	WrongCount   int `json:"wrong_count"`
}

type wordJSON struct {
	ID      int              `json:"id"`
	French  string           `json:"french"`
	English string           `json:"english"`
	Gender  *string          `json:"gender"`
	Parts   domain.WordParts `json:"parts"`
	Stats   wordStatsJSON    `json:"stats"`
}

func toWordJSON(w domain.WordWithStats) wordJSON {
	return wordJSON{
		ID:      w.ID,
		French:  w.French,
		English: w.English,
		Gender:  w.Gender,
		Parts:   w.Parts,
		Stats: wordStatsJSON{
			CorrectCount: w.Stats.CorrectCount,
			WrongCount:   w.Stats.WrongCount,
		},
	}
}

func toWordListJSON(words []domain.WordWithStats) []wordJSON {
	items := make([]wordJSON, 0, len(words))
	for _, w := range words {
		items = append(items, toWordJSON(w))
	}
	return items
}

type groupRefJSON struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type wordDetailJSON struct {
	wordJSON
	Groups []groupRefJSON `json:"groups"`
}

func toWordDetailJSON(w domain.WordDetail) wordDetailJSON {
	groups := make([]groupRefJSON, 0, len(w.Groups))
	for _, g := range w.Groups {
		groups = append(groups, groupRefJSON{ID: g.ID, Name: g.Name})
	}
	return wordDetailJSON{wordJSON: toWordJSON(w.WordWithStats), Groups: groups}
}

type groupJSON struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	WordCount int    `json:"word_count"`
}

type groupStatsJSON struct {
	TotalWordCount int `json:"total_word_count"`
}

type groupDetailJSON struct {
	ID    int            `json:"id"`
	Name  string         `json:"name"`
	Stats groupStatsJSON `json:"stats"`
}

type activityJSON struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Description  *string `json:"description"`
}

func toActivityJSON(a domain.StudyActivity) activityJSON {
	return activityJSON{
		ID:           a.ID,
		Name:         a.Name,
		ThumbnailURL: a.ThumbnailURL,
		Description:  a.Description,
	}
}

type sessionJSON struct {
	ID               int        `json:"id"`
	GroupID          int        `json:"group_id"`
	StudyActivityID  int        `json:"study_activity_id"`
	GroupName        string     `json:"group_name"`
	ActivityName     string     `json:"activity_name"`
	StartTime        time.Time  `json:"start_time"`
	EndTime          *time.Time `json:"end_time"`
	ReviewItemsCount int        `json:"review_items_count"`
}

func toSessionJSON(s domain.StudySession) sessionJSON {
	return sessionJSON{
		ID:               s.ID,
		GroupID:          s.GroupID,
		StudyActivityID:  s.StudyActivityID,
		GroupName:        s.GroupName,
		ActivityName:     s.ActivityName,
		StartTime:        s.StartTime,
		EndTime:          s.EndTime,
		ReviewItemsCount: s.ReviewItemsCount,
	}
}

func toSessionListJSON(sessions []domain.StudySession) []sessionJSON {
	items := make([]sessionJSON, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, toSessionJSON(s))
	}
	return items
}
