package handler

import (
	"net/http"

	"langportal/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RouterConfig carries the handlers wired into the router
type RouterConfig struct {
	Words       *WordHandler
	Groups      *GroupHandler
	Activities  *StudyActivityHandler
	Sessions    *StudySessionHandler
	Dashboard   *DashboardHandler
	System      *SystemHandler
	CORSOrigins []string
}

// NewRouter builds the gin engine with all API routes registered
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")
	{
		api.GET("/words", cfg.Words.List)
		api.GET("/words/:id", cfg.Words.Get)
		api.POST("/words", cfg.Words.Create)

		api.GET("/groups", cfg.Groups.List)
		api.GET("/groups/:id", cfg.Groups.Get)
		api.GET("/groups/:id/words", cfg.Groups.Words)
		api.GET("/groups/:id/study_sessions", cfg.Groups.Sessions)

		api.GET("/study_activities", cfg.Activities.List)
		api.GET("/study_activities/:id", cfg.Activities.Get)
		api.GET("/study_activities/:id/study_sessions", cfg.Activities.Sessions)

		api.POST("/study_sessions", cfg.Sessions.Create)
		api.GET("/study_sessions", cfg.Sessions.List)
		api.GET("/study_sessions/:id", cfg.Sessions.Get)
		api.POST("/study_sessions/:id/update_time", cfg.Sessions.UpdateTime)
		api.GET("/study_sessions/:id/words", cfg.Sessions.Words)
		api.POST("/study_sessions/:id/words/:word_id/review", cfg.Sessions.Review)

		api.GET("/dashboard/last_study_session", cfg.Dashboard.LastSession)
		api.GET("/dashboard/study_progress", cfg.Dashboard.Progress)
		api.GET("/dashboard/quick_stats", cfg.Dashboard.QuickStats)

		api.POST("/reset_history", cfg.System.ResetHistory)
		api.POST("/full_reset", cfg.System.FullReset)
	}

	return r
}
