package service

import (
	"context"
	"math"
	"time"

	"langportal/internal/domain"
	"langportal/internal/repository"
)

// DashboardService computes the read-only dashboard aggregates
type DashboardService struct {
	dashboardRepo repository.DashboardRepository
	now           func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(dashboardRepo repository.DashboardRepository) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		now:           time.Now,
	}
}

// LastSession returns the most recent session, or nil if none exist
func (s *DashboardService) LastSession(ctx context.Context) (*domain.StudySession, error) {
	return s.dashboardRepo.LastSession(ctx)
}

// Progress returns studied vs available word totals
func (s *DashboardService) Progress(ctx context.Context) (*domain.StudyProgress, error) {
	studied, err := s.dashboardRepo.CountStudiedWords(ctx)
	if err != nil {
		return nil, err
	}

	available, err := s.dashboardRepo.CountWords(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.StudyProgress{
		TotalWordsStudied:   studied,
		TotalAvailableWords: available,
	}, nil
}

// QuickStats returns the dashboard summary: success rate, session and
// group totals, and the study streak
func (s *DashboardService) QuickStats(ctx context.Context) (*domain.QuickStats, error) {
	total, correct, err := s.dashboardRepo.ReviewTotals(ctx)
	if err != nil {
		return nil, err
	}

	successRate := 0.0
	if total > 0 {
		successRate = math.Round(float64(correct)/float64(total)*1000) / 10
	}

	sessions, err := s.dashboardRepo.CountSessions(ctx)
	if err != nil {
		return nil, err
	}

	groups, err := s.dashboardRepo.CountGroups(ctx)
	if err != nil {
		return nil, err
	}

	dates, err := s.dashboardRepo.SessionDates(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.QuickStats{
		SuccessRate:        successRate,
		TotalStudySessions: sessions,
		TotalActiveGroups:  groups,
		StudyStreakDays:    studyStreak(dates, s.now().UTC()),
	}, nil
}

// studyStreak counts contiguous calendar days with at least one
// session, walking backward from today. A streak may end yesterday: a
// day without sessions so far does not break yesterday's run, but any
// earlier gap stops the walk.
func studyStreak(dates []time.Time, today time.Time) int {
	days := make(map[string]bool, len(dates))
	for _, d := range dates {
		days[d.Format("2006-01-02")] = true
	}

	day := today
	if !days[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for days[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}

	return streak
}
