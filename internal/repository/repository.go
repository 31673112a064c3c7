package repository

import (
	"context"
	"time"

	"langportal/internal/domain"
)

// Sort carries listing sort parameters. Implementations resolve By
// through a fixed allow-list before any SQL is built; values outside
// the list fall back to the default column.
type Sort struct {
	By    string
	Order string
}

// WordRepository defines word data operations
type WordRepository interface {
	List(ctx context.Context, sort Sort, limit, offset int) ([]domain.WordWithStats, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id int) (*domain.WordWithStats, error)
	GroupsFor(ctx context.Context, wordID int) ([]domain.GroupRef, error)
	Create(ctx context.Context, word domain.NewWord) (int, error)
	Exists(ctx context.Context, id int) (bool, error)
	ListByGroup(ctx context.Context, groupID, limit, offset int) ([]domain.WordWithStats, error)
	CountByGroup(ctx context.Context, groupID int) (int, error)
	ListBySession(ctx context.Context, sessionID, limit, offset int) ([]domain.WordWithStats, error)
	CountBySession(ctx context.Context, sessionID int) (int, error)
}

// GroupRepository defines group data operations
type GroupRepository interface {
	List(ctx context.Context, sort Sort, limit, offset int) ([]domain.Group, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id int) (*domain.Group, error)
	Exists(ctx context.Context, id int) (bool, error)
}

// StudyActivityRepository defines study activity data operations
type StudyActivityRepository interface {
	List(ctx context.Context, limit, offset int) ([]domain.StudyActivity, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id int) (*domain.StudyActivity, error)
	Exists(ctx context.Context, id int) (bool, error)
}

// StudySessionRepository defines study session data operations
type StudySessionRepository interface {
	Create(ctx context.Context, groupID, activityID int) (int, error)
	List(ctx context.Context, limit, offset int) ([]domain.StudySession, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id int) (*domain.StudySession, error)
	Exists(ctx context.Context, id int) (bool, error)
	ListByGroup(ctx context.Context, groupID, limit, offset int) ([]domain.StudySession, error)
	CountByGroup(ctx context.Context, groupID int) (int, error)
	ListByActivity(ctx context.Context, activityID, limit, offset int) ([]domain.StudySession, error)
	CountByActivity(ctx context.Context, activityID int) (int, error)
	Close(ctx context.Context, id int) error
}

// ReviewRepository defines review item data operations
type ReviewRepository interface {
	Create(ctx context.Context, sessionID, wordID int, correct bool) (*domain.ReviewItem, error)
}

// DashboardRepository defines the read-only dashboard aggregates
type DashboardRepository interface {
	LastSession(ctx context.Context) (*domain.StudySession, error)
	CountWords(ctx context.Context) (int, error)
	CountStudiedWords(ctx context.Context) (int, error)
	ReviewTotals(ctx context.Context) (total, correct int, err error)
	CountSessions(ctx context.Context) (int, error)
	CountGroups(ctx context.Context) (int, error)
	SessionDates(ctx context.Context) ([]time.Time, error)
}

// SystemRepository defines bulk history operations
type SystemRepository interface {
	ResetHistory(ctx context.Context) error
}
