package testutil

import (
	"context"
	"time"

	"langportal/internal/domain"
	"langportal/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) List(ctx context.Context, sort repository.Sort, limit, offset int) ([]domain.WordWithStats, error) {
	args := m.Called(ctx, sort, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordWithStats), args.Error(1)
}

func (m *MockWordRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockWordRepository) GetByID(ctx context.Context, id int) (*domain.WordWithStats, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WordWithStats), args.Error(1)
}

func (m *MockWordRepository) GroupsFor(ctx context.Context, wordID int) ([]domain.GroupRef, error) {
	args := m.Called(ctx, wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupRef), args.Error(1)
}

func (m *MockWordRepository) Create(ctx context.Context, word domain.NewWord) (int, error) {
	args := m.Called(ctx, word)
	return args.Int(0), args.Error(1)
}

func (m *MockWordRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) ListByGroup(ctx context.Context, groupID, limit, offset int) ([]domain.WordWithStats, error) {
	args := m.Called(ctx, groupID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordWithStats), args.Error(1)
}

func (m *MockWordRepository) CountByGroup(ctx context.Context, groupID int) (int, error) {
	args := m.Called(ctx, groupID)
	return args.Int(0), args.Error(1)
}

func (m *MockWordRepository) ListBySession(ctx context.Context, sessionID, limit, offset int) ([]domain.WordWithStats, error) {
	args := m.Called(ctx, sessionID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordWithStats), args.Error(1)
}

func (m *MockWordRepository) CountBySession(ctx context.Context, sessionID int) (int, error) {
	args := m.Called(ctx, sessionID)
	return args.Int(0), args.Error(1)
}

// MockGroupRepository is a mock for GroupRepository
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) List(ctx context.Context, sort repository.Sort, limit, offset int) ([]domain.Group, error) {
	args := m.Called(ctx, sort, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}

func (m *MockGroupRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockGroupRepository) GetByID(ctx context.Context, id int) (*domain.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockGroupRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockStudyActivityRepository is a mock for StudyActivityRepository
type MockStudyActivityRepository struct {
	mock.Mock
}

func (m *MockStudyActivityRepository) List(ctx context.Context, limit, offset int) ([]domain.StudyActivity, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StudyActivity), args.Error(1)
}

func (m *MockStudyActivityRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockStudyActivityRepository) GetByID(ctx context.Context, id int) (*domain.StudyActivity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudyActivity), args.Error(1)
}

func (m *MockStudyActivityRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockStudySessionRepository is a mock for StudySessionRepository
type MockStudySessionRepository struct {
	mock.Mock
}

func (m *MockStudySessionRepository) Create(ctx context.Context, groupID, activityID int) (int, error) {
	args := m.Called(ctx, groupID, activityID)
	return args.Int(0), args.Error(1)
}

func (m *MockStudySessionRepository) List(ctx context.Context, limit, offset int) ([]domain.StudySession, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StudySession), args.Error(1)
}

func (m *MockStudySessionRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockStudySessionRepository) GetByID(ctx context.Context, id int) (*domain.StudySession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudySession), args.Error(1)
}

func (m *MockStudySessionRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStudySessionRepository) ListByGroup(ctx context.Context, groupID, limit, offset int) ([]domain.StudySession, error) {
	args := m.Called(ctx, groupID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StudySession), args.Error(1)
}

func (m *MockStudySessionRepository) CountByGroup(ctx context.Context, groupID int) (int, error) {
	args := m.Called(ctx, groupID)
	return args.Int(0), args.Error(1)
}

func (m *MockStudySessionRepository) ListByActivity(ctx context.Context, activityID, limit, offset int) ([]domain.StudySession, error) {
	args := m.Called(ctx, activityID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StudySession), args.Error(1)
}

func (m *MockStudySessionRepository) CountByActivity(ctx context.Context, activityID int) (int, error) {
	args := m.Called(ctx, activityID)
	return args.Int(0), args.Error(1)
}

func (m *MockStudySessionRepository) Close(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReviewRepository is a mock for ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, sessionID, wordID int, correct bool) (*domain.ReviewItem, error) {
	args := m.Called(ctx, sessionID, wordID, correct)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReviewItem), args.Error(1)
}

// MockDashboardRepository is a mock for DashboardRepository
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) LastSession(ctx context.Context) (*domain.StudySession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudySession), args.Error(1)
}

func (m *MockDashboardRepository) CountWords(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) CountStudiedWords(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) ReviewTotals(ctx context.Context) (int, int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockDashboardRepository) CountSessions(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) CountGroups(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) SessionDates(ctx context.Context) ([]time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

// MockSystemRepository is a mock for SystemRepository
type MockSystemRepository struct {
	mock.Mock
}

func (m *MockSystemRepository) ResetHistory(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockMigrator is a mock for service.Migrator
type MockMigrator struct {
	mock.Mock
}

func (m *MockMigrator) Drop() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMigrator) Up() error {
	args := m.Called()
	return args.Error(0)
}

// MockSeeder is a mock for service.Seeder
type MockSeeder struct {
	mock.Mock
}

func (m *MockSeeder) SeedAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
