package service

import (
	"context"

	"langportal/internal/domain"
	"langportal/internal/repository"
)

// StudyActivityService handles study-activity business logic
type StudyActivityService struct {
	activityRepo repository.StudyActivityRepository
	sessionRepo  repository.StudySessionRepository
}

// NewStudyActivityService creates a new study activity service
func NewStudyActivityService(
	activityRepo repository.StudyActivityRepository,
	sessionRepo repository.StudySessionRepository,
) *StudyActivityService {
	return &StudyActivityService{
		activityRepo: activityRepo,
		sessionRepo:  sessionRepo,
	}
}

// ListActivities returns one page of activities plus pagination metadata
func (s *StudyActivityService) ListActivities(ctx context.Context, page int) ([]domain.StudyActivity, domain.Pagination, error) {
	page = clampPage(page)

	activities, err := s.activityRepo.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	total, err := s.activityRepo.Count(ctx)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return activities, domain.NewPagination(page, pageSize, total), nil
}

// GetActivity returns a single study activity
func (s *StudyActivityService) GetActivity(ctx context.Context, id int) (*domain.StudyActivity, error) {
	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, domain.ErrNotFound
	}
	return activity, nil
}

// ActivitySessions returns one page of an activity's study sessions
func (s *StudyActivityService) ActivitySessions(ctx context.Context, activityID, page int) ([]domain.StudySession, domain.Pagination, error) {
	exists, err := s.activityRepo.Exists(ctx, activityID)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	if !exists {
		return nil, domain.Pagination{}, domain.ErrNotFound
	}
	page = clampPage(page)

	sessions, err := s.sessionRepo.ListByActivity(ctx, activityID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	total, err := s.sessionRepo.CountByActivity(ctx, activityID)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return sessions, domain.NewPagination(page, pageSize, total), nil
}
