package service

import (
	"context"

	"langportal/internal/domain"
	"langportal/internal/repository"
)

// StudySessionService handles session and review business logic
type StudySessionService struct {
	sessionRepo  repository.StudySessionRepository
	groupRepo    repository.GroupRepository
	activityRepo repository.StudyActivityRepository
	wordRepo     repository.WordRepository
	reviewRepo   repository.ReviewRepository
}

// NewStudySessionService creates a new study session service
func NewStudySessionService(
	sessionRepo repository.StudySessionRepository,
	groupRepo repository.GroupRepository,
	activityRepo repository.StudyActivityRepository,
	wordRepo repository.WordRepository,
	reviewRepo repository.ReviewRepository,
) *StudySessionService {
	return &StudySessionService{
		sessionRepo:  sessionRepo,
		groupRepo:    groupRepo,
		activityRepo: activityRepo,
		wordRepo:     wordRepo,
		reviewRepo:   reviewRepo,
	}
}

// CreateSession starts a new session for a group and activity.
// Missing ids are validation failures; unknown ids are NotFound.
func (s *StudySessionService) CreateSession(ctx context.Context, groupID, activityID int) (int, error) {
	if groupID == 0 {
		return 0, domain.NewValidationError("group_id is required")
	}
	if activityID == 0 {
		return 0, domain.NewValidationError("study_activity_id is required")
	}

	groupExists, err := s.groupRepo.Exists(ctx, groupID)
	if err != nil {
		return 0, err
	}
	if !groupExists {
		return 0, domain.ErrNotFound
	}

	activityExists, err := s.activityRepo.Exists(ctx, activityID)
	if err != nil {
		return 0, err
	}
	if !activityExists {
		return 0, domain.ErrNotFound
	}

	return s.sessionRepo.Create(ctx, groupID, activityID)
}

// ListSessions returns one page of sessions ordered by start time
func (s *StudySessionService) ListSessions(ctx context.Context, page int) ([]domain.StudySession, domain.Pagination, error) {
	page = clampPage(page)

	sessions, err := s.sessionRepo.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	total, err := s.sessionRepo.Count(ctx)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return sessions, domain.NewPagination(page, pageSize, total), nil
}

// GetSession returns a single session
func (s *StudySessionService) GetSession(ctx context.Context, id int) (*domain.StudySession, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}
	return session, nil
}

// CloseSession stamps the session's end time. Closing an already
// closed session is a no-op; the original end time is kept.
func (s *StudySessionService) CloseSession(ctx context.Context, id int) (*domain.StudySession, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.EndTime != nil {
		return session, nil
	}

	if err := s.sessionRepo.Close(ctx, id); err != nil {
		return nil, err
	}

	return s.GetSession(ctx, id)
}

// SessionWords returns one page of the words reviewed in a session
func (s *StudySessionService) SessionWords(ctx context.Context, sessionID, page int) ([]domain.WordWithStats, domain.Pagination, error) {
	exists, err := s.sessionRepo.Exists(ctx, sessionID)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	if !exists {
		return nil, domain.Pagination{}, domain.ErrNotFound
	}
	page = clampPage(page)

	words, err := s.wordRepo.ListBySession(ctx, sessionID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	total, err := s.wordRepo.CountBySession(ctx, sessionID)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return words, domain.NewPagination(page, pageSize, total), nil
}

// SubmitReview records one answered question for a session. Whether
// the word belongs to the session's group is deliberately not checked.
func (s *StudySessionService) SubmitReview(ctx context.Context, sessionID, wordID int, correct bool) (*domain.ReviewItem, error) {
	sessionExists, err := s.sessionRepo.Exists(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !sessionExists {
		return nil, domain.ErrNotFound
	}

	wordExists, err := s.wordRepo.Exists(ctx, wordID)
	if err != nil {
		return nil, err
	}
	if !wordExists {
		return nil, domain.ErrNotFound
	}

	return s.reviewRepo.Create(ctx, sessionID, wordID, correct)
}
