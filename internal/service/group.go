package service

import (
	"context"

	"langportal/internal/domain"
	"langportal/internal/repository"
)

// GroupService handles group-related business logic
type GroupService struct {
	groupRepo   repository.GroupRepository
	wordRepo    repository.WordRepository
	sessionRepo repository.StudySessionRepository
}

// NewGroupService creates a new group service
func NewGroupService(
	groupRepo repository.GroupRepository,
	wordRepo repository.WordRepository,
	sessionRepo repository.StudySessionRepository,
) *GroupService {
	return &GroupService{
		groupRepo:   groupRepo,
		wordRepo:    wordRepo,
		sessionRepo: sessionRepo,
	}
}

// ListGroups returns one page of groups plus pagination metadata
func (s *GroupService) ListGroups(ctx context.Context, page int, sortBy, order string) ([]domain.Group, domain.Pagination, error) {
	page = clampPage(page)

	groups, err := s.groupRepo.List(ctx, repository.Sort{By: sortBy, Order: order}, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	total, err := s.groupRepo.Count(ctx)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return groups, domain.NewPagination(page, pageSize, total), nil
}

// GetGroup returns a single group with its derived word count
func (s *GroupService) GetGroup(ctx context.Context, id int) (*domain.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, domain.ErrNotFound
	}
	return group, nil
}

// GroupWords returns one page of a group's words with stats
func (s *GroupService) GroupWords(ctx context.Context, groupID, page int) ([]domain.WordWithStats, domain.Pagination, error) {
	if err := s.requireGroup(ctx, groupID); err != nil {
		return nil, domain.Pagination{}, err
	}
	page = clampPage(page)

	words, err := s.wordRepo.ListByGroup(ctx, groupID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	total, err := s.wordRepo.CountByGroup(ctx, groupID)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return words, domain.NewPagination(page, pageSize, total), nil
}

// GroupSessions returns one page of a group's study sessions
func (s *GroupService) GroupSessions(ctx context.Context, groupID, page int) ([]domain.StudySession, domain.Pagination, error) {
	if err := s.requireGroup(ctx, groupID); err != nil {
		return nil, domain.Pagination{}, err
	}
	page = clampPage(page)

	sessions, err := s.sessionRepo.ListByGroup(ctx, groupID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	total, err := s.sessionRepo.CountByGroup(ctx, groupID)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return sessions, domain.NewPagination(page, pageSize, total), nil
}

func (s *GroupService) requireGroup(ctx context.Context, id int) error {
	exists, err := s.groupRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}
