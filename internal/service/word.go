package service

import (
	"context"

	"langportal/internal/domain"
	"langportal/internal/repository"
)

// pageSize is the fixed page size for every listing endpoint
const pageSize = 100

// WordService handles word-related business logic
type WordService struct {
	wordRepo repository.WordRepository
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository) *WordService {
	return &WordService{wordRepo: wordRepo}
}

// ListWords returns one page of words with stats plus pagination
// metadata. Pages beyond the end yield an empty list, not an error.
func (s *WordService) ListWords(ctx context.Context, page int, sortBy, order string) ([]domain.WordWithStats, domain.Pagination, error) {
	page = clampPage(page)

	words, err := s.wordRepo.List(ctx, repository.Sort{By: sortBy, Order: order}, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	total, err := s.wordRepo.Count(ctx)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return words, domain.NewPagination(page, pageSize, total), nil
}

// GetWord returns a word with stats and its groups
func (s *WordService) GetWord(ctx context.Context, id int) (*domain.WordDetail, error) {
	word, err := s.wordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if word == nil {
		return nil, domain.ErrNotFound
	}

	groups, err := s.wordRepo.GroupsFor(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.WordDetail{WordWithStats: *word, Groups: groups}, nil
}

// CreateWord validates and persists a new word, returning its id
func (s *WordService) CreateWord(ctx context.Context, word domain.NewWord) (int, error) {
	if word.French == "" {
		return 0, domain.NewValidationError("french is required")
	}
	if word.English == "" {
		return 0, domain.NewValidationError("english is required")
	}

	return s.wordRepo.Create(ctx, word)
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
