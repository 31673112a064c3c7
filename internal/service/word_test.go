package service

import (
	"context"
	"fmt"
	"testing"

	"langportal/internal/domain"
	"langportal/internal/repository"
	"langportal/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestWordService_ListWords(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		total          int
		expectedPage   int
		expectedOffset int
		expectedPages  int
	}{
		{
			name:           "first page",
			page:           1,
			total:          250,
			expectedPage:   1,
			expectedOffset: 0,
			expectedPages:  3,
		},
		{
			name:           "second page",
			page:           2,
			total:          250,
			expectedPage:   2,
			expectedOffset: 100,
			expectedPages:  3,
		},
		{
			name:           "zero page clamps to one",
			page:           0,
			total:          50,
			expectedPage:   1,
			expectedOffset: 0,
			expectedPages:  1,
		},
		{
			name:           "negative page clamps to one",
			page:           -3,
			total:          50,
			expectedPage:   1,
			expectedOffset: 0,
			expectedPages:  1,
		},
		{
			name:           "exact multiple of page size",
			page:           1,
			total:          200,
			expectedPage:   1,
			expectedOffset: 0,
			expectedPages:  2,
		},
		{
			name:           "empty table",
			page:           1,
			total:          0,
			expectedPage:   1,
			expectedOffset: 0,
			expectedPages:  0,
		},
		{
			name:           "page beyond the end",
			page:           9,
			total:          150,
			expectedPage:   9,
			expectedOffset: 800,
			expectedPages:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			mockRepo.On("List", context.Background(), repository.Sort{By: "french", Order: "asc"}, pageSize, tt.expectedOffset).
				Return([]domain.WordWithStats{testutil.NewTestWord(1, "manger", "to eat", 3, 1)}, nil)
			mockRepo.On("Count", context.Background()).Return(tt.total, nil)

			service := NewWordService(mockRepo)

			words, pagination, err := service.ListWords(context.Background(), tt.page, "french", "asc")

			assert.NoError(t, err)
			assert.Len(t, words, 1)
			assert.Equal(t, tt.expectedPage, pagination.CurrentPage)
			assert.Equal(t, tt.expectedPages, pagination.TotalPages)
			assert.Equal(t, tt.total, pagination.TotalItems)
			assert.Equal(t, pageSize, pagination.ItemsPerPage)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_ListWords_RepositoryError(t *testing.T) {
	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("List", context.Background(), repository.Sort{}, pageSize, 0).
		Return(nil, fmt.Errorf("connection refused"))

	service := NewWordService(mockRepo)

	_, _, err := service.ListWords(context.Background(), 1, "", "")

	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestWordService_GetWord(t *testing.T) {
	testWord := testutil.NewTestWord(1, "parler", "to speak", 5, 2)

	tests := []struct {
		name          string
		id            int
		mockWord      *domain.WordWithStats
		mockGroups    []domain.GroupRef
		expectedError error
	}{
		{
			name:       "word found with groups",
			id:         1,
			mockWord:   &testWord,
			mockGroups: []domain.GroupRef{{ID: 2, Name: "Core Verbs"}},
		},
		{
			name:       "word found without groups",
			id:         1,
			mockWord:   &testWord,
			mockGroups: []domain.GroupRef{},
		},
		{
			name:          "word not found",
			id:            999,
			mockWord:      nil,
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			mockRepo.On("GetByID", context.Background(), tt.id).Return(tt.mockWord, nil)
			if tt.mockWord != nil {
				mockRepo.On("GroupsFor", context.Background(), tt.id).Return(tt.mockGroups, nil)
			}

			service := NewWordService(mockRepo)

			detail, err := service.GetWord(context.Background(), tt.id)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, detail)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.mockWord.ID, detail.ID)
				assert.Equal(t, tt.mockGroups, detail.Groups)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_CreateWord(t *testing.T) {
	tests := []struct {
		name            string
		word            domain.NewWord
		expectedMessage string
	}{
		{
			name: "valid word",
			word: domain.NewWord{French: "chien", English: "dog"},
		},
		{
			name:            "missing french",
			word:            domain.NewWord{English: "dog"},
			expectedMessage: "french is required",
		},
		{
			name:            "missing english",
			word:            domain.NewWord{French: "chien"},
			expectedMessage: "english is required",
		},
		{
			name:            "both missing",
			word:            domain.NewWord{},
			expectedMessage: "french is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			if tt.expectedMessage == "" {
				mockRepo.On("Create", context.Background(), tt.word).Return(42, nil)
			}

			service := NewWordService(mockRepo)

			id, err := service.CreateWord(context.Background(), tt.word)

			if tt.expectedMessage != "" {
				assert.True(t, domain.IsValidation(err))
				assert.EqualError(t, err, tt.expectedMessage)
				assert.Zero(t, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 42, id)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
