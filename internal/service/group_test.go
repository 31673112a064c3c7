package service

import (
	"context"
	"testing"

	"langportal/internal/domain"
	"langportal/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestGroupService_GetGroup(t *testing.T) {
	group := testutil.NewTestGroup(1, "Core Verbs", 10)

	mockGroups := new(testutil.MockGroupRepository)
	mockGroups.On("GetByID", context.Background(), 1).Return(&group, nil)
	mockGroups.On("GetByID", context.Background(), 999).Return(nil, nil)

	service := NewGroupService(mockGroups, nil, nil)

	got, err := service.GetGroup(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "Core Verbs", got.Name)
	assert.Equal(t, 10, got.WordCount)

	_, err = service.GetGroup(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	mockGroups.AssertExpectations(t)
}

func TestGroupService_GroupWords(t *testing.T) {
	t.Run("words for known group", func(t *testing.T) {
		mockGroups := new(testutil.MockGroupRepository)
		mockWords := new(testutil.MockWordRepository)

		mockGroups.On("Exists", context.Background(), 1).Return(true, nil)
		mockWords.On("ListByGroup", context.Background(), 1, pageSize, 0).
			Return([]domain.WordWithStats{testutil.NewTestWord(3, "finir", "to finish", 1, 0)}, nil)
		mockWords.On("CountByGroup", context.Background(), 1).Return(1, nil)

		service := NewGroupService(mockGroups, mockWords, nil)

		words, pagination, err := service.GroupWords(context.Background(), 1, 1)

		assert.NoError(t, err)
		assert.Len(t, words, 1)
		assert.Equal(t, 1, pagination.TotalItems)
		mockGroups.AssertExpectations(t)
		mockWords.AssertExpectations(t)
	})

	t.Run("unknown group", func(t *testing.T) {
		mockGroups := new(testutil.MockGroupRepository)
		mockGroups.On("Exists", context.Background(), 999).Return(false, nil)

		service := NewGroupService(mockGroups, nil, nil)

		_, _, err := service.GroupWords(context.Background(), 999, 1)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockGroups.AssertExpectations(t)
	})
}

func TestGroupService_GroupSessions_UnknownGroup(t *testing.T) {
	mockGroups := new(testutil.MockGroupRepository)
	mockGroups.On("Exists", context.Background(), 999).Return(false, nil)

	service := NewGroupService(mockGroups, nil, nil)

	_, _, err := service.GroupSessions(context.Background(), 999, 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockGroups.AssertExpectations(t)
}
