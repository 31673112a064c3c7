package service

import (
	"context"
	"fmt"
	"testing"

	"langportal/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestSystemService_ResetHistory(t *testing.T) {
	tests := []struct {
		name          string
		mockError     error
		expectedError bool
	}{
		{
			name: "success",
		},
		{
			name:          "repository error propagates",
			mockError:     fmt.Errorf("deadlock detected"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockSystemRepository)
			mockRepo.On("ResetHistory", context.Background()).Return(tt.mockError)

			service := NewSystemService(mockRepo, nil, nil, testutil.NewTestLogger())

			err := service.ResetHistory(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestSystemService_FullReset(t *testing.T) {
	t.Run("drop then migrate then seed", func(t *testing.T) {
		mockMigrator := new(testutil.MockMigrator)
		mockMigrator.On("Drop").Return(nil)
		mockMigrator.On("Up").Return(nil)

		mockSeeder := new(testutil.MockSeeder)
		mockSeeder.On("SeedAll", context.Background()).Return(nil)

		factoryCalls := 0
		factory := func() (Migrator, error) {
			factoryCalls++
			return mockMigrator, nil
		}

		service := NewSystemService(nil, factory, mockSeeder, testutil.NewTestLogger())

		err := service.FullReset(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 2, factoryCalls, "dropping removes the version table, so Up needs a fresh migrator")
		mockMigrator.AssertExpectations(t)
		mockSeeder.AssertExpectations(t)
	})

	t.Run("drop failure stops the reset", func(t *testing.T) {
		mockMigrator := new(testutil.MockMigrator)
		mockMigrator.On("Drop").Return(fmt.Errorf("permission denied"))

		mockSeeder := new(testutil.MockSeeder)

		factory := func() (Migrator, error) { return mockMigrator, nil }

		service := NewSystemService(nil, factory, mockSeeder, testutil.NewTestLogger())

		err := service.FullReset(context.Background())

		assert.Error(t, err)
		mockMigrator.AssertNotCalled(t, "Up")
		mockSeeder.AssertNotCalled(t, "SeedAll", context.Background())
	})

	t.Run("seed failure propagates", func(t *testing.T) {
		mockMigrator := new(testutil.MockMigrator)
		mockMigrator.On("Drop").Return(nil)
		mockMigrator.On("Up").Return(nil)

		mockSeeder := new(testutil.MockSeeder)
		mockSeeder.On("SeedAll", context.Background()).Return(fmt.Errorf("malformed seed file"))

		factory := func() (Migrator, error) { return mockMigrator, nil }

		service := NewSystemService(nil, factory, mockSeeder, testutil.NewTestLogger())

		err := service.FullReset(context.Background())

		assert.Error(t, err)
		mockMigrator.AssertExpectations(t)
		mockSeeder.AssertExpectations(t)
	})

	t.Run("factory failure", func(t *testing.T) {
		factory := func() (Migrator, error) { return nil, fmt.Errorf("bad migrations path") }

		service := NewSystemService(nil, factory, nil, testutil.NewTestLogger())

		err := service.FullReset(context.Background())

		assert.Error(t, err)
	})
}
