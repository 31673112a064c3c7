package service

import (
	"context"
	"fmt"

	"langportal/internal/repository"

	"go.uber.org/zap"
)

// Migrator is the slice of golang-migrate used by the full reset
type Migrator interface {
	Drop() error
	Up() error
}

// MigratorFactory builds a fresh Migrator. A new instance is needed
// after Drop(), which removes the schema version table.
type MigratorFactory func() (Migrator, error)

// Seeder loads the baseline words, groups and activities
type Seeder interface {
	SeedAll(ctx context.Context) error
}

// SystemService handles the reset operations
type SystemService struct {
	systemRepo  repository.SystemRepository
	newMigrator MigratorFactory
	seeder      Seeder
	logger      *zap.Logger
}

// NewSystemService creates a new system service
func NewSystemService(
	systemRepo repository.SystemRepository,
	newMigrator MigratorFactory,
	seeder Seeder,
	logger *zap.Logger,
) *SystemService {
	return &SystemService{
		systemRepo:  systemRepo,
		newMigrator: newMigrator,
		seeder:      seeder,
		logger:      logger,
	}
}

// ResetHistory deletes all review items and study sessions
func (s *SystemService) ResetHistory(ctx context.Context) error {
	s.logger.Info("Resetting study history")

	if err := s.systemRepo.ResetHistory(ctx); err != nil {
		s.logger.Error("Failed to reset study history", zap.Error(err))
		return err
	}

	s.logger.Info("Study history reset")
	return nil
}

// FullReset drops and recreates the schema, then reseeds the baseline
// data. Seeding runs in its own transaction, so a failed reseed leaves
// an empty but consistent schema.
func (s *SystemService) FullReset(ctx context.Context) error {
	s.logger.Info("Running full reset")

	m, err := s.newMigrator()
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Drop(); err != nil {
		s.logger.Error("Failed to drop schema", zap.Error(err))
		return fmt.Errorf("drop schema: %w", err)
	}

	m, err = s.newMigrator()
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Up(); err != nil {
		s.logger.Error("Failed to recreate schema", zap.Error(err))
		return fmt.Errorf("recreate schema: %w", err)
	}

	if err := s.seeder.SeedAll(ctx); err != nil {
		s.logger.Error("Failed to reseed data", zap.Error(err))
		return fmt.Errorf("reseed data: %w", err)
	}

	s.logger.Info("Full reset completed")
	return nil
}
