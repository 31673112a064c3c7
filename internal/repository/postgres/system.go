package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// SystemRepo implements repository.SystemRepository
type SystemRepo struct {
	db *sql.DB
}

// NewSystemRepo creates a new system repository
func NewSystemRepo(db *sql.DB) *SystemRepo {
	return &SystemRepo{db: db}
}

// ResetHistory deletes all review items and study sessions in one
// transaction. Words, groups and activities are untouched.
func (r *SystemRepo) ResetHistory(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM word_review_items`); err != nil {
		return fmt.Errorf("delete review items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM study_sessions`); err != nil {
		return fmt.Errorf("delete study sessions: %w", err)
	}

	return tx.Commit()
}
