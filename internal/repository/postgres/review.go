package postgres

import (
	"context"
	"database/sql"

	"langportal/internal/domain"
)

// ReviewRepo implements repository.ReviewRepository
type ReviewRepo struct {
	db *sql.DB
}

// NewReviewRepo creates a new review repository
func NewReviewRepo(db *sql.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// Create inserts a review item and returns it with its timestamp
func (r *ReviewRepo) Create(ctx context.Context, sessionID, wordID int, correct bool) (*domain.ReviewItem, error) {
	query := `
		INSERT INTO word_review_items (word_id, study_session_id, correct, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	item := domain.ReviewItem{
		WordID:         wordID,
		StudySessionID: sessionID,
		Correct:        correct,
	}
	err := r.db.QueryRowContext(ctx, query, wordID, sessionID, correct).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &item, nil
}
