package postgres

import (
	"context"
	"database/sql"
	"time"

	"langportal/internal/domain"
)

// DashboardRepo implements repository.DashboardRepository
type DashboardRepo struct {
	db *sql.DB
}

// NewDashboardRepo creates a new dashboard repository
func NewDashboardRepo(db *sql.DB) *DashboardRepo {
	return &DashboardRepo{db: db}
}

// LastSession returns the most recent session by start time, or nil
func (r *DashboardRepo) LastSession(ctx context.Context) (*domain.StudySession, error) {
	query := sessionSelect + `
		ORDER BY s.start_time DESC
		LIMIT 1
	`

	s, err := scanSession(r.db.QueryRowContext(ctx, query).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}

// CountWords returns the total number of words in the store
func (r *DashboardRepo) CountWords(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&count)
	return count, err
}

// CountStudiedWords returns the number of distinct words with any review
func (r *DashboardRepo) CountStudiedWords(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT word_id) FROM word_review_items`,
	).Scan(&count)
	return count, err
}

// ReviewTotals returns the overall and correct review counts
func (r *DashboardRepo) ReviewTotals(ctx context.Context) (int, int, error) {
	var total, correct int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE correct) FROM word_review_items`,
	).Scan(&total, &correct)
	return total, correct, err
}

// CountSessions returns the total number of study sessions
func (r *DashboardRepo) CountSessions(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM study_sessions`).Scan(&count)
	return count, err
}

// CountGroups returns the total number of groups
func (r *DashboardRepo) CountGroups(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM groups`).Scan(&count)
	return count, err
}

// SessionDates returns the distinct UTC calendar days with at least
// one session start, newest first
func (r *DashboardRepo) SessionDates(ctx context.Context) ([]time.Time, error) {
	query := `
		SELECT DISTINCT DATE(start_time AT TIME ZONE 'UTC') AS day
		FROM study_sessions
		ORDER BY day DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}

	return dates, rows.Err()
}
