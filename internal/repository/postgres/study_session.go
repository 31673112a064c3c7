package postgres

import (
	"context"
	"database/sql"

	"langportal/internal/domain"
)

// StudySessionRepo implements repository.StudySessionRepository
type StudySessionRepo struct {
	db *sql.DB
}

// NewStudySessionRepo creates a new study session repository
func NewStudySessionRepo(db *sql.DB) *StudySessionRepo {
	return &StudySessionRepo{db: db}
}

const sessionSelect = `
	SELECT s.id, s.group_id, s.study_activity_id, g.name, a.name,
		s.start_time, s.end_time,
		(SELECT COUNT(*) FROM word_review_items r WHERE r.study_session_id = s.id) AS review_items_count
	FROM study_sessions s
	JOIN groups g ON g.id = s.group_id
	JOIN study_activities a ON a.id = s.study_activity_id
`

// Create inserts a new session with start_time = now and no end_time
func (r *StudySessionRepo) Create(ctx context.Context, groupID, activityID int) (int, error) {
	query := `
		INSERT INTO study_sessions (group_id, study_activity_id, start_time)
		VALUES ($1, $2, NOW())
		RETURNING id
	`

	var id int
	err := r.db.QueryRowContext(ctx, query, groupID, activityID).Scan(&id)
	return id, err
}

// List returns one page of sessions ordered by start time
func (r *StudySessionRepo) List(ctx context.Context, limit, offset int) ([]domain.StudySession, error) {
	query := sessionSelect + `
		ORDER BY s.start_time
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSessions(rows)
}

// Count returns the total number of sessions
func (r *StudySessionRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM study_sessions`).Scan(&count)
	return count, err
}

// GetByID returns a single session, or nil if it does not exist
func (r *StudySessionRepo) GetByID(ctx context.Context, id int) (*domain.StudySession, error) {
	query := sessionSelect + `
		WHERE s.id = $1
	`

	s, err := scanSession(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Exists reports whether a session with the given id exists
func (r *StudySessionRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM study_sessions WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// ListByGroup returns one page of a group's sessions
func (r *StudySessionRepo) ListByGroup(ctx context.Context, groupID, limit, offset int) ([]domain.StudySession, error) {
	query := sessionSelect + `
		WHERE s.group_id = $1
		ORDER BY s.start_time
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, groupID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSessions(rows)
}

// CountByGroup returns the number of sessions for a group
func (r *StudySessionRepo) CountByGroup(ctx context.Context, groupID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM study_sessions WHERE group_id = $1`, groupID,
	).Scan(&count)
	return count, err
}

// ListByActivity returns one page of an activity's sessions
func (r *StudySessionRepo) ListByActivity(ctx context.Context, activityID, limit, offset int) ([]domain.StudySession, error) {
	query := sessionSelect + `
		WHERE s.study_activity_id = $1
		ORDER BY s.start_time
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, activityID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSessions(rows)
}

// CountByActivity returns the number of sessions for an activity
func (r *StudySessionRepo) CountByActivity(ctx context.Context, activityID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM study_sessions WHERE study_activity_id = $1`, activityID,
	).Scan(&count)
	return count, err
}

// Close stamps end_time on an open session. Sessions already closed
// keep their original end_time.
func (r *StudySessionRepo) Close(ctx context.Context, id int) error {
	query := `
		UPDATE study_sessions
		SET end_time = NOW()
		WHERE id = $1 AND end_time IS NULL
	`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func scanSession(scan func(dest ...any) error) (*domain.StudySession, error) {
	var s domain.StudySession
	var endTime sql.NullTime
	if err := scan(
		&s.ID, &s.GroupID, &s.StudyActivityID, &s.GroupName, &s.ActivityName,
		&s.StartTime, &endTime, &s.ReviewItemsCount,
	); err != nil {
		return nil, err
	}
	if endTime.Valid {
		s.EndTime = &endTime.Time
	}
	return &s, nil
}

func scanSessions(rows *sql.Rows) ([]domain.StudySession, error) {
	sessions := []domain.StudySession{}
	for rows.Next() {
		s, err := scanSession(rows.Scan)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}
