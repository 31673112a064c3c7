package postgres

import (
	"context"
	"database/sql"

	"langportal/internal/domain"
)

// StudyActivityRepo implements repository.StudyActivityRepository
type StudyActivityRepo struct {
	db *sql.DB
}

// NewStudyActivityRepo creates a new study activity repository
func NewStudyActivityRepo(db *sql.DB) *StudyActivityRepo {
	return &StudyActivityRepo{db: db}
}

// List returns one page of study activities
func (r *StudyActivityRepo) List(ctx context.Context, limit, offset int) ([]domain.StudyActivity, error) {
	query := `
		SELECT id, name, thumbnail_url, description
		FROM study_activities
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []domain.StudyActivity{}
	for rows.Next() {
		a, err := scanActivity(rows.Scan)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *a)
	}

	return activities, rows.Err()
}

// Count returns the total number of study activities
func (r *StudyActivityRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM study_activities`).Scan(&count)
	return count, err
}

// GetByID returns a single study activity, or nil if it does not exist
func (r *StudyActivityRepo) GetByID(ctx context.Context, id int) (*domain.StudyActivity, error) {
	query := `
		SELECT id, name, thumbnail_url, description
		FROM study_activities
		WHERE id = $1
	`

	a, err := scanActivity(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return a, nil
}

// Exists reports whether a study activity with the given id exists
func (r *StudyActivityRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM study_activities WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func scanActivity(scan func(dest ...any) error) (*domain.StudyActivity, error) {
	var a domain.StudyActivity
	var thumbnail, description sql.NullString
	if err := scan(&a.ID, &a.Name, &thumbnail, &description); err != nil {
		return nil, err
	}
	if thumbnail.Valid {
		a.ThumbnailURL = &thumbnail.String
	}
	if description.Valid {
		a.Description = &description.String
	}
	return &a, nil
}
