package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"langportal/internal/domain"
	"langportal/internal/repository"
)

var groupSortColumns = map[string]string{
	"name":        "g.name",
	"words_count": "word_count",
}

// GroupRepo implements repository.GroupRepository
type GroupRepo struct {
	db *sql.DB
}

// NewGroupRepo creates a new group repository
func NewGroupRepo(db *sql.DB) *GroupRepo {
	return &GroupRepo{db: db}
}

// List returns one page of groups with their derived word counts
func (r *GroupRepo) List(ctx context.Context, sort repository.Sort, limit, offset int) ([]domain.Group, error) {
	query := fmt.Sprintf(`
		SELECT g.id, g.name,
			(SELECT COUNT(*) FROM words_groups wg WHERE wg.group_id = g.id) AS word_count
		FROM groups g
		ORDER BY %s
		LIMIT $1 OFFSET $2
	`, orderClause(groupSortColumns, sort, "g.name"))

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []domain.Group{}
	for rows.Next() {
		var g domain.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.WordCount); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	return groups, rows.Err()
}

// Count returns the total number of groups
func (r *GroupRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM groups`).Scan(&count)
	return count, err
}

// GetByID returns a single group, or nil if it does not exist
func (r *GroupRepo) GetByID(ctx context.Context, id int) (*domain.Group, error) {
	query := `
		SELECT g.id, g.name,
			(SELECT COUNT(*) FROM words_groups wg WHERE wg.group_id = g.id) AS word_count
		FROM groups g
		WHERE g.id = $1
	`

	var g domain.Group
	err := r.db.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Name, &g.WordCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &g, nil
}

// Exists reports whether a group with the given id exists
func (r *GroupRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM groups WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
