package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"langportal/internal/domain"
	"langportal/internal/repository"
)

// Allow-list mapping of sort keys to column identifiers. Sort input
// never reaches the query string directly.
var wordSortColumns = map[string]string{
	"french":  "w.french",
	"english": "w.english",
	"gender":  "w.gender",
}

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

const wordWithStatsColumns = `
	w.id, w.french, w.english, w.gender, w.parts,
	COUNT(r.id) FILTER (WHERE r.correct) AS correct_count,
	COUNT(r.id) FILTER (WHERE NOT r.correct) AS wrong_count
`

// List returns one page of words with aggregated review counters
func (r *WordRepo) List(ctx context.Context, sort repository.Sort, limit, offset int) ([]domain.WordWithStats, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM words w
		LEFT JOIN word_review_items r ON r.word_id = w.id
		GROUP BY w.id
		ORDER BY %s
		LIMIT $1 OFFSET $2
	`, wordWithStatsColumns, orderClause(wordSortColumns, sort, "w.french"))

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWordsWithStats(rows)
}

// Count returns the total number of words
func (r *WordRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&count)
	return count, err
}

// GetByID returns a single word with stats, or nil if it does not exist
func (r *WordRepo) GetByID(ctx context.Context, id int) (*domain.WordWithStats, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM words w
		LEFT JOIN word_review_items r ON r.word_id = w.id
		WHERE w.id = $1
		GROUP BY w.id
	`, wordWithStatsColumns)

	var w domain.WordWithStats
	var gender sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&w.ID, &w.French, &w.English, &gender, &w.Parts,
		&w.Stats.CorrectCount, &w.Stats.WrongCount,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if gender.Valid {
		w.Gender = &gender.String
	}

	return &w, nil
}

// GroupsFor returns the groups a word belongs to
func (r *WordRepo) GroupsFor(ctx context.Context, wordID int) ([]domain.GroupRef, error) {
	query := `
		SELECT g.id, g.name
		FROM groups g
		JOIN words_groups wg ON wg.group_id = g.id
		WHERE wg.word_id = $1
		ORDER BY g.name
	`

	rows, err := r.db.QueryContext(ctx, query, wordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []domain.GroupRef{}
	for rows.Next() {
		var g domain.GroupRef
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	return groups, rows.Err()
}

// Create inserts a new word and returns its id
func (r *WordRepo) Create(ctx context.Context, word domain.NewWord) (int, error) {
	query := `
		INSERT INTO words (french, english, gender, parts)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int
	err := r.db.QueryRowContext(ctx, query, word.French, word.English, word.Gender, word.Parts).Scan(&id)
	return id, err
}

// Exists reports whether a word with the given id exists
func (r *WordRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM words WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// ListByGroup returns one page of a group's words with stats
func (r *WordRepo) ListByGroup(ctx context.Context, groupID, limit, offset int) ([]domain.WordWithStats, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM words w
		JOIN words_groups wg ON wg.word_id = w.id AND wg.group_id = $1
		LEFT JOIN word_review_items r ON r.word_id = w.id
		GROUP BY w.id
		ORDER BY w.french
		LIMIT $2 OFFSET $3
	`, wordWithStatsColumns)

	rows, err := r.db.QueryContext(ctx, query, groupID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWordsWithStats(rows)
}

// CountByGroup returns the number of words associated with a group
func (r *WordRepo) CountByGroup(ctx context.Context, groupID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM words_groups WHERE group_id = $1`, groupID,
	).Scan(&count)
	return count, err
}

// ListBySession returns one page of the words reviewed in a session.
// Stats stay aggregated across all sessions, matching the word listing.
func (r *WordRepo) ListBySession(ctx context.Context, sessionID, limit, offset int) ([]domain.WordWithStats, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM words w
		LEFT JOIN word_review_items r ON r.word_id = w.id
		WHERE w.id IN (
			SELECT DISTINCT word_id FROM word_review_items WHERE study_session_id = $1
		)
		GROUP BY w.id
		ORDER BY w.french
		LIMIT $2 OFFSET $3
	`, wordWithStatsColumns)

	rows, err := r.db.QueryContext(ctx, query, sessionID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWordsWithStats(rows)
}

// CountBySession returns the number of distinct words reviewed in a session
func (r *WordRepo) CountBySession(ctx context.Context, sessionID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT word_id) FROM word_review_items WHERE study_session_id = $1`, sessionID,
	).Scan(&count)
	return count, err
}

func scanWordsWithStats(rows *sql.Rows) ([]domain.WordWithStats, error) {
	words := []domain.WordWithStats{}
	for rows.Next() {
		var w domain.WordWithStats
		var gender sql.NullString
		if err := rows.Scan(
			&w.ID, &w.French, &w.English, &gender, &w.Parts,
			&w.Stats.CorrectCount, &w.Stats.WrongCount,
		); err != nil {
			return nil, err
		}
		if gender.Valid {
			w.Gender = &gender.String
		}
		words = append(words, w)
	}

	return words, rows.Err()
}
