// Package seed loads the baseline vocabulary from JSON files.
package seed

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"langportal/internal/domain"

	"go.uber.org/zap"
)

const activitiesFile = "study_activities.json"

// groupFile is the shape of each per-group seed file
type groupFile struct {
	GroupName string `json:"group_name"`
	Words     []struct {
		French  string          `json:"french"`
		English string          `json:"english"`
		Gender  *string         `json:"gender"`
		Parts   json.RawMessage `json:"parts"`
	} `json:"words"`
}

type activityFile struct {
	Activities []struct {
		Name         string  `json:"name"`
		ThumbnailURL *string `json:"thumbnail_url"`
		Description  *string `json:"description"`
	} `json:"activities"`
}

// Seeder loads seed files from a directory into the store
type Seeder struct {
	db     *sql.DB
	dir    string
	logger *zap.Logger
}

// NewSeeder creates a new seeder reading from dir
func NewSeeder(db *sql.DB, dir string, logger *zap.Logger) *Seeder {
	return &Seeder{db: db, dir: dir, logger: logger}
}

// SeedAll loads every seed file inside a single transaction. Seeding
// is idempotent: existing groups, words and activities are reused.
func (s *Seeder) SeedAll(ctx context.Context) error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("read seeds directory: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") || name == activitiesFile {
			continue
		}
		if err := s.seedGroupFile(ctx, tx, filepath.Join(s.dir, name)); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
	}

	if err := s.seedActivities(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}

	s.logger.Info("Seed data loaded", zap.String("dir", s.dir))
	return nil
}

func (s *Seeder) seedGroupFile(ctx context.Context, tx *sql.Tx, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file groupFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("decode group file: %w", err)
	}
	if file.GroupName == "" {
		return fmt.Errorf("group_name is empty")
	}

	var groupID int
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM groups WHERE name = $1`, file.GroupName,
	).Scan(&groupID)
	if err == sql.ErrNoRows {
		err = tx.QueryRowContext(ctx,
			`INSERT INTO groups (name) VALUES ($1) RETURNING id`, file.GroupName,
		).Scan(&groupID)
	}
	if err != nil {
		return err
	}

	for _, w := range file.Words {
		parts, err := domain.DecodeParts(w.Parts)
		if err != nil {
			return fmt.Errorf("word %q: %w", w.French, err)
		}

		var wordID int
		err = tx.QueryRowContext(ctx,
			`SELECT id FROM words WHERE french = $1 AND english = $2`, w.French, w.English,
		).Scan(&wordID)
		if err == sql.ErrNoRows {
			err = tx.QueryRowContext(ctx,
				`INSERT INTO words (french, english, gender, parts) VALUES ($1, $2, $3, $4) RETURNING id`,
				w.French, w.English, w.Gender, parts,
			).Scan(&wordID)
		}
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO words_groups (word_id, group_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			wordID, groupID,
		); err != nil {
			return err
		}
	}

	return nil
}

func (s *Seeder) seedActivities(ctx context.Context, tx *sql.Tx) error {
	path := filepath.Join(s.dir, activitiesFile)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var file activityFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("decode activities file: %w", err)
	}

	for _, a := range file.Activities {
		var id int
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM study_activities WHERE name = $1`, a.Name,
		).Scan(&id)
		if err == sql.ErrNoRows {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO study_activities (name, thumbnail_url, description) VALUES ($1, $2, $3)`,
				a.Name, a.ThumbnailURL, a.Description,
			)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
