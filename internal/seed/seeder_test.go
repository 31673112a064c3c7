package seed

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"langportal/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestSeeder_SeedAll(t *testing.T) {
	dir := t.TempDir()

	writeSeedFile(t, dir, "data_nouns.json", `{
		"group_name": "Everyday Nouns",
		"words": [
			{"french": "chien", "english": "dog", "gender": "masculine", "parts": {"article": "le", "plural": "chiens"}}
		]
	}`)
	writeSeedFile(t, dir, "study_activities.json", `{
		"activities": [
			{"name": "Flashcards", "thumbnail_url": "https://example.com/cards.png"}
		]
	}`)
	writeSeedFile(t, dir, "notes.txt", "ignored")

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM groups WHERE name = \\$1").
		WithArgs("Everyday Nouns").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO groups").
		WithArgs("Everyday Nouns").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery("SELECT id FROM words WHERE french = \\$1 AND english = \\$2").
		WithArgs("chien", "dog").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO words").
		WithArgs("chien", "dog", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectExec("INSERT INTO words_groups").
		WithArgs(4, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id FROM study_activities WHERE name = \\$1").
		WithArgs("Flashcards").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO study_activities").
		WithArgs("Flashcards", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	seeder := NewSeeder(db, dir, testutil.NewTestLogger())

	err = seeder.SeedAll(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeeder_SeedAll_Idempotent(t *testing.T) {
	dir := t.TempDir()

	writeSeedFile(t, dir, "data_nouns.json", `{
		"group_name": "Everyday Nouns",
		"words": [
			{"french": "chien", "english": "dog", "parts": {}}
		]
	}`)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM groups WHERE name = \\$1").
		WithArgs("Everyday Nouns").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery("SELECT id FROM words WHERE french = \\$1 AND english = \\$2").
		WithArgs("chien", "dog").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectExec("INSERT INTO words_groups").
		WithArgs(4, 1).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	seeder := NewSeeder(db, dir, testutil.NewTestLogger())

	err = seeder.SeedAll(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeeder_SeedAll_MissingGroupName(t *testing.T) {
	dir := t.TempDir()

	writeSeedFile(t, dir, "data_bad.json", `{"words": []}`)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	seeder := NewSeeder(db, dir, testutil.NewTestLogger())

	err = seeder.SeedAll(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "group_name is empty")
}
