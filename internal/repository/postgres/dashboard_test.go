package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestDashboardRepo_LastSession(t *testing.T) {
	t.Run("most recent session", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewDashboardRepo(db)

		rows := sqlmock.NewRows(sessionColumns).
			AddRow(8, 2, 3, "Core Verbs", "Flashcards", time.Now(), nil, 6)

		mock.ExpectQuery("ORDER BY s.start_time DESC LIMIT 1").
			WillReturnRows(rows)

		session, err := repo.LastSession(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 8, session.ID)
		assert.Equal(t, 6, session.ReviewItemsCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no sessions yet", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewDashboardRepo(db)

		mock.ExpectQuery("ORDER BY s.start_time DESC LIMIT 1").
			WillReturnError(sql.ErrNoRows)

		session, err := repo.LastSession(context.Background())

		assert.NoError(t, err)
		assert.Nil(t, session)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDashboardRepo_ReviewTotals(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewDashboardRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\), COUNT\\(\\*\\) FILTER \\(WHERE correct\\) FROM word_review_items").
		WillReturnRows(sqlmock.NewRows([]string{"count", "count"}).AddRow(10, 7))

	total, correct, err := repo.ReviewTotals(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 10, total)
	assert.Equal(t, 7, correct)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepo_SessionDates(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewDashboardRepo(db)

	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"day"}).
		AddRow(today).
		AddRow(today.AddDate(0, 0, -1))

	mock.ExpectQuery("SELECT DISTINCT DATE\\(start_time AT TIME ZONE 'UTC'\\) AS day FROM study_sessions ORDER BY day DESC").
		WillReturnRows(rows)

	dates, err := repo.SessionDates(context.Background())

	assert.NoError(t, err)
	assert.Len(t, dates, 2)
	assert.Equal(t, today, dates[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepo_CountStudiedWords(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewDashboardRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(DISTINCT word_id\\) FROM word_review_items").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountStudiedWords(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
