package testutil

import (
	"time"

	"langportal/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test word with stats
func NewTestWord(id int, french, english string, correct, wrong int) domain.WordWithStats {
	return domain.WordWithStats{
		Word: domain.Word{
			ID:      id,
			French:  french,
			English: english,
			Parts:   domain.WordParts{Kind: domain.PartsNone},
		},
		Stats: domain.WordStats{
			CorrectCount: correct,
			WrongCount:   wrong,
		},
	}
}

// NewTestGroup creates a test group
func NewTestGroup(id int, name string, wordCount int) domain.Group {
	return domain.Group{
		ID:        id,
		Name:      name,
		WordCount: wordCount,
	}
}

// NewTestActivity creates a test study activity
func NewTestActivity(id int, name string) domain.StudyActivity {
	thumbnail := "https://example.com/thumb.png"
	return domain.StudyActivity{
		ID:           id,
		Name:         name,
		ThumbnailURL: &thumbnail,
	}
}

// NewTestSession creates a test study session
func NewTestSession(id, groupID, activityID int, start time.Time) domain.StudySession {
	return domain.StudySession{
		ID:              id,
		GroupID:         groupID,
		StudyActivityID: activityID,
		GroupName:       "Core Verbs",
		ActivityName:    "Flashcards",
		StartTime:       start,
	}
}
