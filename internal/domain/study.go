package domain

import "time"

// StudyActivity represents a practice activity type
type StudyActivity struct {
	ID           int
	Name         string
	ThumbnailURL *string
	Description  *string
}

// StudySession represents one run of an activity against a group.
// EndTime stays nil until the session is explicitly closed; a closed
// session is never reopened.
type StudySession struct {
	ID               int
	GroupID          int
	StudyActivityID  int
	GroupName        string
	ActivityName     string
	StartTime        time.Time
	EndTime          *time.Time
	ReviewItemsCount int
}

// ReviewItem records a single answered question; immutable once created
type ReviewItem struct {
	ID             int
	WordID         int
	StudySessionID int
	Correct        bool
	CreatedAt      time.Time
}

// StudyProgress is the dashboard words-studied aggregate
type StudyProgress struct {
	TotalWordsStudied   int
	TotalAvailableWords int
}

// QuickStats is the dashboard summary aggregate
type QuickStats struct {
	SuccessRate        float64
	TotalStudySessions int
	TotalActiveGroups  int
	StudyStreakDays    int
}
