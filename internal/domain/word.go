package domain

// Word represents a vocabulary entry
type Word struct {
	ID      int
	French  string
	English string
	Gender  *string
	Parts   WordParts
}

// WordStats holds review counters aggregated across all sessions
type WordStats struct {
	CorrectCount int
	WrongCount   int
}

// WordWithStats is a word annotated with its review counters
type WordWithStats struct {
	Word
	Stats WordStats
}

// GroupRef is a minimal group reference embedded in word details
type GroupRef struct {
	ID   int
	Name string
}

// WordDetail is the full by-id view: word, stats and its groups
type WordDetail struct {
	WordWithStats
	Groups []GroupRef
}

// NewWord holds the fields accepted when creating a word
type NewWord struct {
	French  string
	English string
	Gender  *string
	Parts   WordParts
}
