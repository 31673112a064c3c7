package domain

// Group represents a named collection of words.
// WordCount is derived from the association table, never stored.
type Group struct {
	ID        int
	Name      string
	WordCount int
}
