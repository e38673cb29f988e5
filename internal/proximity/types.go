package proximity

// Entry is one scored input record.
type Entry struct {
	Path  string
	Score int
	// Index is the position among retained (non-empty) records.
	Index int
}
