package repository

// GetOneTaskOptions selects a single Task.
type GetOneTaskOptions struct {
	ID int
}

// AppendTagOptions holds parameters for attaching a tag to a Task.
// With Dedup set, a tag already present is not appended again.
type AppendTagOptions struct {
	ID    int
	Tag   string
	Dedup bool
}

// RemoveTagOptions holds parameters for detaching a tag from a Task.
// Every occurrence of Tag is removed.
type RemoveTagOptions struct {
	ID  int
	Tag string
}
