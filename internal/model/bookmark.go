package model

import "time"

// Bookmark is a named snapshot of a tag selection.
type Bookmark struct {
	ID      string // ULID, sorts by save time
	Name    string
	Tags    []string
	SavedAt time.Time
}

// Board is the per-client view state: the live tag selection and the
// bookmarks saved from it.
type Board struct {
	ID        string
	Selection []string
	Bookmarks []Bookmark
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy of b.
func (b Board) Clone() Board {
	c := b
	c.Selection = append([]string(nil), b.Selection...)
	c.Bookmarks = make([]Bookmark, len(b.Bookmarks))
	for i, bm := range b.Bookmarks {
		bm.Tags = append([]string(nil), bm.Tags...)
		c.Bookmarks[i] = bm
	}
	return c
}
