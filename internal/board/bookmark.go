package board

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"review-task-board/internal/model"
)

// NamePrompter supplies a bookmark name. ok is false when the user cancelled.
type NamePrompter interface {
	RequestName(ctx context.Context) (name string, ok bool)
}

// StaticName is a NamePrompter that always answers with itself.
type StaticName string

func (n StaticName) RequestName(context.Context) (string, bool) {
	return string(n), true
}

// Registry is an append-only list of bookmarks.
type Registry struct {
	items []model.Bookmark
}

// NewRegistry wraps existing bookmarks.
func NewRegistry(items []model.Bookmark) Registry {
	return Registry{items: items}
}

// Save appends a snapshot of sel under name. A blank name abandons the save
// and reports false. Names need not be unique.
func (r *Registry) Save(name string, sel Selection, now time.Time) (model.Bookmark, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Bookmark{}, false
	}
	bm := model.Bookmark{
		ID:      newBookmarkID(now),
		Name:    name,
		Tags:    sel.Tags(),
		SavedAt: now,
	}
	r.items = append(r.items, bm)
	return cloneBookmark(bm), true
}

// Find returns the index of the bookmark with the given id.
func (r Registry) Find(id string) (int, bool) {
	for i, bm := range r.items {
		if strings.EqualFold(bm.ID, id) {
			return i, true
		}
	}
	return -1, false
}

// Get returns the bookmark at index i.
func (r Registry) Get(i int) (model.Bookmark, bool) {
	if i < 0 || i >= len(r.items) {
		return model.Bookmark{}, false
	}
	return cloneBookmark(r.items[i]), true
}

// List returns copies of every bookmark in save order.
func (r Registry) List() []model.Bookmark {
	out := make([]model.Bookmark, len(r.items))
	for i, bm := range r.items {
		out[i] = cloneBookmark(bm)
	}
	return out
}

func (r Registry) Len() int { return len(r.items) }

// Apply replaces sel with the bookmark's tags, dropping the previous selection.
func Apply(sel *Selection, bm model.Bookmark) {
	sel.Replace(bm.Tags)
}

func cloneBookmark(bm model.Bookmark) model.Bookmark {
	bm.Tags = append([]string(nil), bm.Tags...)
	return bm
}

func newBookmarkID(now time.Time) string {
	id, err := ulid.New(ulid.Timestamp(now), ulid.DefaultEntropy())
	if err != nil {
		// fallback
		return fmt.Sprintf("%d", now.UnixNano())
	}
	return id.String()
}
