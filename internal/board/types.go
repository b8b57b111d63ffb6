package board

import (
	"net/url"

	"review-task-board/internal/model"
	"review-task-board/internal/tagfilter"
)

// --- UseCase Inputs ---

// CreateInput seeds the new board's selection from Query.
type CreateInput struct {
	Query url.Values
}

type DetailInput struct {
	ID     string
	Policy tagfilter.Policy
}

type ToggleInput struct {
	ID  string
	Tag string
}

type LoadInput struct {
	ID    string
	Query url.Values
}

type SaveBookmarkInput struct {
	ID       string
	Prompter NamePrompter
}

// ApplyBookmarkInput addresses the bookmark by BookmarkID when set, by Index
// otherwise.
type ApplyBookmarkInput struct {
	ID         string
	Index      int
	BookmarkID string
}

// --- UseCase Outputs ---

// Output is a board together with the canonical query string of its
// selection ("" when nothing is selected).
type Output struct {
	Board model.Board
	Query string
}

type DetailOutput struct {
	Output
	Tasks  []model.Task
	Total  int
	Policy tagfilter.Policy
}

type SaveBookmarkOutput struct {
	Output
	Bookmark model.Bookmark
	Saved    bool
}

type ListBookmarksOutput struct {
	Bookmarks []model.Bookmark
}
