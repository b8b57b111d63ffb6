package board

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (Output, error)
	Detail(ctx context.Context, input DetailInput) (DetailOutput, error)

	// Selection
	Toggle(ctx context.Context, input ToggleInput) (Output, error)
	Clear(ctx context.Context, id string) (Output, error)
	Load(ctx context.Context, input LoadInput) (Output, error)

	// Bookmarks
	SaveBookmark(ctx context.Context, input SaveBookmarkInput) (SaveBookmarkOutput, error)
	ListBookmarks(ctx context.Context, id string) (ListBookmarksOutput, error)
	ApplyBookmark(ctx context.Context, input ApplyBookmarkInput) (Output, error)
}
