package usecase

import (
	"context"
	"errors"

	"review-task-board/internal/board"
	repo "review-task-board/internal/board/repository"
	"review-task-board/internal/model"
)

// SaveBookmark asks input.Prompter for a name and stores a snapshot of the
// current selection under it. A cancelled or blank name, or an empty
// selection when those are not allowed, saves nothing and is not an error.
func (uc *implUseCase) SaveBookmark(ctx context.Context, input board.SaveBookmarkInput) (board.SaveBookmarkOutput, error) {
	current, err := uc.repo.GetOneBoard(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SaveBookmark GetOneBoard: %v", err)
		return board.SaveBookmarkOutput{}, err
	}
	if current.ID == "" {
		return board.SaveBookmarkOutput{}, board.ErrBoardNotFound
	}
	if len(current.Selection) == 0 && !uc.allowEmpty {
		return board.SaveBookmarkOutput{Output: uc.output(current)}, nil
	}

	var name string
	ok := false
	if input.Prompter != nil {
		name, ok = input.Prompter.RequestName(ctx)
	}
	if !ok {
		return board.SaveBookmarkOutput{Output: uc.output(current)}, nil
	}

	var (
		saved model.Bookmark
		done  bool
	)
	b, err := uc.repo.UpdateBoard(ctx, repo.UpdateBoardOptions{
		ID: input.ID,
		Mutate: func(b *model.Board) error {
			// the selection may have changed while the name was requested
			if len(b.Selection) == 0 && !uc.allowEmpty {
				return nil
			}
			reg := board.NewRegistry(b.Bookmarks)
			saved, done = reg.Save(name, board.NewSelection(b.Selection...), uc.now())
			b.Bookmarks = reg.List()
			return nil
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SaveBookmark UpdateBoard: %v", err)
		return board.SaveBookmarkOutput{}, err
	}
	if b.ID == "" {
		return board.SaveBookmarkOutput{}, board.ErrBoardNotFound
	}

	return board.SaveBookmarkOutput{
		Output:   uc.output(b),
		Bookmark: saved,
		Saved:    done,
	}, nil
}

// ListBookmarks returns the board's bookmarks in save order.
func (uc *implUseCase) ListBookmarks(ctx context.Context, id string) (board.ListBookmarksOutput, error) {
	b, err := uc.repo.GetOneBoard(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListBookmarks GetOneBoard: %v", err)
		return board.ListBookmarksOutput{}, err
	}
	if b.ID == "" {
		return board.ListBookmarksOutput{}, board.ErrBoardNotFound
	}
	return board.ListBookmarksOutput{Bookmarks: board.NewRegistry(b.Bookmarks).List()}, nil
}

// ApplyBookmark replaces the selection with the tags of the addressed
// bookmark.
func (uc *implUseCase) ApplyBookmark(ctx context.Context, input board.ApplyBookmarkInput) (board.Output, error) {
	b, err := uc.repo.UpdateBoard(ctx, repo.UpdateBoardOptions{
		ID: input.ID,
		Mutate: func(b *model.Board) error {
			reg := board.NewRegistry(b.Bookmarks)
			index := input.Index
			if input.BookmarkID != "" {
				i, ok := reg.Find(input.BookmarkID)
				if !ok {
					return board.ErrBookmarkNotFound
				}
				index = i
			}
			bm, ok := reg.Get(index)
			if !ok {
				return board.ErrBookmarkNotFound
			}
			sel := board.NewSelection(b.Selection...)
			board.Apply(&sel, bm)
			b.Selection = sel.Tags()
			return nil
		},
	})
	if errors.Is(err, board.ErrBookmarkNotFound) {
		return board.Output{}, err
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.ApplyBookmark UpdateBoard: %v", err)
		return board.Output{}, err
	}
	if b.ID == "" {
		return board.Output{}, board.ErrBoardNotFound
	}
	return uc.output(b), nil
}
