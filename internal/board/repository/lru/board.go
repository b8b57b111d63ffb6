package lru

import (
	"context"

	"github.com/google/uuid"

	repo "review-task-board/internal/board/repository"
	"review-task-board/internal/model"
)

func newBoardID() string {
	return uuid.NewString()
}

// CreateBoard stores a new Board with a fresh id.
func (r *implRepository) CreateBoard(ctx context.Context, opt repo.CreateBoardOptions) (model.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	b := &model.Board{
		ID:        r.newID(),
		Selection: append([]string(nil), opt.Selection...),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if b.ID == "" {
		r.l.Errorf(ctx, "%s: empty board id", r.dsn("CreateBoard"))
		return model.Board{}, repo.ErrFailedToCreate
	}
	r.boards.Add(b.ID, b)
	return b.Clone(), nil
}

// GetOneBoard returns a copy of the Board.
// Returns zero-value Board (ID == "") when not found or expired.
func (r *implRepository) GetOneBoard(ctx context.Context, id string) (model.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.boards.Get(id)
	if !ok {
		return model.Board{}, nil
	}
	return b.Clone(), nil
}

// UpdateBoard runs opt.Mutate on a working copy and stores it when Mutate
// succeeds. Storing refreshes the board's expiry.
func (r *implRepository) UpdateBoard(ctx context.Context, opt repo.UpdateBoardOptions) (model.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.boards.Get(opt.ID)
	if !ok {
		return model.Board{}, nil
	}

	working := stored.Clone()
	if opt.Mutate != nil {
		if err := opt.Mutate(&working); err != nil {
			return model.Board{}, err
		}
	}
	working.ID = stored.ID
	working.CreatedAt = stored.CreatedAt
	working.UpdatedAt = r.now()

	r.boards.Add(working.ID, &working)
	return working.Clone(), nil
}
