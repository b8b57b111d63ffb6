package repository

import "review-task-board/internal/model"

// CreateBoardOptions holds the initial state of a new Board.
type CreateBoardOptions struct {
	Selection []string
}

// UpdateBoardOptions applies Mutate to the stored Board. Mutations of the
// same board are serialized. Returning an error discards the mutation.
type UpdateBoardOptions struct {
	ID     string
	Mutate func(b *model.Board) error
}
