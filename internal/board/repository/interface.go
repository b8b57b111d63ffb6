package repository

import (
	"context"

	"review-task-board/internal/model"
)

// Repository is the composed interface for the board session store.
type Repository interface {
	BoardRepository
}

// BoardRepository stores boards. Get and Update return a zero-value Board
// (ID == "") when the id is unknown or expired.
type BoardRepository interface {
	CreateBoard(ctx context.Context, opt CreateBoardOptions) (model.Board, error)
	GetOneBoard(ctx context.Context, id string) (model.Board, error)
	UpdateBoard(ctx context.Context, opt UpdateBoardOptions) (model.Board, error)
}
