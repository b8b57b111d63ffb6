package usecase

import (
	"context"

	"review-task-board/internal/board"
	repo "review-task-board/internal/board/repository"
	"review-task-board/internal/model"
)

func (uc *implUseCase) output(b model.Board) board.Output {
	return board.Output{
		Board: b,
		Query: board.NewSelection(b.Selection...).RawQuery(),
	}
}

// updateSelection applies fn to the board's selection and stores the result.
func (uc *implUseCase) updateSelection(ctx context.Context, id string, op string, fn func(sel *board.Selection)) (board.Output, error) {
	b, err := uc.repo.UpdateBoard(ctx, repo.UpdateBoardOptions{
		ID: id,
		Mutate: func(b *model.Board) error {
			sel := board.NewSelection(b.Selection...)
			fn(&sel)
			b.Selection = sel.Tags()
			return nil
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s UpdateBoard: %v", op, err)
		return board.Output{}, err
	}
	if b.ID == "" {
		return board.Output{}, board.ErrBoardNotFound
	}
	return uc.output(b), nil
}
