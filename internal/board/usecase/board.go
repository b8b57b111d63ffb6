package usecase

import (
	"context"

	"review-task-board/internal/board"
	repo "review-task-board/internal/board/repository"
	"review-task-board/internal/reviewtask"
)

// Create opens a new board whose selection is read from the `tags` query
// parameter.
func (uc *implUseCase) Create(ctx context.Context, input board.CreateInput) (board.Output, error) {
	var sel board.Selection
	sel.Load(input.Query)

	b, err := uc.repo.CreateBoard(ctx, repo.CreateBoardOptions{Selection: sel.Tags()})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateBoard: %v", err)
		return board.Output{}, err
	}

	uc.l.Infof(ctx, "board %s created with selection %v", b.ID, b.Selection)
	return uc.output(b), nil
}

// Detail returns the board with the tasks visible under its selection.
func (uc *implUseCase) Detail(ctx context.Context, input board.DetailInput) (board.DetailOutput, error) {
	b, err := uc.repo.GetOneBoard(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneBoard: %v", err)
		return board.DetailOutput{}, err
	}
	if b.ID == "" {
		return board.DetailOutput{}, board.ErrBoardNotFound
	}

	list, err := uc.taskUC.List(ctx, reviewtask.ListTasksInput{
		Tags:   b.Selection,
		Policy: input.Policy,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail taskUC.List: %v", err)
		return board.DetailOutput{}, err
	}

	return board.DetailOutput{
		Output: uc.output(b),
		Tasks:  list.Tasks,
		Total:  list.Total,
		Policy: list.Policy,
	}, nil
}
