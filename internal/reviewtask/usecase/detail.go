package usecase

import (
	"context"

	"review-task-board/internal/reviewtask"
	repo "review-task-board/internal/reviewtask/repository"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int) (reviewtask.DetailTaskOutput, error) {
	task, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return reviewtask.DetailTaskOutput{}, err
	}
	if task.ID == 0 {
		return reviewtask.DetailTaskOutput{}, reviewtask.ErrTaskNotFound
	}
	return reviewtask.DetailTaskOutput{Task: task}, nil
}
