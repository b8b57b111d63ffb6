package usecase

import (
	"time"

	"review-task-board/internal/board/repository"
	"review-task-board/internal/reviewtask"
	"review-task-board/pkg/log"
)

// Options tunes bookmark behavior.
type Options struct {
	// AllowEmptyBookmarks lets a bookmark be saved while nothing is selected.
	AllowEmptyBookmarks bool
}

// implUseCase is the private implementation of board.UseCase.
type implUseCase struct {
	repo       repository.Repository
	taskUC     reviewtask.UseCase
	l          log.Logger
	allowEmpty bool
	now        func() time.Time
}

// New creates a new board UseCase implementation. taskUC computes the tasks
// visible under a board's selection.
func New(repo repository.Repository, taskUC reviewtask.UseCase, l log.Logger, opt Options) *implUseCase {
	return &implUseCase{
		repo:       repo,
		taskUC:     taskUC,
		l:          l,
		allowEmpty: opt.AllowEmptyBookmarks,
		now:        time.Now,
	}
}
