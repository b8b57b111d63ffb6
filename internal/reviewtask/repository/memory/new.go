package memory

import (
	"fmt"
	"sync"

	"review-task-board/internal/model"
	"review-task-board/internal/reviewtask/repository"
	"review-task-board/pkg/log"
)

type implRepository struct {
	mu    sync.RWMutex
	tasks []model.Task
	index map[int]int // task id -> position in tasks
	l     log.Logger
}

// New creates an in-memory Repository seeded with tasks. Seed order is the
// display order. Ids must be positive and unique.
func New(seed []model.Task, l log.Logger) (repository.Repository, error) {
	r := &implRepository{
		tasks: make([]model.Task, 0, len(seed)),
		index: make(map[int]int, len(seed)),
		l:     l,
	}
	for _, t := range seed {
		if t.ID <= 0 {
			return nil, fmt.Errorf("%w: %d", repository.ErrInvalidTaskID, t.ID)
		}
		if _, ok := r.index[t.ID]; ok {
			return nil, fmt.Errorf("%w: %d", repository.ErrDuplicateTaskID, t.ID)
		}
		r.index[t.ID] = len(r.tasks)
		r.tasks = append(r.tasks, t.Clone())
	}
	return r, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("reviewtask/repository/memory.%s", method)
}
