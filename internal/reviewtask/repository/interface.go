package repository

import (
	"context"

	"review-task-board/internal/model"
)

// Repository is the composed interface for the review task store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
// Tasks are never created or deleted after seeding.
type TaskRepository interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	AppendTag(ctx context.Context, opt AppendTagOptions) (model.Task, bool, error)
	RemoveTag(ctx context.Context, opt RemoveTagOptions) (model.Task, bool, error)
}
