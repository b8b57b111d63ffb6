package memory

import (
	"context"

	"review-task-board/internal/model"
	repo "review-task-board/internal/reviewtask/repository"
)

// ListTasks returns a copy of every task in seed order.
func (r *implRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, len(r.tasks))
	for i, t := range r.tasks {
		out[i] = t.Clone()
	}
	return out, nil
}

// GetOneTask returns the task with opt.ID.
// Returns zero-value Task (ID == 0) when not found, no error.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	return r.tasks[i].Clone(), nil
}

// AppendTag appends opt.Tag to the task's tags and reports whether the task
// changed. Unknown ids return a zero-value Task.
func (r *implRepository) AppendTag(ctx context.Context, opt repo.AppendTagOptions) (model.Task, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[opt.ID]
	if !ok {
		return model.Task{}, false, nil
	}

	t := &r.tasks[i]
	if opt.Dedup && t.HasTag(opt.Tag) {
		return t.Clone(), false, nil
	}
	t.Tags = append(t.Tags, opt.Tag)
	r.l.Debugf(ctx, "%s: task %d tags=%v", r.dsn("AppendTag"), t.ID, t.Tags)
	return t.Clone(), true, nil
}

// RemoveTag removes every occurrence of opt.Tag from the task's tags.
func (r *implRepository) RemoveTag(ctx context.Context, opt repo.RemoveTagOptions) (model.Task, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[opt.ID]
	if !ok {
		return model.Task{}, false, nil
	}

	t := &r.tasks[i]
	kept := make([]string, 0, len(t.Tags))
	for _, tag := range t.Tags {
		if tag != opt.Tag {
			kept = append(kept, tag)
		}
	}
	if len(kept) == len(t.Tags) {
		return t.Clone(), false, nil
	}
	t.Tags = kept
	r.l.Debugf(ctx, "%s: task %d tags=%v", r.dsn("RemoveTag"), t.ID, t.Tags)
	return t.Clone(), true, nil
}
