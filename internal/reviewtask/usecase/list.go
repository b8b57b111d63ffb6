package usecase

import (
	"context"

	"review-task-board/internal/reviewtask"
	"review-task-board/internal/tagfilter"
)

// List returns the tasks visible under the given selection, in store order.
// An empty selection shows every task.
func (uc *implUseCase) List(ctx context.Context, input reviewtask.ListTasksInput) (reviewtask.ListTasksOutput, error) {
	policy, err := uc.resolvePolicy(input.Policy)
	if err != nil {
		return reviewtask.ListTasksOutput{}, err
	}

	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return reviewtask.ListTasksOutput{}, err
	}

	return reviewtask.ListTasksOutput{
		Tasks:     tagfilter.Filter(tasks, input.Tags, policy),
		Total:     len(tasks),
		Selection: append([]string(nil), input.Tags...),
		Policy:    policy,
	}, nil
}

// ListTags returns every tag in use with the number of tasks carrying it,
// ordered by first appearance in the store.
func (uc *implUseCase) ListTags(ctx context.Context) (reviewtask.ListTagsOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTags ListTasks: %v", err)
		return reviewtask.ListTagsOutput{}, err
	}

	var out []reviewtask.TagCount
	pos := make(map[string]int)
	for _, t := range tasks {
		counted := make(map[string]bool, len(t.Tags))
		for _, tag := range t.Tags {
			if counted[tag] {
				continue
			}
			counted[tag] = true
			if i, ok := pos[tag]; ok {
				out[i].Count++
				continue
			}
			pos[tag] = len(out)
			out = append(out, reviewtask.TagCount{Tag: tag, Count: 1})
		}
	}
	return reviewtask.ListTagsOutput{Tags: out}, nil
}
