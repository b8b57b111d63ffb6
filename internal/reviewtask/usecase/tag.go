package usecase

import (
	"context"

	"review-task-board/internal/reviewtask"
	repo "review-task-board/internal/reviewtask/repository"
)

// AddTag attaches a trimmed tag to a task. A blank tag or an unknown task id
// leaves the store untouched and is not an error.
func (uc *implUseCase) AddTag(ctx context.Context, input reviewtask.AddTagInput) (reviewtask.TagMutationOutput, error) {
	tag := uc.normalizeTag(input.Tag)
	if tag == "" {
		return uc.current(ctx, input.TaskID)
	}

	task, changed, err := uc.repo.AppendTag(ctx, repo.AppendTagOptions{
		ID:    input.TaskID,
		Tag:   tag,
		Dedup: uc.dedupTags,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddTag AppendTag: %v", err)
		return reviewtask.TagMutationOutput{}, err
	}
	if task.ID == 0 {
		uc.l.Debugf(ctx, "uc.AddTag: task %d not found, ignoring", input.TaskID)
	}

	return reviewtask.TagMutationOutput{Task: task, Found: task.ID != 0, Changed: changed}, nil
}

// RemoveTag detaches every occurrence of tag from a task. The match is exact
// and case-sensitive; absent tags and unknown ids are no-ops.
func (uc *implUseCase) RemoveTag(ctx context.Context, input reviewtask.RemoveTagInput) (reviewtask.TagMutationOutput, error) {
	task, changed, err := uc.repo.RemoveTag(ctx, repo.RemoveTagOptions{
		ID:  input.TaskID,
		Tag: input.Tag,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.RemoveTag RemoveTag: %v", err)
		return reviewtask.TagMutationOutput{}, err
	}

	return reviewtask.TagMutationOutput{Task: task, Found: task.ID != 0, Changed: changed}, nil
}

func (uc *implUseCase) current(ctx context.Context, id int) (reviewtask.TagMutationOutput, error) {
	task, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.current GetOneTask: %v", err)
		return reviewtask.TagMutationOutput{}, err
	}
	return reviewtask.TagMutationOutput{Task: task, Found: task.ID != 0}, nil
}
