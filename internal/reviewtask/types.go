package reviewtask

import (
	"review-task-board/internal/model"
	"review-task-board/internal/tagfilter"
)

// --- UseCase Inputs ---

type ListTasksInput struct {
	Tags   []string
	Policy tagfilter.Policy // empty means the configured default
}

type AddTagInput struct {
	TaskID int
	Tag    string
}

type RemoveTagInput struct {
	TaskID int
	Tag    string
}

// --- UseCase Outputs ---

type ListTasksOutput struct {
	Tasks     []model.Task
	Total     int // size of the unfiltered store
	Selection []string
	Policy    tagfilter.Policy
}

type DetailTaskOutput struct {
	Task model.Task
}

// TagMutationOutput reports the task after a tag edit. Found is false for an
// unknown id; Changed is false when the edit was a no-op.
type TagMutationOutput struct {
	Task    model.Task
	Found   bool
	Changed bool
}

// TagCount is one entry of the tag vocabulary.
type TagCount struct {
	Tag   string
	Count int
}

type ListTagsOutput struct {
	Tags []TagCount
}
