package reviewtask

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Filtering
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	ListTags(ctx context.Context) (ListTagsOutput, error)
	Detail(ctx context.Context, id int) (DetailTaskOutput, error)

	// Tag editing. Unknown ids and blank tags are silent no-ops.
	AddTag(ctx context.Context, input AddTagInput) (TagMutationOutput, error)
	RemoveTag(ctx context.Context, input RemoveTagInput) (TagMutationOutput, error)
}
