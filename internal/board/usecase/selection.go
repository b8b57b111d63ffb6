package usecase

import (
	"context"

	"review-task-board/internal/board"
)

// Toggle selects tag, or deselects it when already selected.
func (uc *implUseCase) Toggle(ctx context.Context, input board.ToggleInput) (board.Output, error) {
	return uc.updateSelection(ctx, input.ID, "Toggle", func(sel *board.Selection) {
		sel.Toggle(input.Tag)
	})
}

// Clear empties the selection.
func (uc *implUseCase) Clear(ctx context.Context, id string) (board.Output, error) {
	return uc.updateSelection(ctx, id, "Clear", func(sel *board.Selection) {
		sel.Clear()
	})
}

// Load replaces the selection with the one carried by the `tags` query
// parameter.
func (uc *implUseCase) Load(ctx context.Context, input board.LoadInput) (board.Output, error) {
	return uc.updateSelection(ctx, input.ID, "Load", func(sel *board.Selection) {
		sel.Load(input.Query)
	})
}
