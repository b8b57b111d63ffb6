package usecase_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"review-task-board/internal/board"
	"review-task-board/internal/board/repository/lru"
	"review-task-board/internal/board/usecase"
	"review-task-board/internal/model"
	taskMemory "review-task-board/internal/reviewtask/repository/memory"
	taskUsecase "review-task-board/internal/reviewtask/usecase"
	"review-task-board/internal/tagfilter"
	"review-task-board/pkg/log"
)

// cancelledPrompt simulates a user dismissing the name dialog.
type cancelledPrompt struct{}

func (cancelledPrompt) RequestName(context.Context) (string, bool) { return "", false }

// clearingPrompt clears the board while the name is being typed.
type clearingPrompt struct {
	uc   board.UseCase
	id   string
	name string
}

func (p clearingPrompt) RequestName(ctx context.Context) (string, bool) {
	_, _ = p.uc.Clear(ctx, p.id)
	return p.name, true
}

func newUseCase(t *testing.T, opt usecase.Options) board.UseCase {
	t.Helper()
	l := log.NewNop()
	taskRepo, err := taskMemory.New(taskMemory.DefaultSeed(), l)
	require.NoError(t, err)
	taskUC := taskUsecase.New(taskRepo, l, taskUsecase.Options{})
	return usecase.New(lru.New(lru.Config{}, l), taskUC, l, opt)
}

func ids(tasks []model.Task) []int {
	out := make([]int, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, usecase.Options{})

	t.Run("From URL", func(t *testing.T) {
		out, err := uc.Create(ctx, board.CreateInput{Query: url.Values{"tags": {"urgent,assignment"}}})
		require.NoError(t, err)
		assert.NotEmpty(t, out.Board.ID)
		assert.Equal(t, []string{"urgent", "assignment"}, out.Board.Selection)
		assert.Equal(t, "tags=urgent%2Cassignment", out.Query)
	})

	t.Run("Without Tags", func(t *testing.T) {
		out, err := uc.Create(ctx, board.CreateInput{})
		require.NoError(t, err)
		assert.Empty(t, out.Board.Selection)
		assert.Empty(t, out.Query)
	})
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, usecase.Options{})

	created, err := uc.Create(ctx, board.CreateInput{Query: url.Values{"tags": {"decision making,accept"}}})
	require.NoError(t, err)

	out, err := uc.Detail(ctx, board.DetailInput{ID: created.Board.ID})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 6}, ids(out.Tasks))
	assert.Equal(t, 7, out.Total)
	assert.Equal(t, tagfilter.PolicyAll, out.Policy)

	out, err = uc.Detail(ctx, board.DetailInput{ID: created.Board.ID, Policy: tagfilter.PolicyAny})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5, 6}, ids(out.Tasks))

	_, err = uc.Detail(ctx, board.DetailInput{ID: "missing"})
	assert.ErrorIs(t, err, board.ErrBoardNotFound)
}

func TestSelectionOperations(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, usecase.Options{})

	created, err := uc.Create(ctx, board.CreateInput{})
	require.NoError(t, err)
	id := created.Board.ID

	out, err := uc.Toggle(ctx, board.ToggleInput{ID: id, Tag: "urgent"})
	require.NoError(t, err)
	out, err = uc.Toggle(ctx, board.ToggleInput{ID: id, Tag: "assignment"})
	require.NoError(t, err)
	assert.Equal(t, []string{"urgent", "assignment"}, out.Board.Selection)
	assert.Equal(t, "tags=urgent%2Cassignment", out.Query)

	out, err = uc.Toggle(ctx, board.ToggleInput{ID: id, Tag: "urgent"})
	require.NoError(t, err)
	assert.Equal(t, []string{"assignment"}, out.Board.Selection)

	out, err = uc.Clear(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, out.Board.Selection)
	assert.Empty(t, out.Query)

	out, err = uc.Load(ctx, board.LoadInput{ID: id, Query: url.Values{"tags": {"reject,,reject,accept"}}})
	require.NoError(t, err)
	assert.Equal(t, []string{"reject", "accept"}, out.Board.Selection)

	_, err = uc.Toggle(ctx, board.ToggleInput{ID: "missing", Tag: "x"})
	assert.ErrorIs(t, err, board.ErrBoardNotFound)
	_, err = uc.Clear(ctx, "missing")
	assert.ErrorIs(t, err, board.ErrBoardNotFound)
}

func TestBookmarks(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, usecase.Options{})

	created, err := uc.Create(ctx, board.CreateInput{Query: url.Values{"tags": {"decision making,accept"}}})
	require.NoError(t, err)
	id := created.Board.ID

	t.Run("Save Then Apply Restores Selection", func(t *testing.T) {
		saved, err := uc.SaveBookmark(ctx, board.SaveBookmarkInput{ID: id, Prompter: board.StaticName("Accepted papers")})
		require.NoError(t, err)
		require.True(t, saved.Saved)
		assert.Equal(t, "Accepted papers", saved.Bookmark.Name)

		_, err = uc.Toggle(ctx, board.ToggleInput{ID: id, Tag: "accept"})
		require.NoError(t, err)
		_, err = uc.Toggle(ctx, board.ToggleInput{ID: id, Tag: "urgent"})
		require.NoError(t, err)

		out, err := uc.ApplyBookmark(ctx, board.ApplyBookmarkInput{ID: id, Index: 0})
		require.NoError(t, err)
		assert.Equal(t, []string{"decision making", "accept"}, out.Board.Selection)
	})

	t.Run("Cancelled Or Blank Name Saves Nothing", func(t *testing.T) {
		before, err := uc.ListBookmarks(ctx, id)
		require.NoError(t, err)

		out, err := uc.SaveBookmark(ctx, board.SaveBookmarkInput{ID: id, Prompter: cancelledPrompt{}})
		require.NoError(t, err)
		assert.False(t, out.Saved)

		out, err = uc.SaveBookmark(ctx, board.SaveBookmarkInput{ID: id, Prompter: board.StaticName("  ")})
		require.NoError(t, err)
		assert.False(t, out.Saved)

		out, err = uc.SaveBookmark(ctx, board.SaveBookmarkInput{ID: id})
		require.NoError(t, err)
		assert.False(t, out.Saved)

		after, err := uc.ListBookmarks(ctx, id)
		require.NoError(t, err)
		assert.Len(t, after.Bookmarks, len(before.Bookmarks))
	})

	t.Run("Duplicate Names Listed Separately", func(t *testing.T) {
		_, err := uc.SaveBookmark(ctx, board.SaveBookmarkInput{ID: id, Prompter: board.StaticName("Accepted papers")})
		require.NoError(t, err)

		list, err := uc.ListBookmarks(ctx, id)
		require.NoError(t, err)
		require.Len(t, list.Bookmarks, 2)
		assert.Equal(t, list.Bookmarks[0].Name, list.Bookmarks[1].Name)
	})

	t.Run("Apply By ID", func(t *testing.T) {
		list, err := uc.ListBookmarks(ctx, id)
		require.NoError(t, err)
		require.NotEmpty(t, list.Bookmarks)

		_, err = uc.Clear(ctx, id)
		require.NoError(t, err)

		out, err := uc.ApplyBookmark(ctx, board.ApplyBookmarkInput{ID: id, BookmarkID: list.Bookmarks[0].ID})
		require.NoError(t, err)
		assert.Equal(t, []string{"decision making", "accept"}, out.Board.Selection)
	})

	t.Run("Unknown Index", func(t *testing.T) {
		_, err := uc.ApplyBookmark(ctx, board.ApplyBookmarkInput{ID: id, Index: 9})
		assert.ErrorIs(t, err, board.ErrBookmarkNotFound)

		_, err = uc.ApplyBookmark(ctx, board.ApplyBookmarkInput{ID: id, BookmarkID: "nope"})
		assert.ErrorIs(t, err, board.ErrBookmarkNotFound)
	})

	t.Run("Unknown Board", func(t *testing.T) {
		_, err := uc.SaveBookmark(ctx, board.SaveBookmarkInput{ID: "missing", Prompter: board.StaticName("x")})
		assert.ErrorIs(t, err, board.ErrBoardNotFound)
		_, err = uc.ListBookmarks(ctx, "missing")
		assert.ErrorIs(t, err, board.ErrBoardNotFound)
		_, err = uc.ApplyBookmark(ctx, board.ApplyBookmarkInput{ID: "missing"})
		assert.ErrorIs(t, err, board.ErrBoardNotFound)
	})
}

func TestSaveBookmark_EmptySelection(t *testing.T) {
	ctx := context.Background()

	t.Run("Ignored By Default", func(t *testing.T) {
		uc := newUseCase(t, usecase.Options{})
		created, err := uc.Create(ctx, board.CreateInput{})
		require.NoError(t, err)

		out, err := uc.SaveBookmark(ctx, board.SaveBookmarkInput{ID: created.Board.ID, Prompter: board.StaticName("all")})
		require.NoError(t, err)
		assert.False(t, out.Saved)
	})

	t.Run("Allowed When Configured", func(t *testing.T) {
		uc := newUseCase(t, usecase.Options{AllowEmptyBookmarks: true})
		created, err := uc.Create(ctx, board.CreateInput{})
		require.NoError(t, err)

		out, err := uc.SaveBookmark(ctx, board.SaveBookmarkInput{ID: created.Board.ID, Prompter: board.StaticName("all")})
		require.NoError(t, err)
		assert.True(t, out.Saved)
		assert.Empty(t, out.Bookmark.Tags)
	})

	t.Run("Cleared While Naming", func(t *testing.T) {
		uc := newUseCase(t, usecase.Options{})
		created, err := uc.Create(ctx, board.CreateInput{Query: url.Values{"tags": {"urgent"}}})
		require.NoError(t, err)
		id := created.Board.ID

		out, err := uc.SaveBookmark(ctx, board.SaveBookmarkInput{
			ID:       id,
			Prompter: clearingPrompt{uc: uc, id: id, name: "urgent only"},
		})
		require.NoError(t, err)
		assert.False(t, out.Saved)
		assert.Empty(t, out.Board.Selection)

		list, err := uc.ListBookmarks(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, list.Bookmarks)
	})

	t.Run("Cleared While Naming Allowed When Configured", func(t *testing.T) {
		uc := newUseCase(t, usecase.Options{AllowEmptyBookmarks: true})
		created, err := uc.Create(ctx, board.CreateInput{Query: url.Values{"tags": {"urgent"}}})
		require.NoError(t, err)

		out, err := uc.SaveBookmark(ctx, board.SaveBookmarkInput{
			ID:       created.Board.ID,
			Prompter: clearingPrompt{uc: uc, id: created.Board.ID, name: "nothing"},
		})
		require.NoError(t, err)
		assert.True(t, out.Saved)
		assert.Empty(t, out.Bookmark.Tags)
	})
}
