package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"review-task-board/internal/model"
	"review-task-board/internal/reviewtask/repository"
	"review-task-board/internal/reviewtask/repository/memory"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var errStore = errors.New("store unavailable")

// brokenRepo fails every call.
type brokenRepo struct{}

func (brokenRepo) ListTasks(ctx context.Context) ([]model.Task, error) { return nil, errStore }
func (brokenRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	return model.Task{}, errStore
}
func (brokenRepo) AppendTag(ctx context.Context, opt repository.AppendTagOptions) (model.Task, bool, error) {
	return model.Task{}, false, errStore
}
func (brokenRepo) RemoveTag(ctx context.Context, opt repository.RemoveTagOptions) (model.Task, bool, error) {
	return model.Task{}, false, errStore
}

func seededRepo(t *testing.T) repository.Repository {
	t.Helper()
	r, err := memory.New(memory.DefaultSeed(), &mockLogger{})
	require.NoError(t, err)
	return r
}

func taskIDs(tasks []model.Task) []int {
	out := make([]int, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}
