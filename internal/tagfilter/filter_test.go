package tagfilter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"review-task-board/internal/model"
	"review-task-board/internal/tagfilter"
)

func fixtureTasks() []model.Task {
	return []model.Task{
		{ID: 1, Name: "Find and invite reviewers", Tags: []string{"reviewer selection", "urgent", "assignment"}},
		{ID: 2, Name: "Initial assessment", Tags: []string{"manuscript review", "high priority"}},
		{ID: 3, Name: "Assess recommendation", Tags: []string{"decision making", "reject"}},
		{ID: 4, Name: "Assess recommendation", Tags: []string{"decision making", "accept"}},
		{ID: 7, Name: "Communicate decision to authors", Tags: []string{"communication", "authors"}},
	}
}

func ids(tasks []model.Task) []int {
	out := make([]int, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestFilter_EmptySelectionShowsAll(t *testing.T) {
	tasks := fixtureTasks()
	for _, p := range []tagfilter.Policy{tagfilter.PolicyAll, tagfilter.PolicyAny} {
		assert.Equal(t, tasks, tagfilter.Filter(tasks, nil, p))
		assert.Equal(t, tasks, tagfilter.Filter(tasks, []string{}, p))
	}
}

func TestFilter_AndVersusOr(t *testing.T) {
	tasks := fixtureTasks()
	sel := []string{"decision making", "accept"}

	assert.Equal(t, []int{4}, ids(tagfilter.Filter(tasks, sel, tagfilter.PolicyAll)))
	assert.Equal(t, []int{3, 4}, ids(tagfilter.Filter(tasks, sel, tagfilter.PolicyAny)))
}

func TestFilter_AndIsSupersetSubsequence(t *testing.T) {
	tasks := fixtureTasks()
	selections := [][]string{
		{"urgent"},
		{"decision making"},
		{"accept", "decision making"},
		{"urgent", "reject"},
		{"unknown"},
	}

	for _, sel := range selections {
		got := tagfilter.Filter(tasks, sel, tagfilter.PolicyAll)

		var want []int
		for _, task := range tasks {
			all := true
			for _, tag := range sel {
				if !task.HasTag(tag) {
					all = false
				}
			}
			if all {
				want = append(want, task.ID)
			}
		}
		if want == nil {
			want = []int{}
		}
		assert.Equal(t, want, ids(got), "selection %v", sel)
	}
}

func TestFilter_UnknownTagMatchesNothing(t *testing.T) {
	got := tagfilter.Filter(fixtureTasks(), []string{"no-such-tag"}, tagfilter.PolicyAll)
	assert.Empty(t, got)
}

func TestFilter_CaseSensitive(t *testing.T) {
	got := tagfilter.Filter(fixtureTasks(), []string{"Urgent"}, tagfilter.PolicyAny)
	assert.Empty(t, got)
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    tagfilter.Policy
		wantErr bool
	}{
		{in: "", want: tagfilter.PolicyAny},
		{in: "and", want: tagfilter.PolicyAll},
		{in: "ALL", want: tagfilter.PolicyAll},
		{in: " or ", want: tagfilter.PolicyAny},
		{in: "any", want: tagfilter.PolicyAny},
		{in: "xor", wantErr: true},
	}

	for _, tt := range tests {
		got, err := tagfilter.ParsePolicy(tt.in, tagfilter.PolicyAny)
		if tt.wantErr {
			require.ErrorIs(t, err, tagfilter.ErrUnknownPolicy)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
