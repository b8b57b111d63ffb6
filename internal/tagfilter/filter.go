// Package tagfilter computes the visible subset of tasks for a tag selection.
package tagfilter

import "review-task-board/internal/model"

// Matches reports whether task passes selected under policy. An empty
// selection matches every task.
func Matches(task model.Task, selected []string, policy Policy) bool {
	if len(selected) == 0 {
		return true
	}
	switch policy {
	case PolicyAny:
		for _, tag := range selected {
			if task.HasTag(tag) {
				return true
			}
		}
		return false
	default:
		for _, tag := range selected {
			if !task.HasTag(tag) {
				return false
			}
		}
		return true
	}
}

// Filter returns the tasks matching selected, in store order.
func Filter(tasks []model.Task, selected []string, policy Policy) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if Matches(t, selected, policy) {
			out = append(out, t)
		}
	}
	return out
}
