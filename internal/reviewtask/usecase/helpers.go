package usecase

import (
	"strings"

	"review-task-board/internal/reviewtask"
	"review-task-board/internal/tagfilter"
)

// normalizeTag trims surrounding whitespace from user input.
func (uc *implUseCase) normalizeTag(tag string) string {
	return strings.TrimSpace(tag)
}

func (uc *implUseCase) resolvePolicy(p tagfilter.Policy) (tagfilter.Policy, error) {
	switch p {
	case "":
		return uc.defaultPolicy, nil
	case tagfilter.PolicyAll, tagfilter.PolicyAny:
		return p, nil
	default:
		return "", reviewtask.ErrInvalidPolicy
	}
}
