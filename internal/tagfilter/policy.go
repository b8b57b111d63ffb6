package tagfilter

import (
	"errors"
	"strings"
)

// Policy decides how a task's tags are matched against a selection.
type Policy string

const (
	// PolicyAll keeps tasks carrying every selected tag (AND).
	PolicyAll Policy = "and"
	// PolicyAny keeps tasks carrying at least one selected tag (OR).
	PolicyAny Policy = "or"

	DefaultPolicy = PolicyAll
)

var ErrUnknownPolicy = errors.New("unknown filter policy")

// ParsePolicy accepts "and"/"all" and "or"/"any", case-insensitively.
// An empty string yields def.
func ParsePolicy(s string, def Policy) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def, nil
	case "and", "all":
		return PolicyAll, nil
	case "or", "any":
		return PolicyAny, nil
	default:
		return "", ErrUnknownPolicy
	}
}

func (p Policy) String() string { return string(p) }
