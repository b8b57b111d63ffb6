package board

import (
	"net/url"

	"review-task-board/pkg/tagquery"
)

// Selection is the ordered, duplicate-free set of tags a board filters by.
// Order is selection order.
type Selection struct {
	tags []string
}

// NewSelection builds a Selection from tags, dropping empty strings and
// repeats.
func NewSelection(tags ...string) Selection {
	var s Selection
	s.Replace(tags)
	return s
}

// Tags returns a copy of the selected tags.
func (s Selection) Tags() []string {
	return append([]string(nil), s.tags...)
}

func (s Selection) Len() int { return len(s.tags) }

func (s Selection) Contains(tag string) bool {
	for _, t := range s.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Toggle removes tag when selected and appends it otherwise. The order of
// the remaining tags is kept. An empty tag is ignored.
func (s *Selection) Toggle(tag string) {
	if tag == "" {
		return
	}
	for i, t := range s.tags {
		if t == tag {
			s.tags = append(s.tags[:i:i], s.tags[i+1:]...)
			return
		}
	}
	s.tags = append(s.tags, tag)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.tags = nil
}

// Replace discards the current selection and selects tags in order.
func (s *Selection) Replace(tags []string) {
	s.tags = nil
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		s.tags = append(s.tags, t)
	}
}

// Load sets the selection from the `tags` query parameter. Unknown tags are
// kept; a missing or empty parameter yields an empty selection.
func (s *Selection) Load(query url.Values) {
	s.Replace(tagquery.Decode(query))
}

// Serialize returns the query parameters that describe the selection. An
// empty selection has no `tags` parameter at all.
func (s Selection) Serialize() url.Values {
	q := url.Values{}
	tagquery.Encode(q, s.tags)
	return q
}

// RawQuery is Serialize encoded as a query string.
func (s Selection) RawQuery() string {
	return tagquery.RawQuery(s.tags)
}
