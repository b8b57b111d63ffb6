package model

// Task is a review work item tied to a paper.
type Task struct {
	ID         int
	Name       string
	PaperTitle string
	Authors    []string
	Tags       []string // insertion order is display order
	DueDate    string   // ISO-8601 date, never parsed
}

// HasTag reports whether tag is attached to t (exact, case-sensitive).
func (t Task) HasTag(tag string) bool {
	for _, x := range t.Tags {
		if x == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of t.
func (t Task) Clone() Task {
	c := t
	c.Authors = append([]string(nil), t.Authors...)
	c.Tags = append([]string(nil), t.Tags...)
	return c
}
