package domain

import "strings"

// SearchOptions selects tasks across lists. Zero values match everything.
type SearchOptions struct {
	// Text matches task names and notes, case-insensitively
	Text    string
	ListID  *int64
	Section *Section
}

// Matches reports whether t satisfies every set option.
func (o SearchOptions) Matches(t Task) bool {
	if o.ListID != nil && t.ListID != *o.ListID {
		return false
	}
	if o.Section != nil && t.Section() != *o.Section {
		return false
	}
	if o.Text == "" {
		return true
	}
	text := strings.ToLower(o.Text)
	return strings.Contains(strings.ToLower(t.Name), text) ||
		strings.Contains(strings.ToLower(t.Note), text)
}
