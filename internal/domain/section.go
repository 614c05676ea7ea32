package domain

import (
	"fmt"
	"strings"
)

// Section identifies one of the two partitions of a task list.
type Section int

const (
	SectionPending Section = iota
	SectionCompleted
)

// Sections lists every section in display order.
var Sections = []Section{SectionPending, SectionCompleted}

// Opposite returns the section a task moves to when toggled.
func (s Section) Opposite() Section {
	if s == SectionPending {
		return SectionCompleted
	}
	return SectionPending
}

// IsComplete returns the completion flag shared by every task in the section.
func (s Section) IsComplete() bool {
	return s == SectionCompleted
}

// Valid reports whether s names an existing section.
func (s Section) Valid() bool {
	return s == SectionPending || s == SectionCompleted
}

func (s Section) String() string {
	switch s {
	case SectionPending:
		return "current"
	case SectionCompleted:
		return "completed"
	default:
		return fmt.Sprintf("section(%d)", int(s))
	}
}

// ParseSection accepts a section index or one of its names.
func ParseSection(s string) (Section, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "current", "pending", "todo":
		return SectionPending, nil
	case "1", "completed", "complete", "done":
		return SectionCompleted, nil
	default:
		return 0, fmt.Errorf("unknown section %q", s)
	}
}
