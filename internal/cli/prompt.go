package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"tasklists/internal/view"
)

// LinePrompt implements view.Prompt for the command line. Values given as
// arguments or flags are used as they are; the rest is read from input a
// line at a time. An empty name or end of input cancels.
type LinePrompt struct {
	in        *bufio.Reader
	out       io.Writer
	name      *string
	note      *string
	cancelled bool
}

// NewLinePrompt creates a prompt. name and note may be nil.
func NewLinePrompt(in *bufio.Reader, out io.Writer, name, note *string) *LinePrompt {
	return &LinePrompt{in: in, out: out, name: name, note: note}
}

// Cancelled reports whether the last Show ended without confirming.
func (p *LinePrompt) Cancelled() bool {
	return p.cancelled
}

// Show collects a draft and confirms it before returning.
func (p *LinePrompt) Show(title string, initial *view.Draft, onConfirm func(view.Draft)) {
	p.cancelled = false

	var current view.Draft
	if initial != nil {
		current = *initial
	}

	askName := p.name == nil && (initial == nil || p.note == nil)
	askNote := p.note == nil && askName
	if askName {
		fmt.Fprintln(p.out, title)
	}

	draft := current
	if p.name != nil {
		draft.Name = *p.name
	}
	if p.note != nil {
		draft.Note = *p.note
	}

	if askName {
		name, ok := p.ask("Name", current.Name)
		if !ok || strings.TrimSpace(name) == "" {
			p.cancel()
			return
		}
		draft.Name = name
	}
	if askNote {
		note, ok := p.ask("Note", current.Note)
		if !ok {
			p.cancel()
			return
		}
		draft.Note = note
	}

	onConfirm(draft)
}

// ask reads one line; an empty answer keeps def.
func (p *LinePrompt) ask(label, def string) (string, bool) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", false
	}

	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return def, true
	}
	return line, true
}

func (p *LinePrompt) cancel() {
	p.cancelled = true
	fmt.Fprintln(p.out, "Cancelled.")
}
