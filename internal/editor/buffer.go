package editor

import (
	"fmt"

	"github.com/shinji-kodama/timelist-sorter/internal/timesort"
)

// Host is the editing surface the sort commands operate on.
type Host interface {
	// SomethingSelected reports whether a non-empty selection exists.
	SomethingSelected() bool

	// Selection returns the selected text.
	Selection() string

	// ReplaceSelection replaces the selected text.
	ReplaceSelection(text string)

	// Value returns the whole document.
	Value() string

	// SetValue replaces the whole document.
	SetValue(text string)
}

// Buffer is an in-memory document with an optional selection of whole lines.
type Buffer struct {
	lines []string

	// selStart and selEnd are 0-based, inclusive. selStart < 0 means no
	// selection.
	selStart int
	selEnd   int
}

// NewBuffer returns a Buffer holding text with nothing selected.
func NewBuffer(text string) *Buffer {
	return &Buffer{
		lines:    timesort.SplitLines(text),
		selStart: -1,
		selEnd:   -1,
	}
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Select selects lines start through end, 1-based and inclusive.
func (b *Buffer) Select(start, end int) error {
	if start < 1 || end < start {
		return fmt.Errorf("invalid line range %d:%d", start, end)
	}
	if end > len(b.lines) {
		return fmt.Errorf("line range %d:%d exceeds document length %d", start, end, len(b.lines))
	}
	b.selStart = start - 1
	b.selEnd = end - 1
	return nil
}

// SelectAll selects the whole document.
func (b *Buffer) SelectAll() {
	b.selStart = 0
	b.selEnd = len(b.lines) - 1
}

// ClearSelection removes the selection.
func (b *Buffer) ClearSelection() {
	b.selStart = -1
	b.selEnd = -1
}

// SomethingSelected implements Host. A selection of lines that are all
// empty joins to "" and counts as nothing selected.
func (b *Buffer) SomethingSelected() bool {
	return b.selStart >= 0 && b.Selection() != ""
}

// Selection implements Host.
func (b *Buffer) Selection() string {
	if b.selStart < 0 {
		return ""
	}
	return timesort.JoinLines(b.lines[b.selStart : b.selEnd+1])
}

// ReplaceSelection implements Host. The selection afterwards covers the
// replacement lines. Without a selection the text is inserted at the top.
func (b *Buffer) ReplaceSelection(text string) {
	start, end := b.selStart, b.selEnd
	if start < 0 {
		start, end = 0, -1
	}

	repl := timesort.SplitLines(text)
	out := make([]string, 0, len(b.lines)-(end-start+1)+len(repl))
	out = append(out, b.lines[:start]...)
	out = append(out, repl...)
	out = append(out, b.lines[end+1:]...)

	b.lines = out
	b.selStart = start
	b.selEnd = start + len(repl) - 1
}

// Value implements Host.
func (b *Buffer) Value() string {
	return timesort.JoinLines(b.lines)
}

// SetValue implements Host. It clears the selection.
func (b *Buffer) SetValue(text string) {
	b.lines = timesort.SplitLines(text)
	b.ClearSelection()
}
