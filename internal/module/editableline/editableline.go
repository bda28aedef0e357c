// Package editableline implements a single-line, grapheme-aware text
// input shared by the Insert, Edit, and SearchBar modules. Grounded on
// the teacher's internal/engine/cursor package (grapheme-boundary cursor
// movement), rebuilt on github.com/rivo/uniseg directly since the
// teacher's cursor package is itself layered on a rope buffer this
// single-line component doesn't need.
package editableline

import (
	"github.com/rivo/uniseg"
)

// Line is a single-line text buffer with a grapheme-cluster cursor.
type Line struct {
	text string
	// cursor is a grapheme-cluster index, in [0, len(clusters)].
	cursor int
}

// New builds a Line pre-populated with initial text, cursor at the end.
func New(initial string) *Line {
	l := &Line{}
	l.Set(initial)
	return l
}

// Set replaces the content and moves the cursor to the end.
func (l *Line) Set(s string) {
	l.text = s
	l.cursor = len(l.clusters()) - 1
}

// String returns the current text.
func (l *Line) String() string { return l.text }

// clusters returns the byte-offset boundaries of each grapheme cluster in
// l.text, including a final boundary at len(text).
func (l *Line) clusters() []int {
	var bounds []int
	rest := l.text
	offset := 0
	for len(rest) > 0 {
		cluster, remainder, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
		bounds = append(bounds, offset)
		offset += len(cluster)
		rest = remainder
	}
	bounds = append(bounds, len(l.text))
	return bounds
}

// CursorByteOffset returns the byte offset of the cursor within the
// current text, for rendering the cursor column.
func (l *Line) CursorByteOffset() int {
	b := l.clusters()
	if l.cursor >= len(b) {
		return len(l.text)
	}
	return b[l.cursor]
}

// InsertRune inserts r at the cursor and advances it one cluster.
func (l *Line) InsertRune(r rune) {
	at := l.CursorByteOffset()
	l.text = l.text[:at] + string(r) + l.text[at:]
	l.cursor++
}

// Backspace removes the grapheme cluster before the cursor.
func (l *Line) Backspace() {
	if l.cursor == 0 {
		return
	}
	b := l.clusters()
	start, end := b[l.cursor-1], b[l.cursor]
	l.text = l.text[:start] + l.text[end:]
	l.cursor--
}

// Delete removes the grapheme cluster at the cursor.
func (l *Line) Delete() {
	b := l.clusters()
	if l.cursor >= len(b)-1 {
		return
	}
	start, end := b[l.cursor], b[l.cursor+1]
	l.text = l.text[:start] + l.text[end:]
}

// MoveLeft moves the cursor back one cluster.
func (l *Line) MoveLeft() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// MoveRight moves the cursor forward one cluster.
func (l *Line) MoveRight() {
	if l.cursor < len(l.clusters())-1 {
		l.cursor++
	}
}

// MoveHome moves the cursor to the start of the line.
func (l *Line) MoveHome() { l.cursor = 0 }

// MoveEnd moves the cursor to the end of the line.
func (l *Line) MoveEnd() { l.cursor = len(l.clusters()) - 1 }
