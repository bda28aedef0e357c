package todo

import (
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/action"
)

// Document is the mutable rebase plan: an ordered sequence of action
// lines, a cursor, an optional visual-mode anchor, and an undo/redo
// history.
type Document struct {
	Path        string
	CommentChar string

	lines         []Line
	selectedIndex int
	visualAnchor  *int
	history       *History
	isNoop        bool
	undoLimit     int
}

// DefaultUndoLimit matches the teacher's history default entry cap
// (internal/engine/history.NewHistory), generalized from text edits to
// todo-line edits.
const DefaultUndoLimit = 5000

// New builds an empty document at path, ready to receive parsed lines.
func New(path, commentChar string, undoLimit int) *Document {
	if commentChar == "" {
		commentChar = "#"
	}
	if undoLimit <= 0 {
		undoLimit = DefaultUndoLimit
	}
	return &Document{
		Path:        path,
		CommentChar: commentChar,
		history:     NewHistory(undoLimit),
		undoLimit:   undoLimit,
	}
}

// Load replaces the document's line set (used by the parser and by the
// external-editor reload path) and recomputes duplicate flags. It does
// not touch history: the caller is expected to call this only before any
// user edits, or to treat it as a fresh Load sentinel state.
func (d *Document) Load(lines []Line) {
	d.lines = lines
	d.selectedIndex = 0
	d.visualAnchor = nil
	d.isNoop = len(lines) == 1 && lines[0].Action == action.Noop
	d.recomputeDuplicates()
}

// Lines returns the current line sequence. Selected/Duplicate flags are
// populated on the returned slice; callers must not mutate it directly.
func (d *Document) Lines() []Line {
	out := make([]Line, len(d.lines))
	lo, hi := d.selectionRange()
	for i, l := range d.lines {
		l.Selected = i >= lo && i <= hi
		out[i] = l
	}
	return out
}

// Len returns the number of lines.
func (d *Document) Len() int { return len(d.lines) }

// UndoLimit returns the bounded history depth the document was built
// with, so callers that need to reload the document (the external-editor
// hand-off) can reuse the same limit.
func (d *Document) UndoLimit() int { return d.undoLimit }

// IsNoop reports whether the document is the single-line noop plan.
func (d *Document) IsNoop() bool { return d.isNoop }

// SelectedIndex returns the 0-based cursor position.
func (d *Document) SelectedIndex() int { return d.selectedIndex }

// InVisualMode reports whether a range-selection anchor is active.
func (d *Document) InVisualMode() bool { return d.visualAnchor != nil }

// EnterVisualMode anchors the range selection at the current index.
func (d *Document) EnterVisualMode() {
	idx := d.selectedIndex
	d.visualAnchor = &idx
}

// ExitVisualMode clears the range-selection anchor.
func (d *Document) ExitVisualMode() { d.visualAnchor = nil }

// ToggleVisualMode enters visual mode if inactive, exits if active.
func (d *Document) ToggleVisualMode() {
	if d.InVisualMode() {
		d.ExitVisualMode()
	} else {
		d.EnterVisualMode()
	}
}

// selectionRange returns the inclusive range currently affected by range
// edits: a single line in Normal sub-state, or [min,max] of cursor/anchor
// in Visual sub-state (spec.md §4.6, §8 property 7).
func (d *Document) selectionRange() (int, int) {
	if d.visualAnchor == nil {
		return d.selectedIndex, d.selectedIndex
	}
	lo, hi := *d.visualAnchor, d.selectedIndex
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// CurrentRange exposes the selection range for callers outside the
// package (e.g. the List module) that need it read-only.
func (d *Document) CurrentRange() Range {
	lo, hi := d.selectionRange()
	return Range{Start: lo, End: hi}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MoveUp moves the cursor up one line (no-op at index 0).
func (d *Document) MoveUp() {
	d.selectedIndex = clamp(d.selectedIndex-1, 0, d.lastIndex())
}

// MoveDown moves the cursor down one line (no-op at the last line).
func (d *Document) MoveDown() {
	d.selectedIndex = clamp(d.selectedIndex+1, 0, d.lastIndex())
}

// SetSelectedIndex moves the cursor directly to index (clamped), used by
// search navigation to jump to a match.
func (d *Document) SetSelectedIndex(index int) {
	d.selectedIndex = clamp(index, 0, d.lastIndex())
}

// MoveHome moves the cursor to the first line.
func (d *Document) MoveHome() { d.selectedIndex = 0 }

// MoveEnd moves the cursor to the last line.
func (d *Document) MoveEnd() { d.selectedIndex = d.lastIndex() }

// MovePage moves the cursor by delta lines (negative for page up).
func (d *Document) MovePage(delta int) {
	d.selectedIndex = clamp(d.selectedIndex+delta, 0, d.lastIndex())
}

func (d *Document) lastIndex() int {
	if len(d.lines) == 0 {
		return 0
	}
	return len(d.lines) - 1
}

// SetAction sets the action of every line in the current selection range,
// recording a Modify history item. break is handled by ToggleBreak
// instead, per spec.md §4.6.
func (d *Document) SetAction(a action.Action) {
	lo, hi := d.selectionRange()
	if lo >= len(d.lines) {
		return
	}
	hi = clamp(hi, 0, d.lastIndex())
	r := Range{Start: lo, End: hi}
	prior := make([]Line, r.Len())
	copy(prior, d.lines[lo:hi+1])
	for i := lo; i <= hi; i++ {
		d.lines[i].Action = a
		d.lines[i].Mutated = true
	}
	d.pushUndo(Item{Kind: Modify, R: r, PriorLines: prior})
	d.recomputeDuplicates()
}

// ToggleBreak adds a bare break line directly below the selection, or
// removes it if one is already there (spec.md §4.6).
func (d *Document) ToggleBreak() {
	_, hi := d.selectionRange()
	below := hi + 1
	if below < len(d.lines) && d.lines[below].Action == action.Break {
		d.removeRange(Range{Start: below, End: below})
		return
	}
	d.insertAfter(hi, NewBareLine(action.Break))
}

// RemoveSelection deletes the current range and puts the cursor on the
// range's start index, clamped to len-1 after deletion (or 0 if empty),
// per spec.md §8 boundary behaviour.
func (d *Document) RemoveSelection() {
	lo, hi := d.selectionRange()
	if lo >= len(d.lines) {
		return
	}
	d.removeRange(Range{Start: lo, End: hi})
}

func (d *Document) removeRange(r Range) {
	removed := make([]Line, r.Len())
	copy(removed, d.lines[r.Start:r.End+1])
	d.lines = append(d.lines[:r.Start], d.lines[r.End+1:]...)
	d.repositionAfterRemoval(r)
	d.pushUndo(Item{Kind: Remove, R: r, PriorLines: removed})
	d.recomputeDuplicates()
}

func (d *Document) repositionAfterRemoval(r Range) {
	d.ExitVisualMode()
	if len(d.lines) == 0 {
		d.selectedIndex = 0
		return
	}
	d.selectedIndex = clamp(r.Start, 0, d.lastIndex())
}

// InsertAfter inserts a new line immediately after the current selection
// and moves the cursor onto it (used by the Insert module).
func (d *Document) InsertAfter(l Line) {
	_, hi := d.selectionRange()
	d.insertAfter(hi, l)
}

func (d *Document) insertAfter(hi int, l Line) {
	at := hi + 1
	l.Mutated = true
	d.lines = append(d.lines, Line{})
	copy(d.lines[at+1:], d.lines[at:])
	d.lines[at] = l
	d.selectedIndex = at
	d.pushUndo(Item{Kind: Add, R: Range{Start: at, End: at}})
	d.recomputeDuplicates()
}

// MoveSelectionDown shifts the selected range down by one position
// (no-op if it already touches the end).
func (d *Document) MoveSelectionDown() {
	lo, hi := d.selectionRange()
	if hi+1 > d.lastIndex() {
		return
	}
	d.swapRange(Range{Start: lo, End: hi}, 1)
	d.shiftSelection(1)
	d.pushUndo(Item{Kind: SwapUp, R: Range{Start: lo + 1, End: hi + 1}})
}

// MoveSelectionUp shifts the selected range up by one position (no-op at
// the top).
func (d *Document) MoveSelectionUp() {
	lo, hi := d.selectionRange()
	if lo-1 < 0 {
		return
	}
	d.swapRange(Range{Start: lo, End: hi}, -1)
	d.shiftSelection(-1)
	d.pushUndo(Item{Kind: SwapDown, R: Range{Start: lo - 1, End: hi - 1}})
}

func (d *Document) shiftSelection(delta int) {
	d.selectedIndex += delta
	if d.visualAnchor != nil {
		*d.visualAnchor += delta
	}
}

// swapRange moves the [r.Start, r.End] block by delta positions (+-1),
// swapping it past the single adjacent line.
func (d *Document) swapRange(r Range, delta int) {
	if delta == 1 {
		moved := d.lines[r.End+1]
		copy(d.lines[r.Start+1:r.End+2], d.lines[r.Start:r.End+1])
		d.lines[r.Start] = moved
	} else {
		moved := d.lines[r.Start-1]
		copy(d.lines[r.Start-1:r.End], d.lines[r.Start:r.End+1])
		d.lines[r.End] = moved
	}
}

// ToggleFixupModifier toggles the fixup modifier on the selected line
// (ignored on non-fixup lines, spec.md §8 boundary behaviour).
func (d *Document) ToggleFixupModifier(m action.Modifier) {
	if d.selectedIndex >= len(d.lines) {
		return
	}
	l := &d.lines[d.selectedIndex]
	if l.Action != action.Fixup {
		return
	}
	r := Range{Start: d.selectedIndex, End: d.selectedIndex}
	prior := []Line{*l}
	if l.Modifier == m {
		l.Modifier = action.NoModifier
	} else {
		l.Modifier = m
	}
	l.Mutated = true
	d.pushUndo(Item{Kind: Modify, R: r, PriorLines: prior})
}

// SetContent replaces the selected line's content (spec.md §4.8, the Edit
// sub-state for exec/label/reset/merge/update-ref lines), recording a
// Modify history item. A no-op on commit-bearing or bare lines.
func (d *Document) SetContent(content string) {
	if d.selectedIndex >= len(d.lines) {
		return
	}
	l := &d.lines[d.selectedIndex]
	if !l.Action.ContentBearing() {
		return
	}
	r := Range{Start: d.selectedIndex, End: d.selectedIndex}
	prior := []Line{*l}
	l.Content = content
	l.Mutated = true
	d.pushUndo(Item{Kind: Modify, R: r, PriorLines: prior})
}

func (d *Document) pushUndo(it Item) { d.history.record(it) }

// Undo pops the most recent item from the undo stack, applies its
// inverse, and pushes the result onto the redo stack. Returns false when
// there is nothing to undo.
func (d *Document) Undo() bool {
	if !d.history.CanUndo() {
		return false
	}
	it := d.history.undo[len(d.history.undo)-1]
	d.history.undo = d.history.undo[:len(d.history.undo)-1]
	inverse := it.apply(d)
	d.history.redo = append(d.history.redo, inverse)
	d.recomputeDuplicates()
	return true
}

// Redo pops the most recent item from the redo stack, reapplies it, and
// pushes its inverse back onto the undo stack.
func (d *Document) Redo() bool {
	if !d.history.CanRedo() {
		return false
	}
	it := d.history.redo[len(d.history.redo)-1]
	d.history.redo = d.history.redo[:len(d.history.redo)-1]
	inverse := it.apply(d)
	d.history.undo = append(d.history.undo, inverse)
	d.recomputeDuplicates()
	return true
}

// Clear empties the document (force-abort).
func (d *Document) Clear() {
	d.lines = nil
	d.selectedIndex = 0
	d.visualAnchor = nil
}

func (d *Document) recomputeDuplicates() {
	seen := map[string]int{}
	for _, l := range d.lines {
		if l.Hash != "" {
			seen[l.Hash]++
		}
	}
	for i := range d.lines {
		h := d.lines[i].Hash
		d.lines[i].Duplicate = h != "" && seen[h] > 1
	}
}
