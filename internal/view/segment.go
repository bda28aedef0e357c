// Package view implements styled line segments, pinned/scroll-locked
// regions, scroll-state computation, and the double-buffered repaint
// driven by a dedicated render thread (spec.md §4.3). Grounded on the
// teacher's internal/renderer/{core,viewport,dirty,style,selection,
// linecache} packages, generalized from a text-buffer viewport to a
// fixed page of pre-rendered ViewLines.
package view

import (
	"github.com/rivo/uniseg"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/backend"
)

// ColourTag names one of the semantic colours configured in spec.md §6
// (actionPickColor, diffAddColor, ...); the concrete RGB/named value is
// resolved by internal/config and carried on the Segment via Style
// instead, keeping this package config-agnostic.
type ColourTag int

const (
	ColourNone ColourTag = iota
	ColourForeground
	ColourIndicator
	ColourError
	ColourDiffAdd
	ColourDiffChange
	ColourDiffRemove
	ColourDiffContext
	ColourDiffWhitespace
	ColourActionBreak
	ColourActionDrop
	ColourActionEdit
	ColourActionExec
	ColourActionFixup
	ColourActionPick
	ColourActionReword
	ColourActionSquash
	ColourActionLabel
	ColourActionReset
	ColourActionMerge
	ColourActionUpdateRef
)

// Segment is one styled run of text inside a ViewLine.
type Segment struct {
	Text  string
	Tag   ColourTag
	Style backend.Style
}

// Width returns the segment's display width in terminal columns,
// grapheme-aware (github.com/rivo/uniseg), so wide runes (CJK, emoji)
// occupy the correct number of cells.
func (s Segment) Width() int {
	return uniseg.StringWidth(s.Text)
}

// ViewLine is one row: an ordered sequence of segments, a count of
// leading "pinned" segments immune to horizontal scroll, an optional
// padding segment that fills remaining columns, and a selected flag.
type ViewLine struct {
	Segments []Segment
	Pinned   int
	Padding  *Segment
	Selected bool
}

// NewViewLine builds a ViewLine with no pinned segments.
func NewViewLine(segs ...Segment) ViewLine {
	return ViewLine{Segments: segs}
}

// WithPinned returns a copy with the first n segments marked pinned.
func (l ViewLine) WithPinned(n int) ViewLine {
	l.Pinned = n
	return l
}

// WithPadding returns a copy carrying a fill segment.
func (l ViewLine) WithPadding(seg Segment) ViewLine {
	l.Padding = &seg
	return l
}

// WithSelected returns a copy with Selected set.
func (l ViewLine) WithSelected(selected bool) ViewLine {
	l.Selected = selected
	return l
}

// Visibility is a request that a specific body column/row remain in view
// when the renderer applies any pending scroll.
type Visibility struct {
	Column int
	Row    int
}

// Data is the structured page a module's build_view_data returns
// (spec.md §3, "View data").
type Data struct {
	Title                bool
	HelpShown            bool
	RetainScrollPosition bool
	Leading              []ViewLine
	Body                 []ViewLine
	Trailing             []ViewLine
	MinVisibility        Visibility
}
