// Package searchbar implements the SearchBar sub-component the List
// module embeds (spec.md §4.8): three sub-states (Deactivated, Editing,
// Searching). While editing, characters feed an editableline.Line; enter
// freezes the term and starts searching; escape cancels; while
// searching, next/previous step through matches against the searchable
// line set List hands it via SetSearchable. Grounded on the same
// editableline-driven input pattern already established in insert/ and
// edit/, generalized to add a frozen "committed term" phase.
package searchbar

import (
	"strings"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/backend"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/events"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/module/editableline"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/todo"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/view"
)

// SubState is the closed three-state set spec.md §4.8 names.
type SubState int

const (
	Deactivated SubState = iota
	Editing
	Searching
)

// Bar is the SearchBar sub-component.
type Bar struct {
	state SubState
	line  *editableline.Line
	term  string

	searchable []todo.Line
	matches    []int
	pos        int
}

// New returns a Deactivated Bar.
func New() *Bar { return &Bar{} }

// State reports the current sub-state.
func (b *Bar) State() SubState { return b.state }

// Term returns the last committed search term.
func (b *Bar) Term() string { return b.term }

// StartEditing transitions into Editing with a fresh line seeded from
// the previously committed term, if any.
func (b *Bar) StartEditing() {
	b.state = Editing
	b.line = editableline.New(b.term)
}

// SetSearchable installs the line set searches run against (the current
// todo document's lines, supplied by List).
func (b *Bar) SetSearchable(lines []todo.Line) { b.searchable = lines }

// ReadEvent translates a raw key event while Editing. List is
// responsible for routing keys here only when State() == Editing.
func (b *Bar) ReadEvent(raw backend.Event) events.Event {
	if raw.Type != backend.EventKey {
		return events.Empty
	}
	switch raw.Key {
	case backend.KeyEnter:
		return events.NewStandard(events.Commit)
	case backend.KeyEsc:
		return events.NewStandard(events.CancelInput)
	case backend.KeyBackspace:
		return events.Event{Kind: events.KindKey, Code: events.KeyBackspace}
	case backend.KeyDelete:
		return events.Event{Kind: events.KindKey, Code: events.KeyDelete}
	case backend.KeyLeft:
		return events.Event{Kind: events.KindKey, Code: events.KeyLeft}
	case backend.KeyRight:
		return events.Event{Kind: events.KindKey, Code: events.KeyRight}
	case backend.KeyHome:
		return events.Event{Kind: events.KindKey, Code: events.KeyHome}
	case backend.KeyEnd:
		return events.Event{Kind: events.KindKey, Code: events.KeyEnd}
	case backend.KeyRune:
		return events.NewKey(events.KeyChar, raw.Rune, 0)
	}
	return events.Empty
}

// HandleEvent processes a translated event while Editing.
func (b *Bar) HandleEvent(e events.Event) events.Results {
	if e.Kind == events.KindStandard {
		switch e.Standard {
		case events.Commit:
			return b.commit()
		case events.CancelInput:
			return b.Cancel()
		}
		return nil
	}
	if e.Kind != events.KindKey || b.line == nil {
		return nil
	}
	switch e.Code {
	case events.KeyChar:
		b.line.InsertRune(e.Rune)
	case events.KeyBackspace:
		b.line.Backspace()
	case events.KeyDelete:
		b.line.Delete()
	case events.KeyLeft:
		b.line.MoveLeft()
	case events.KeyRight:
		b.line.MoveRight()
	case events.KeyHome:
		b.line.MoveHome()
	case events.KeyEnd:
		b.line.MoveEnd()
	}
	return nil
}

func (b *Bar) commit() events.Results {
	b.term = b.line.String()
	b.state = Searching
	b.recomputeMatches()
	return events.Results{events.SearchTerm(b.term)}
}

// Cancel aborts editing or stops an active search, returning Deactivated.
func (b *Bar) Cancel() events.Results {
	b.state = Deactivated
	b.matches = nil
	return events.Results{events.SearchCancelArtifact()}
}

func (b *Bar) recomputeMatches() {
	b.matches = nil
	b.pos = -1
	if b.term == "" {
		return
	}
	needle := strings.ToLower(b.term)
	for i, l := range b.searchable {
		if strings.Contains(strings.ToLower(l.Content), needle) || strings.Contains(l.Hash, b.term) {
			b.matches = append(b.matches, i)
		}
	}
}

// Next advances to the next match (wrapping) and reports its document
// index, or false if there are no matches.
func (b *Bar) Next() (int, bool) {
	if len(b.matches) == 0 {
		return 0, false
	}
	b.pos = (b.pos + 1) % len(b.matches)
	return b.matches[b.pos], true
}

// Previous steps to the previous match (wrapping).
func (b *Bar) Previous() (int, bool) {
	if len(b.matches) == 0 {
		return 0, false
	}
	b.pos = ((b.pos-1)%len(b.matches) + len(b.matches)) % len(b.matches)
	return b.matches[b.pos], true
}

// MatchCount reports how many lines match the committed term.
func (b *Bar) MatchCount() int { return len(b.matches) }

// ViewLine renders the bar's current prompt for List to append to its
// view data (empty segments when Deactivated).
func (b *Bar) ViewLine() view.ViewLine {
	switch b.state {
	case Editing:
		return view.NewViewLine(view.Segment{Text: "/" + b.line.String()})
	case Searching:
		text := "/" + b.term
		if len(b.matches) > 0 {
			text += " (match)"
		} else {
			text += " (no matches)"
		}
		return view.NewViewLine(view.Segment{Text: text})
	default:
		return view.NewViewLine()
	}
}
