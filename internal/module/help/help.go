// Package help implements the Help overlay (spec.md §4.8): a list of
// (key-bindings, description) pairs, right-padded to a fixed column, any
// key press closes it and returns to the saved previous state.
package help

import (
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/backend"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/config"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/events"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/module"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/view"
)

// Entry is one overlay row: the human-readable key descriptor(s) and what
// they do.
type Entry struct {
	Keys        string
	Description string
}

// Module is the Help overlay state.
type Module struct {
	entries     []Entry
	returnState events.State
}

// New builds a Help module from the given entries.
func New(entries []Entry) *Module { return &Module{entries: entries} }

// SetReturnState records the state to resume once the overlay closes.
func (m *Module) SetReturnState(s events.State) { m.returnState = s }

func (m *Module) Activate(previous events.State) events.Results {
	if previous != events.StateError {
		m.returnState = previous
	}
	return nil
}
func (m *Module) Deactivate() events.Results { return nil }

func (m *Module) InputOptions() module.InputOptions { return module.OptResize }

func (m *Module) BuildViewData(ctx module.RenderContext) (view.Data, view.Visibility) {
	keyCol := 0
	for _, e := range m.entries {
		if w := len([]rune(e.Keys)); w > keyCol {
			keyCol = w
		}
	}
	var body []view.ViewLine
	for _, e := range m.entries {
		padded := e.Keys
		for len([]rune(padded)) < keyCol {
			padded += " "
		}
		body = append(body, view.NewViewLine(
			view.Segment{Text: padded + "  "},
			view.Segment{Text: e.Description},
		))
	}
	return view.Data{Title: true, HelpShown: true, Body: body}, view.Visibility{}
}

func (m *Module) ReadEvent(raw backend.Event, bindings map[string][]config.Binding) events.Event {
	if raw.Type == backend.EventKey {
		return events.NewStandard(events.Acknowledge)
	}
	if e, ok := module.ReadResizeOrMouse(raw); ok {
		return e
	}
	return events.Empty
}

func (m *Module) HandleEvent(e events.Event) events.Results {
	if e.Kind == events.KindStandard && e.Standard == events.Acknowledge {
		return events.Results{events.ChangeState(m.returnState)}
	}
	return nil
}

func (m *Module) HandleError(err error) events.Results { return nil }
