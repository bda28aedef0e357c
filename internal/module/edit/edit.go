// Package edit implements the Edit sub-state inside List (spec.md §4.8):
// an EditableLine over the selected line's content (exec/label/reset/
// merge/update-ref); enter commits, a read-only flag blocks input,
// labels render as a dim prefix segment.
package edit

import (
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/backend"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/config"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/events"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/module"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/module/editableline"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/todo"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/view"
)

// Module is the Edit sub-state.
type Module struct {
	doc      *todo.Document
	line     *editableline.Line
	label    string
	readOnly bool
}

// New builds an Edit module bound to doc.
func New(doc *todo.Document) *Module { return &Module{doc: doc} }

func (m *Module) Activate(previous events.State) events.Results {
	lines := m.doc.Lines()
	idx := m.doc.SelectedIndex()
	content, label := "", ""
	if idx < len(lines) {
		content = lines[idx].Content
		label = lines[idx].Action.String()
		m.readOnly = !lines[idx].Action.ContentBearing()
	}
	m.label = label
	m.line = editableline.New(content)
	return nil
}
func (m *Module) Deactivate() events.Results { return nil }

func (m *Module) InputOptions() module.InputOptions { return module.OptResize }

func (m *Module) BuildViewData(ctx module.RenderContext) (view.Data, view.Visibility) {
	text := ""
	if m.line != nil {
		text = m.line.String()
	}
	body := []view.ViewLine{view.NewViewLine(
		view.Segment{Text: m.label + ": ", Tag: view.ColourForeground, Style: backend.Style{Dim: true}}).WithPinned(1),
	}
	body[0].Segments = append(body[0].Segments, view.Segment{Text: text})
	return view.Data{Title: true, Body: body}, view.Visibility{}
}

func (m *Module) ReadEvent(raw backend.Event, bindings map[string][]config.Binding) events.Event {
	if raw.Type != backend.EventKey {
		if e, ok := module.ReadResizeOrMouse(raw); ok {
			return e
		}
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

func (m *Module) HandleEvent(e events.Event) events.Results {
	if e.Kind == events.KindStandard {
		switch e.Standard {
		case events.CancelInput:
			return events.Results{events.ChangeState(events.StateList)}
		case events.Commit:
			if !m.readOnly {
				m.doc.SetContent(m.line.String())
			}
			return events.Results{events.ChangeState(events.StateList)}
		}
		return nil
	}
	if m.readOnly || e.Kind != events.KindKey {
		return nil
	}
	switch e.Code {
	case events.KeyChar:
		m.line.InsertRune(e.Rune)
	case events.KeyBackspace:
		m.line.Backspace()
	case events.KeyDelete:
		m.line.Delete()
	case events.KeyLeft:
		m.line.MoveLeft()
	case events.KeyRight:
		m.line.MoveRight()
	case events.KeyHome:
		m.line.MoveHome()
	case events.KeyEnd:
		m.line.MoveEnd()
	}
	return nil
}

func (m *Module) HandleError(err error) events.Results { return nil }
