// Package insert implements the Insert module (spec.md §4.8): a two-step
// flow where a Choice sub-component selects the new line's kind, then an
// Edit sub-component (editableline) captures its content; on enter, a new
// line is inserted after the current selection and the module returns to
// List.
package insert

import (
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/action"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/backend"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/config"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/events"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/module"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/module/choice"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/module/editableline"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/todo"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/view"
)

// step identifies which half of the two-step flow is active.
type step int

const (
	stepChoice step = iota
	stepEdit
)

// kindOptions is the Choice menu's fixed option set (spec.md §4.8).
var kindOptions = []choice.Option{
	{Key: 'e', Value: "exec", Label: "(e)xec"},
	{Key: 'p', Value: "pick", Label: "(p)ick"},
	{Key: 'l', Value: "label", Label: "(l)abel"},
	{Key: 't', Value: "reset", Label: "rese(t)"},
	{Key: 'm', Value: "merge", Label: "(m)erge"},
	{Key: 'u', Value: "update-ref", Label: "(u)pdate-ref"},
	{Key: 'q', Value: "cancel", Label: "(q)cancel"},
}

// Module is the Insert state.
type Module struct {
	doc    *todo.Document
	menu   *choice.Menu
	step   step
	kind   string
	edit   *editableline.Line
}

// New builds an Insert module bound to doc.
func New(doc *todo.Document) *Module {
	return &Module{doc: doc, menu: choice.New(kindOptions)}
}

func (m *Module) Activate(previous events.State) events.Results {
	m.step = stepChoice
	m.menu.ClearInvalid()
	m.kind = ""
	m.edit = nil
	return nil
}
func (m *Module) Deactivate() events.Results { return nil }

func (m *Module) InputOptions() module.InputOptions { return module.OptResize }

func (m *Module) BuildViewData(ctx module.RenderContext) (view.Data, view.Visibility) {
	var body []view.ViewLine
	switch m.step {
	case stepChoice:
		for _, o := range m.menu.Options() {
			body = append(body, view.NewViewLine(view.Segment{Text: o.Label}))
		}
		if m.menu.Invalid() {
			body = append(body, view.NewViewLine(view.Segment{Text: "invalid selection", Tag: view.ColourError}))
		}
	case stepEdit:
		text := ""
		if m.edit != nil {
			text = m.edit.String()
		}
		body = append(body, view.NewViewLine(
			view.Segment{Text: m.kind + ": "},
			view.Segment{Text: text},
		))
	}
	return view.Data{Title: true, Body: body}, view.Visibility{}
}

func (m *Module) ReadEvent(raw backend.Event, bindings map[string][]config.Binding) events.Event {
	if raw.Type != backend.EventKey {
		if e, ok := module.ReadResizeOrMouse(raw); ok {
			return e
		}
		return events.Empty
	}
	switch m.step {
	case stepChoice:
		if raw.Key == backend.KeyRune {
			return events.NewKey(events.KeyChar, raw.Rune, 0)
		}
		return events.Empty
	case stepEdit:
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
	return events.Empty
}

func (m *Module) HandleEvent(e events.Event) events.Results {
	switch m.step {
	case stepChoice:
		return m.handleChoice(e)
	case stepEdit:
		return m.handleEdit(e)
	}
	return nil
}

func (m *Module) handleChoice(e events.Event) events.Results {
	if e.Kind != events.KindKey || e.Code != events.KeyChar {
		return nil
	}
	value, ok := m.menu.Select(e.Rune)
	if !ok {
		return nil
	}
	if value == "cancel" {
		return events.Results{events.ChangeState(events.StateList)}
	}
	m.kind = value
	m.edit = editableline.New("")
	m.step = stepEdit
	return nil
}

func (m *Module) handleEdit(e events.Event) events.Results {
	if e.Kind == events.KindStandard {
		switch e.Standard {
		case events.CancelInput:
			return events.Results{events.ChangeState(events.StateList)}
		case events.Commit:
			return m.commit()
		}
		return nil
	}
	if e.Kind != events.KindKey {
		return nil
	}
	switch e.Code {
	case events.KeyChar:
		m.edit.InsertRune(e.Rune)
	case events.KeyBackspace:
		m.edit.Backspace()
	case events.KeyDelete:
		m.edit.Delete()
	case events.KeyLeft:
		m.edit.MoveLeft()
	case events.KeyRight:
		m.edit.MoveRight()
	case events.KeyHome:
		m.edit.MoveHome()
	case events.KeyEnd:
		m.edit.MoveEnd()
	}
	return nil
}

func (m *Module) commit() events.Results {
	text := m.edit.String()
	a, _ := action.Parse(m.kind)
	var line todo.Line
	if a.CommitBearing() {
		line = todo.NewCommitLine(a, text, "")
	} else {
		line = todo.NewContentLine(a, text)
	}
	m.doc.InsertAfter(line)
	return events.Results{events.ChangeState(events.StateList)}
}

func (m *Module) HandleError(err error) events.Results { return nil }
