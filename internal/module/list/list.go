// Package list implements the List module (spec.md §4.6), the largest UI
// surface: render the todo document as a navigable, editable list, run
// its Normal/Visual sub-states, dispatch every bound key-action through
// the document, and own the embedded help overlay and search bar.
// Grounded on internal/dispatcher/handler's per-context dispatch table,
// generalized from vim-mode command handlers to the closed rebase-todo
// action set, composed with the already-built searchbar and help
// sub-components.
package list

import (
	"fmt"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/action"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/backend"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/config"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/events"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/module"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/module/help"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/module/searchbar"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/todo"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/view"
)

// Module is the List state.
type Module struct {
	doc    *todo.Document
	search *searchbar.Bar

	// help is not a top-level FSM state (spec.md §4.4's closed state set
	// has no entry for it); List drives it as an embedded overlay,
	// exercising its full Module-shaped API (Activate/ReadEvent/
	// HandleEvent) the same way it would if the process loop owned it,
	// and intercepts the ChangeState artifact its "any key closes"
	// handling produces instead of forwarding it up (DESIGN.md Open
	// Question decision).
	help       *help.Module
	helpActive bool

	colours map[action.Action]backend.Style

	lastHeight int
}

// New builds a List module bound to doc. settings supplies per-action
// colours and the help overlay's entry list; a nil settings leaves
// colours unstyled and help entries keyed to the built-in defaults.
func New(doc *todo.Document, settings *config.Settings) *Module {
	return &Module{
		doc:     doc,
		search:  searchbar.New(),
		help:    help.New(helpEntries(settings)),
		colours: actionColours(settings),
	}
}

func actionColours(settings *config.Settings) map[action.Action]backend.Style {
	out := map[action.Action]backend.Style{}
	if settings == nil {
		return out
	}
	named := map[action.Action]string{
		action.Pick:      "actionPickColor",
		action.Reword:    "actionRewordColor",
		action.Edit:      "actionEditColor",
		action.Squash:    "actionSquashColor",
		action.Fixup:     "actionFixupColor",
		action.Drop:      "actionDropColor",
		action.Exec:      "actionExecColor",
		action.Break:     "actionBreakColor",
		action.Label:     "actionLabelColor",
		action.Reset:     "actionResetColor",
		action.Merge:     "actionMergeColor",
		action.UpdateRef: "actionUpdateRefColor",
	}
	for a, name := range named {
		out[a] = backend.Style{FG: settings.Colours[name]}
	}
	return out
}

// helpEntries describes every List key binding for the help overlay.
// Descriptors are the built-in defaults (config.Load seeds Bindings
// accordingly even without user config); this is a fixed label list
// rather than a live re-derivation of the merged Settings.Bindings table,
// matching the teacher's own static registered-action listing.
func helpEntries(settings *config.Settings) []help.Entry {
	entries := []struct{ keys, desc string }{
		{"Up/Down", "move cursor"},
		{"PageUp/PageDown", "move cursor a page"},
		{"Home/End", "jump to first/last line"},
		{"v", "toggle visual mode"},
		{"p r e s f d", "set action: pick/reword/edit/squash/fixup/drop"},
		{"b", "toggle break"},
		{"J/K", "move selection down/up"},
		{"I", "insert a new line"},
		{"Control+k", "remove selected line(s)"},
		{"E", "edit line content"},
		{"c", "show commit"},
		{"!", "open in external editor"},
		{"u / Control+r", "undo / redo"},
		{"C / X", "fixup: keep message / keep message, reopen editor"},
		{"q / Q", "abort / force abort"},
		{"w / W", "rebase / force rebase"},
		{"/ n N", "search / next / previous match"},
		{"h", "toggle this help"},
	}
	_ = settings
	out := make([]help.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, help.Entry{Keys: e.keys, Description: e.desc})
	}
	return out
}

func (m *Module) Activate(previous events.State) events.Results {
	return nil
}

func (m *Module) Deactivate() events.Results { return nil }

func (m *Module) InputOptions() module.InputOptions {
	return module.OptResize | module.OptMovement | module.OptHelp | module.OptSearch | module.OptUndoRedo
}

// ReadEvent routes raw input to whichever sub-component currently owns
// it (help overlay, search bar while editing), or translates it through
// the shared config-bound dispatch table, falling back to the handful of
// un-configurable raw keys (force_abort, force_rebase, the capital-E edit
// sub-state entry, and the two fixup-modifier toggles) spec.md §6's
// key-binding table has no config entry for.
func (m *Module) ReadEvent(raw backend.Event, bindings map[string][]config.Binding) events.Event {
	if m.helpActive {
		return m.help.ReadEvent(raw, bindings)
	}
	if m.search.State() == searchbar.Editing {
		return m.search.ReadEvent(raw)
	}
	if se, ok := module.ReadStandardEvent(raw, bindings); ok {
		return se
	}
	if raw.Type == backend.EventKey && raw.Key == backend.KeyRune {
		switch raw.Rune {
		case 'Q':
			return events.NewStandard(events.ForceAbort)
		case 'W':
			return events.NewStandard(events.ForceRebase)
		case 'E':
			return events.NewStandard(events.Edit)
		case 'C':
			return events.NewStandard(events.FixupKeepMessage)
		case 'X':
			return events.NewStandard(events.FixupKeepMessageWithEditor)
		}
	}
	if e, ok := module.ReadResizeOrMouse(raw); ok {
		return e
	}
	return events.Empty
}

func (m *Module) HandleEvent(e events.Event) events.Results {
	if m.helpActive {
		return m.handleHelp(e)
	}
	if m.search.State() == searchbar.Editing {
		return m.search.HandleEvent(e)
	}
	if e.Kind != events.KindStandard {
		return nil
	}
	return m.dispatch(e.Standard)
}

// handleHelp forwards to the embedded help module and converts its
// "close" intent (a ChangeState artifact, since help.Module is built to
// the full Module contract) into clearing the local overlay flag rather
// than a real state transition.
func (m *Module) handleHelp(e events.Event) events.Results {
	results := m.help.HandleEvent(e)
	for _, a := range results {
		if a.Kind == events.ArtifactChangeState {
			m.helpActive = false
		}
	}
	return nil
}

func (m *Module) dispatch(se events.StandardEvent) events.Results {
	switch se {
	case events.MoveCursorUp:
		m.doc.MoveUp()
	case events.MoveCursorDown:
		m.doc.MoveDown()
	case events.MoveCursorHome:
		m.doc.MoveHome()
	case events.MoveCursorEnd:
		m.doc.MoveEnd()
	case events.MoveCursorPageUp:
		m.doc.MovePage(-m.pageSize())
	case events.MoveCursorPageDown:
		m.doc.MovePage(m.pageSize())
	case events.MoveCursorLeft, events.MoveCursorRight:
		// The todo list has no horizontal cursor concept (spec.md §4.6's
		// effect table only describes up/down/home/end/page); reserved.
	case events.ToggleVisualMode:
		m.doc.ToggleVisualMode()
	case events.ActionPick:
		m.doc.SetAction(action.Pick)
	case events.ActionReword:
		m.doc.SetAction(action.Reword)
	case events.ActionEdit:
		m.doc.SetAction(action.Edit)
	case events.ActionSquash:
		m.doc.SetAction(action.Squash)
	case events.ActionFixup:
		m.doc.SetAction(action.Fixup)
	case events.ActionDrop:
		m.doc.SetAction(action.Drop)
	case events.ActionBreak:
		m.doc.ToggleBreak()
	case events.SwapUp:
		m.doc.MoveSelectionUp()
	case events.SwapDown:
		m.doc.MoveSelectionDown()
	case events.InsertLine:
		return events.Results{events.ChangeState(events.StateInsert)}
	case events.Edit:
		return m.enterEdit()
	case events.Delete:
		m.doc.RemoveSelection()
	case events.ShowCommit:
		return m.enterShowCommit()
	case events.OpenInEditor:
		return events.Results{events.ChangeState(events.StateExternalEditor)}
	case events.Undo:
		m.doc.Undo()
	case events.Redo:
		m.doc.Redo()
	case events.Abort:
		return events.Results{events.ChangeState(events.StateConfirmAbort)}
	case events.ForceAbort:
		m.doc.Clear()
		return events.Results{events.ExitWith(events.Good)}
	case events.Rebase:
		return events.Results{events.ChangeState(events.StateConfirmRebase)}
	case events.ForceRebase:
		if !m.doc.IsNoop() {
			return events.Results{events.ExitWith(events.Good)}
		}
	case events.FixupKeepMessage:
		m.doc.ToggleFixupModifier(action.KeepMessage)
	case events.FixupKeepMessageWithEditor:
		m.doc.ToggleFixupModifier(action.KeepMessageEditor)
	case events.Help:
		m.helpActive = true
		m.help.Activate(events.StateList)
	case events.SearchStart:
		m.search.SetSearchable(m.doc.Lines())
		m.search.StartEditing()
	case events.SearchNext:
		if idx, ok := m.search.Next(); ok {
			m.doc.SetSelectedIndex(idx)
		}
	case events.SearchPrevious:
		if idx, ok := m.search.Previous(); ok {
			m.doc.SetSelectedIndex(idx)
		}
	}
	return nil
}

func (m *Module) enterEdit() events.Results {
	lines := m.doc.Lines()
	idx := m.doc.SelectedIndex()
	if idx >= len(lines) || !lines[idx].Action.ContentBearing() {
		return nil
	}
	return events.Results{events.ChangeState(events.StateEdit)}
}

func (m *Module) enterShowCommit() events.Results {
	lines := m.doc.Lines()
	idx := m.doc.SelectedIndex()
	if idx >= len(lines) || !lines[idx].Action.CommitBearing() {
		return nil
	}
	return events.Results{events.ChangeState(events.StateShowCommit)}
}

func (m *Module) pageSize() int {
	if m.lastHeight > 1 {
		return m.lastHeight
	}
	return 10
}

func (m *Module) HandleError(err error) events.Results { return nil }

// BuildViewData renders the document as one row per line plus the search
// bar's prompt row, per spec.md §4.6's rendering contract.
func (m *Module) BuildViewData(ctx module.RenderContext) (view.Data, view.Visibility) {
	m.lastHeight = ctx.Height

	if m.helpActive {
		data, vis := m.help.BuildViewData(ctx)
		return data, vis
	}

	lines := m.doc.Lines()
	compact := ctx.Width < view.FullWidthColumn

	var body []view.ViewLine
	if len(lines) == 0 {
		body = append(body, view.NewViewLine(view.Segment{Text: "(no lines)", Style: backend.Style{Dim: true}}))
	}
	cursor := m.doc.SelectedIndex()
	for i, l := range lines {
		body = append(body, m.renderLine(i, cursor, l, compact))
	}

	var trailing []view.ViewLine
	if m.search.State() != searchbar.Deactivated {
		trailing = append(trailing, m.search.ViewLine())
	}

	return view.Data{Title: true, Body: body, Trailing: trailing}, view.Visibility{Row: cursor}
}

func (m *Module) renderLine(index, cursor int, l todo.Line, compact bool) view.ViewLine {
	cursorMark := " "
	if index == cursor {
		cursorMark = ">"
	}
	selMark := " "
	if l.Selected {
		selMark = "s"
	}

	actionText := l.Action.String()
	if compact {
		actionText = l.Action.Letter()
	}

	style := m.colours[l.Action]
	if l.Action == action.Drop {
		style.Dim = true
	}

	hashText := l.Hash
	if compact && len(hashText) > 3 {
		hashText = hashText[:3]
	}
	hashStyle := style
	if l.Duplicate {
		hashStyle.Underline = true
	}

	segs := []view.Segment{
		{Text: cursorMark + selMark + " "},
		{Text: actionText, Style: style},
		{Text: " "},
	}
	if hashText != "" {
		segs = append(segs, view.Segment{Text: hashText, Style: hashStyle}, view.Segment{Text: " "})
	}
	if l.Content != "" {
		segs = append(segs, view.Segment{Text: l.Content, Style: style})
	}
	if l.Modifier != action.NoModifier {
		segs = append(segs, view.Segment{Text: fmt.Sprintf(" (%s)", l.Modifier.String()), Style: style})
	}

	return view.NewViewLine(segs...).WithSelected(l.Selected)
}
