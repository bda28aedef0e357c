// Package externaleditor implements the ExternalEditor module (spec.md
// §4.5): serializes the todo document, requests the process loop hand
// off to an external program, and on the hand-off's result either
// reloads the document or rolls it back to the pre-edit snapshot.
// Grounded on internal/integration/process's Supervisor (whose Start
// pipes any stdio stream left nil, so Spawn's caller assigns the real
// terminal streams for the editor to take over the terminal) composed
// with the todo package's Read/Write.
package externaleditor

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/backend"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/config"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/events"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/integration/process"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/module"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/module/spin"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/todo"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/view"
)

// ErrEmptyReload is carried in an Error artifact when the editor exits 0 but leaves
// an unreadable or empty todo file, per spec.md §4.5 step 5.
var ErrEmptyReload = errors.New("external editor produced an empty or unreadable todo file")

// ErrEditorFailed wraps a non-zero external editor exit.
var ErrEditorFailed = errors.New("external editor exited with an error")

// Module is the ExternalEditor state.
type Module struct {
	doc    *todo.Document
	editor string

	supervisor *process.Supervisor
	spinner    *spin.Spinner
	snapshot   []todo.Line
}

// New builds an ExternalEditor module. editor is the command line (as
// resolved from core.editor / VISUAL / EDITOR, spec.md §6).
func New(doc *todo.Document, editor string) *Module {
	return &Module{doc: doc, editor: editor, supervisor: process.NewSupervisor(), spinner: spin.New()}
}

// Activate serializes the current document (step 3) and requests the
// process loop spawn the editor (step 4); it retains the pre-edit
// snapshot for rollback.
func (m *Module) Activate(previous events.State) events.Results {
	m.snapshot = append([]todo.Line(nil), m.doc.Lines()...)

	if err := todo.Write(m.doc); err != nil {
		return events.Results{events.Error(err, events.StateList)}
	}

	prog, args := splitCommand(m.editor)
	if prog == "" {
		return events.Results{events.Error(errors.New("no editor configured (core.editor, VISUAL, or EDITOR)"), events.StateList)}
	}
	m.spinner.Reset()
	return events.Results{events.ExternalCommand(prog, args)}
}

func (m *Module) Deactivate() events.Results { return nil }

func (m *Module) InputOptions() module.InputOptions { return module.OptResize }

func (m *Module) BuildViewData(ctx module.RenderContext) (view.Data, view.Visibility) {
	glyph := m.spinner.Advance()
	body := []view.ViewLine{view.NewViewLine(view.Segment{Text: string(glyph) + " waiting for external editor"})}
	return view.Data{Title: true, Body: body}, view.Visibility{}
}

func (m *Module) ReadEvent(raw backend.Event, bindings map[string][]config.Binding) events.Event {
	if e, ok := module.ReadResizeOrMouse(raw); ok {
		return e
	}
	return events.Empty
}

// HandleEvent processes the process loop's delivered hand-off result
// (step 5: reload on success, restore + Error on failure or empty
// reload).
func (m *Module) HandleEvent(e events.Event) events.Results {
	if e.Kind != events.KindStandard {
		return nil
	}
	switch e.Standard {
	case events.ExternalCommandSuccess:
		reloaded, err := todo.Read(m.doc.Path, m.doc.CommentChar, m.doc.UndoLimit())
		if err != nil || reloaded.Len() == 0 {
			m.doc.Load(m.snapshot)
			return events.Results{events.Error(ErrEmptyReload, events.StateList)}
		}
		m.doc.Load(reloaded.Lines())
		return events.Results{events.ChangeState(events.StateList)}
	case events.ExternalCommandError:
		m.doc.Load(m.snapshot)
		return events.Results{events.Error(ErrEditorFailed, events.StateList)}
	}
	return nil
}

func (m *Module) HandleError(err error) events.Results { return nil }

// splitCommand breaks an editor command line into program + args. A
// plain whitespace split (not full shell-quoting) matches the scope of
// core.editor/VISUAL/EDITOR values, which are themselves just a command
// and flags (e.g. "vim", "code --wait"); no shell-lexing library appears
// anywhere in the retrieval pack, so this stays on stdlib strings.Fields.
func splitCommand(cmdline string) (string, []string) {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// Spawn runs the external editor to completion, after inheritStdio has
// assigned the command's stdio (Supervisor.Start pipes any stream left
// nil); used by the process loop when it drains an ExternalCommand artifact.
// Exposed here (rather than in internal/process) because the Supervisor
// instance and its lifecycle belong to this module.
func (m *Module) Spawn(prog string, args []string, inheritStdio func(cmd *exec.Cmd)) error {
	cmd := exec.Command(prog, args...)
	if inheritStdio != nil {
		inheritStdio(cmd)
	}
	proc, err := m.supervisor.Start("external-editor", cmd)
	if err != nil {
		return err
	}
	<-proc.Done()
	if proc.ExitCode() != 0 {
		return ErrEditorFailed
	}
	return proc.ExitError()
}
