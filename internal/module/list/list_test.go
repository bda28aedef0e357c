package list

import (
	"testing"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/action"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/events"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/module"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/todo"
)

func newDoc(lines ...todo.Line) *todo.Document {
	d := todo.New("/tmp/todo", "#", 10)
	d.Load(lines)
	return d
}

func TestMoveDownThenDropThenForceRebase(t *testing.T) {
	d := newDoc(
		todo.NewCommitLine(action.Pick, "a1", "one"),
		todo.NewCommitLine(action.Pick, "a2", "two"),
	)
	m := New(d, nil)

	m.HandleEvent(events.NewStandard(events.MoveCursorDown))
	m.HandleEvent(events.NewStandard(events.ActionDrop))
	results := m.HandleEvent(events.NewStandard(events.ForceRebase))

	if d.Lines()[1].Action != action.Drop {
		t.Fatalf("Action = %v, want Drop", d.Lines()[1].Action)
	}
	if len(results) != 1 || results[0].Kind != events.ArtifactExitStatus || results[0].Status != events.Good {
		t.Fatalf("results = %+v", results)
	}
}

func TestForceRebaseOnNoopIsNoOp(t *testing.T) {
	d := newDoc(todo.NewBareLine(action.Noop))
	m := New(d, nil)

	results := m.HandleEvent(events.NewStandard(events.ForceRebase))
	if results != nil {
		t.Fatalf("results = %+v, want nil", results)
	}
}

func TestForceAbortClearsDocumentAndExits(t *testing.T) {
	d := newDoc(todo.NewCommitLine(action.Pick, "a1", "one"))
	m := New(d, nil)

	results := m.HandleEvent(events.NewStandard(events.ForceAbort))
	if d.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", d.Len())
	}
	if len(results) != 1 || results[0].Status != events.Good {
		t.Fatalf("results = %+v", results)
	}
}

func TestShowCommitOnlyEntersForCommitBearingLine(t *testing.T) {
	d := newDoc(todo.NewContentLine(action.Exec, "make test"))
	m := New(d, nil)

	results := m.HandleEvent(events.NewStandard(events.ShowCommit))
	if results != nil {
		t.Fatalf("results = %+v, want nil for non-commit-bearing line", results)
	}

	d2 := newDoc(todo.NewCommitLine(action.Pick, "a1", "one"))
	m2 := New(d2, nil)
	results2 := m2.HandleEvent(events.NewStandard(events.ShowCommit))
	if len(results2) != 1 || results2[0].NextState != events.StateShowCommit {
		t.Fatalf("results = %+v", results2)
	}
}

func TestEditOnlyEntersForContentBearingLine(t *testing.T) {
	d := newDoc(todo.NewCommitLine(action.Pick, "a1", "one"))
	m := New(d, nil)
	if results := m.HandleEvent(events.NewStandard(events.Edit)); results != nil {
		t.Fatalf("results = %+v, want nil for commit-bearing line", results)
	}

	d2 := newDoc(todo.NewContentLine(action.Exec, "make"))
	m2 := New(d2, nil)
	results2 := m2.HandleEvent(events.NewStandard(events.Edit))
	if len(results2) != 1 || results2[0].NextState != events.StateEdit {
		t.Fatalf("results = %+v", results2)
	}
}

func TestHelpOverlayTogglesAndAnyKeyCloses(t *testing.T) {
	d := newDoc(todo.NewCommitLine(action.Pick, "a1", "one"))
	m := New(d, nil)

	m.HandleEvent(events.NewStandard(events.Help))
	if !m.helpActive {
		t.Fatal("Help should activate the overlay")
	}
	data, _ := m.BuildViewData(module.RenderContext{Width: 80, Height: 24})
	if !data.HelpShown {
		t.Fatal("BuildViewData should report HelpShown while active")
	}

	results := m.HandleEvent(events.NewStandard(events.Acknowledge))
	if results != nil {
		t.Fatalf("results = %+v, want nil (help is not a real FSM state)", results)
	}
	if m.helpActive {
		t.Fatal("any key should close the help overlay")
	}
}

func TestSearchStartThenCommitThenNextMovesCursor(t *testing.T) {
	d := newDoc(
		todo.NewCommitLine(action.Pick, "a1", "one"),
		todo.NewContentLine(action.Exec, "make test"),
		todo.NewCommitLine(action.Pick, "a2", "match two"),
	)
	m := New(d, nil)

	m.HandleEvent(events.NewStandard(events.SearchStart))
	for _, r := range "match" {
		m.HandleEvent(events.NewKey(events.KeyChar, r, 0))
	}
	m.HandleEvent(events.NewStandard(events.Commit))

	m.HandleEvent(events.NewStandard(events.SearchNext))
	if d.SelectedIndex() != 2 {
		t.Fatalf("SelectedIndex() = %d, want 2", d.SelectedIndex())
	}
}

func TestFixupModifierTogglesOnlyOnFixupLine(t *testing.T) {
	d := newDoc(todo.NewCommitLine(action.Fixup, "a1", "one"))
	m := New(d, nil)

	m.HandleEvent(events.NewStandard(events.FixupKeepMessage))
	if d.Lines()[0].Modifier != action.KeepMessage {
		t.Fatalf("Modifier = %v, want KeepMessage", d.Lines()[0].Modifier)
	}
}

func TestOpenInEditorChangesStateToExternalEditor(t *testing.T) {
	d := newDoc(todo.NewCommitLine(action.Pick, "a1", "one"))
	m := New(d, nil)

	results := m.HandleEvent(events.NewStandard(events.OpenInEditor))
	if len(results) != 1 || results[0].NextState != events.StateExternalEditor {
		t.Fatalf("results = %+v", results)
	}
}

func TestCompactModeRendersSingleLetterActionAndTruncatedHash(t *testing.T) {
	d := newDoc(todo.NewCommitLine(action.Pick, "abcdef1234", "one"))
	m := New(d, nil)

	data, _ := m.BuildViewData(module.RenderContext{Width: 20, Height: 24})
	if len(data.Body) != 1 {
		t.Fatalf("Body = %+v", data.Body)
	}
	line := data.Body[0]
	var text string
	for _, seg := range line.Segments {
		text += seg.Text
	}
	if !contains(text, "p ") || contains(text, "pick") {
		t.Fatalf("expected compact single-letter action, got %q", text)
	}
	if !contains(text, "abc") || contains(text, "abcdef1234") {
		t.Fatalf("expected truncated hash, got %q", text)
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
