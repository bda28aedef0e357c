package edit

import (
	"testing"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/action"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/events"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/todo"
)

func newDoc(lines ...todo.Line) *todo.Document {
	d := todo.New("/tmp/todo", "#", 10)
	d.Load(lines)
	return d
}

func TestActivateLoadsContentAndReadOnlyFlag(t *testing.T) {
	d := newDoc(todo.NewContentLine(action.Exec, "make"))
	m := New(d)
	m.Activate(events.StateList)

	if m.line.String() != "make" {
		t.Fatalf("line = %q, want %q", m.line.String(), "make")
	}
	if m.readOnly {
		t.Fatal("exec line should not be read-only")
	}
}

func TestActivateMarksCommitBearingLineReadOnly(t *testing.T) {
	d := newDoc(todo.NewCommitLine(action.Pick, "a1", "one"))
	m := New(d)
	m.Activate(events.StateList)

	if !m.readOnly {
		t.Fatal("commit-bearing line should be read-only")
	}
}

func TestCommitWritesContentBackToDocument(t *testing.T) {
	d := newDoc(todo.NewContentLine(action.Label, "old"))
	m := New(d)
	m.Activate(events.StateList)

	for range m.line.String() {
		m.line.Backspace()
	}
	for _, r := range "new" {
		m.line.InsertRune(r)
	}
	results := m.HandleEvent(events.NewStandard(events.Commit))
	if len(results) != 1 || results[0].NextState != events.StateList {
		t.Fatalf("results = %+v", results)
	}
	if d.Lines()[0].Content != "new" {
		t.Fatalf("Content = %q, want %q", d.Lines()[0].Content, "new")
	}
}

func TestCancelDoesNotWriteContent(t *testing.T) {
	d := newDoc(todo.NewContentLine(action.Label, "old"))
	m := New(d)
	m.Activate(events.StateList)
	m.line.InsertRune('x')

	results := m.HandleEvent(events.NewStandard(events.CancelInput))
	if len(results) != 1 || results[0].NextState != events.StateList {
		t.Fatalf("results = %+v", results)
	}
	if d.Lines()[0].Content != "old" {
		t.Fatalf("Content = %q, want unchanged %q", d.Lines()[0].Content, "old")
	}
}

func TestReadOnlyIgnoresKeyInput(t *testing.T) {
	d := newDoc(todo.NewCommitLine(action.Pick, "a1", "one"))
	m := New(d)
	m.Activate(events.StateList)

	m.HandleEvent(events.NewKey(events.KeyChar, 'z', 0))
	results := m.HandleEvent(events.NewStandard(events.Commit))
	if len(results) != 1 || results[0].NextState != events.StateList {
		t.Fatalf("results = %+v", results)
	}
	if d.Lines()[0].Content != "one" {
		t.Fatalf("Content = %q, want unchanged %q", d.Lines()[0].Content, "one")
	}
}
