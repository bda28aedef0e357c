package insert

import (
	"testing"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/events"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/todo"
)

func newDoc() *todo.Document {
	d := todo.New("/tmp/todo", "#", 10)
	d.Load(nil)
	return d
}

func TestCancelAtChoiceReturnsToList(t *testing.T) {
	d := newDoc()
	m := New(d)
	m.Activate(events.StateList)

	results := m.handleChoice(events.Event{Kind: events.KindKey, Code: events.KeyChar, Rune: 'q'})
	if len(results) != 1 || results[0].NextState != events.StateList {
		t.Fatalf("results = %+v", results)
	}
}

func TestInsertExecLineFlow(t *testing.T) {
	d := newDoc()
	m := New(d)
	m.Activate(events.StateList)

	m.handleChoice(events.Event{Kind: events.KindKey, Code: events.KeyChar, Rune: 'e'})
	if m.step != stepEdit || m.kind != "exec" {
		t.Fatalf("step = %v, kind = %q", m.step, m.kind)
	}
	for _, r := range "make test" {
		m.handleEdit(events.Event{Kind: events.KindKey, Code: events.KeyChar, Rune: r})
	}
	results := m.handleEdit(events.Event{Kind: events.KindStandard, Standard: events.Commit})
	if len(results) != 1 || results[0].NextState != events.StateList {
		t.Fatalf("results = %+v", results)
	}
	if d.Len() != 1 || d.Lines()[0].Content != "make test" {
		t.Fatalf("doc lines = %+v", d.Lines())
	}
}
