package externaleditor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/action"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/events"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/todo"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rebase-todo")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestActivateWritesSnapshotAndRequestsCommand(t *testing.T) {
	path := writeTemp(t, "pick a1 one\n")
	doc, err := todo.Read(path, "#", 10)
	if err != nil {
		t.Fatal(err)
	}
	m := New(doc, "vim")
	results := m.Activate(events.StateList)
	if len(results) != 1 || results[0].Kind != events.ArtifactExternalCommand {
		t.Fatalf("results = %+v", results)
	}
	if results[0].Program != "vim" {
		t.Fatalf("Program = %q", results[0].Program)
	}
}

func TestActivateWithNoEditorReturnsError(t *testing.T) {
	path := writeTemp(t, "pick a1 one\n")
	doc, _ := todo.Read(path, "#", 10)
	m := New(doc, "")
	results := m.Activate(events.StateList)
	if len(results) != 1 || results[0].Kind != events.ArtifactError {
		t.Fatalf("results = %+v", results)
	}
}

func TestSuccessReloadsDocumentFromFile(t *testing.T) {
	path := writeTemp(t, "pick a1 one\n")
	doc, _ := todo.Read(path, "#", 10)
	m := New(doc, "vim")
	m.Activate(events.StateList)

	if err := os.WriteFile(path, []byte("pick a1 one\npick b2 two\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	results := m.HandleEvent(events.NewStandard(events.ExternalCommandSuccess))
	if len(results) != 1 || results[0].NextState != events.StateList {
		t.Fatalf("results = %+v", results)
	}
	if doc.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", doc.Len())
	}
}

func TestSuccessWithEmptyFileRestoresSnapshotAndErrors(t *testing.T) {
	path := writeTemp(t, "pick a1 one\n")
	doc, _ := todo.Read(path, "#", 10)
	m := New(doc, "vim")
	m.Activate(events.StateList)

	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	results := m.HandleEvent(events.NewStandard(events.ExternalCommandSuccess))
	if len(results) != 1 || results[0].Kind != events.ArtifactError {
		t.Fatalf("results = %+v", results)
	}
	if doc.Len() != 1 || doc.Lines()[0].Hash != "a1" {
		t.Fatalf("document not restored: %+v", doc.Lines())
	}
}

func TestErrorRestoresSnapshot(t *testing.T) {
	path := writeTemp(t, "pick a1 one\n")
	doc, _ := todo.Read(path, "#", 10)
	m := New(doc, "vim")
	m.Activate(events.StateList)
	doc.SetAction(action.Drop)

	results := m.HandleEvent(events.NewStandard(events.ExternalCommandError))
	if len(results) != 1 || results[0].Kind != events.ArtifactError {
		t.Fatalf("results = %+v", results)
	}
	if doc.Lines()[0].Action != action.Pick {
		t.Fatalf("Action = %v, want restored Pick", doc.Lines()[0].Action)
	}
}
