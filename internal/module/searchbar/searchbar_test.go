package searchbar

import (
	"testing"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/action"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/events"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/todo"
)

func TestEditingThenCommitStartsSearching(t *testing.T) {
	b := New()
	b.SetSearchable([]todo.Line{
		todo.NewContentLine(action.Exec, "make test"),
		todo.NewCommitLine(action.Pick, "a1", "fix bug"),
	})
	b.StartEditing()
	for _, r := range "test" {
		b.HandleEvent(events.NewKey(events.KeyChar, r, 0))
	}
	results := b.HandleEvent(events.NewStandard(events.Commit))
	if b.State() != Searching {
		t.Fatalf("State() = %v, want Searching", b.State())
	}
	if len(results) != 1 || results[0].Term != "test" {
		t.Fatalf("results = %+v", results)
	}
	if b.MatchCount() != 1 {
		t.Fatalf("MatchCount() = %d, want 1", b.MatchCount())
	}
}

func TestCancelWhileEditingReturnsToDeactivated(t *testing.T) {
	b := New()
	b.StartEditing()
	b.HandleEvent(events.NewKey(events.KeyChar, 'x', 0))
	results := b.HandleEvent(events.NewStandard(events.CancelInput))
	if b.State() != Deactivated {
		t.Fatalf("State() = %v, want Deactivated", b.State())
	}
	if len(results) != 1 {
		t.Fatalf("results = %+v", results)
	}
}

func TestNextWrapsAcrossMatches(t *testing.T) {
	b := New()
	b.SetSearchable([]todo.Line{
		todo.NewContentLine(action.Exec, "match one"),
		todo.NewContentLine(action.Label, "no"),
		todo.NewContentLine(action.Exec, "match two"),
	})
	b.StartEditing()
	for _, r := range "match" {
		b.HandleEvent(events.NewKey(events.KeyChar, r, 0))
	}
	b.HandleEvent(events.NewStandard(events.Commit))

	idx, ok := b.Next()
	if !ok || idx != 0 {
		t.Fatalf("Next() = %d, %v", idx, ok)
	}
	idx, ok = b.Next()
	if !ok || idx != 2 {
		t.Fatalf("Next() = %d, %v", idx, ok)
	}
	idx, ok = b.Next()
	if !ok || idx != 0 {
		t.Fatalf("Next() should wrap back to 0, got %d", idx)
	}
}

func TestNoMatchesReportsFalse(t *testing.T) {
	b := New()
	b.SetSearchable([]todo.Line{todo.NewContentLine(action.Exec, "nothing")})
	b.StartEditing()
	b.HandleEvent(events.NewKey(events.KeyChar, 'z', 0))
	b.HandleEvent(events.NewStandard(events.Commit))

	if _, ok := b.Next(); ok {
		t.Fatal("Next() should report no match")
	}
}
