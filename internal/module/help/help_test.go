package help

import (
	"testing"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/backend"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/events"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/module"
)

func TestBuildViewDataRightPadsKeyColumn(t *testing.T) {
	m := New([]Entry{{Keys: "j", Description: "move down"}, {Keys: "move up", Description: "move up"}})
	data, _ := m.BuildViewData(module.RenderContext{Width: 80, Height: 24})
	if !data.HelpShown {
		t.Fatal("HelpShown should be true")
	}
	if len(data.Body) != 2 {
		t.Fatalf("len(Body) = %d", len(data.Body))
	}
}

func TestAnyKeyCloses(t *testing.T) {
	m := New(nil)
	m.Activate(events.StateList)
	e := m.ReadEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: '?'}, nil)
	results := m.HandleEvent(e)
	if len(results) != 1 || results[0].NextState != events.StateList {
		t.Fatalf("results = %+v", results)
	}
}
