package windowsizeerror

import (
	"testing"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/events"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/module"
)

func TestAcceptable(t *testing.T) {
	if Acceptable(20, 10) {
		t.Fatal("width 20 should not be acceptable")
	}
	if Acceptable(30, 5) {
		t.Fatal("height 5 should not be acceptable")
	}
	if !Acceptable(21, 6) {
		t.Fatal("21x6 should be acceptable")
	}
}

func TestActivateRecordsReturnState(t *testing.T) {
	m := New()
	m.Activate(events.StateShowCommit)
	if m.returnState != events.StateShowCommit {
		t.Fatalf("returnState = %v, want StateShowCommit", m.returnState)
	}
	data, _ := m.BuildViewData(module.RenderContext{Width: 10, Height: 10})
	if len(data.Body) == 0 {
		t.Fatal("expected a message body line")
	}
}

func TestResizeToAcceptableChangesState(t *testing.T) {
	m := New()
	m.SetReturnState(events.StateList)
	results := m.HandleEvent(events.NewResize(80, 24))
	if len(results) != 1 || results[0].NextState != events.StateList {
		t.Fatalf("results = %+v", results)
	}
}

func TestResizeStillTooSmallNoTransition(t *testing.T) {
	m := New()
	m.SetReturnState(events.StateList)
	if results := m.HandleEvent(events.NewResize(10, 4)); len(results) != 0 {
		t.Fatalf("results = %+v, want none", results)
	}
}
