package view

import (
	"testing"
	"time"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/backend"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/runtime"
)

func TestSegmentWidth(t *testing.T) {
	s := Segment{Text: "pick"}
	if s.Width() != 4 {
		t.Fatalf("Width() = %d, want 4", s.Width())
	}
}

func TestViewLineBuilders(t *testing.T) {
	l := NewViewLine(Segment{Text: "a"}, Segment{Text: "b"}).
		WithPinned(1).
		WithSelected(true)
	if l.Pinned != 1 || !l.Selected || len(l.Segments) != 2 {
		t.Fatalf("unexpected ViewLine: %+v", l)
	}
}

func TestApplyPendingClampsToExtent(t *testing.T) {
	rs := &RenderSlice{}
	rs.AppendAction(ScrollDown)
	rs.AppendAction(ScrollDown)
	rs.AppendAction(ScrollDown)
	rs.ApplyPending(80, 10, 80, 12)
	if rs.Scroll.Top != 2 {
		t.Fatalf("Scroll.Top = %d, want 2 (clamped to total-visible)", rs.Scroll.Top)
	}
	if len(rs.Pending) != 0 {
		t.Fatalf("Pending not cleared: %v", rs.Pending)
	}
}

func TestApplyPendingTopNeverNegative(t *testing.T) {
	rs := &RenderSlice{}
	rs.AppendAction(ScrollUp)
	rs.ApplyPending(80, 10, 80, 12)
	if rs.Scroll.Top != 0 {
		t.Fatalf("Scroll.Top = %d, want 0", rs.Scroll.Top)
	}
}

func TestScrollbarThumbMonotonic(t *testing.T) {
	height, total := 10, 100
	prev := -1
	for top := 0; top <= 90; top += 10 {
		thumb := ScrollbarThumb(top, height, total)
		if thumb < prev {
			t.Fatalf("thumb not monotonic: top=%d thumb=%d prev=%d", top, thumb, prev)
		}
		if thumb < 0 || thumb > height-1 {
			t.Fatalf("thumb out of range: %d", thumb)
		}
		prev = thumb
	}
}

func TestScrollbarThumbEmptyBody(t *testing.T) {
	if got := ScrollbarThumb(0, 0, 0); got != 0 {
		t.Fatalf("ScrollbarThumb with zero height/total = %d, want 0", got)
	}
}

func TestEnsureVisibleScrollsDownToRow(t *testing.T) {
	rs := &RenderSlice{}
	rs.EnsureVisible(Visibility{Row: 20}, 80, 10)
	if rs.Scroll.Top != 11 {
		t.Fatalf("Scroll.Top = %d, want 11", rs.Scroll.Top)
	}
}

func TestEnsureVisibleScrollsUpToRow(t *testing.T) {
	rs := &RenderSlice{Scroll: ScrollState{Top: 20}}
	rs.EnsureVisible(Visibility{Row: 5}, 80, 10)
	if rs.Scroll.Top != 5 {
		t.Fatalf("Scroll.Top = %d, want 5", rs.Scroll.Top)
	}
}

func TestRendererStartStopTogglesTerminal(t *testing.T) {
	term := backend.NewFake(80, 24)
	r := NewRenderer(term)
	rt := runtime.New()
	rt.Install(r)
	defer r.End()

	r.Start()
	waitForRendererFlag(t, func() bool { return term.AltScreenEntered })
	if !term.AltScreenEntered || !term.MouseEnabled {
		t.Fatalf("Start() did not enter alt screen / enable mouse: %+v", term)
	}

	r.Stop()
	waitForRendererFlag(t, func() bool { return !term.MouseEnabled })
	if term.MouseEnabled {
		t.Fatalf("Stop() did not disable mouse")
	}
}

func TestRendererRenderDrawsBody(t *testing.T) {
	term := backend.NewFake(80, 24)
	r := NewRenderer(term)
	rt := runtime.New()
	rt.Install(r)
	defer r.End()

	r.Render(Data{
		Title: true,
		Body: []ViewLine{
			NewViewLine(Segment{Text: "pick abc1234 one"}),
			NewViewLine(Segment{Text: "pick def5678 two"}),
		},
	}, Visibility{})

	waitForRendererFlag(t, func() bool { return term.FlushCount > 0 })
	if term.FlushCount == 0 {
		t.Fatalf("renderer never flushed")
	}
}

func waitForRendererFlag(t *testing.T, cond func() bool) {
	t.Helper()
	for i := 0; i < 500; i++ {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition never became true")
}
