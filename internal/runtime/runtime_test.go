package runtime

import (
	"testing"
	"time"
)

type fakeThread struct {
	paused, resumed, ended int
}

func (f *fakeThread) Install(ins *Installer) { ins.Register("fake") }
func (f *fakeThread) Pause()                 { f.paused++ }
func (f *fakeThread) Resume()                { f.resumed++ }
func (f *fakeThread) End()                   { f.ended++ }

func TestRuntimeFanOut(t *testing.T) {
	rt := New()
	th := &fakeThread{}
	rt.Install(th)

	rt.PauseAll()
	rt.ResumeAll()
	rt.EndAll()

	if th.paused != 1 || th.resumed != 1 || th.ended != 1 {
		t.Fatalf("unexpected fan-out counts: %+v", th)
	}
}

func TestStatusTableErrorTerminal(t *testing.T) {
	tbl := NewStatusTable()
	tbl.Register("t")
	tbl.Set("t", StatusError, "boom")
	tbl.Set("t", StatusBusy, "")
	got, _ := tbl.Get("t")
	if got != StatusError {
		t.Fatalf("status = %v, want Error (terminal)", got)
	}
}

func TestStatusTableAllEnded(t *testing.T) {
	tbl := NewStatusTable()
	tbl.Register("a")
	tbl.Register("b")
	if tbl.AllEnded() {
		t.Fatal("should not be all-ended yet")
	}
	tbl.Set("a", StatusEnded, "")
	tbl.Set("b", StatusError, "x")
	if !tbl.AllEnded() {
		t.Fatal("should be all-ended (Ended+Error)")
	}
}

func TestWaitForStatusTimeout(t *testing.T) {
	tbl := NewStatusTable()
	tbl.Register("t")
	err := tbl.WaitForStatus("t", StatusEnded, time.Millisecond, 3)
	if err != ErrThreadWaitTimeout {
		t.Fatalf("err = %v, want ErrThreadWaitTimeout", err)
	}
}

func TestWaitForStatusUnregistered(t *testing.T) {
	tbl := NewStatusTable()
	err := tbl.WaitForStatus("nope", StatusEnded, time.Millisecond, 1)
	if err != ErrThreadNotRegistered {
		t.Fatalf("err = %v, want ErrThreadNotRegistered", err)
	}
}

func TestRegisterTwicePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on double-register")
		}
	}()
	tbl := NewStatusTable()
	tbl.Register("dup")
	tbl.Register("dup")
}
