package backend

import "testing"

func TestFakePollEventExhaustion(t *testing.T) {
	f := NewFake(80, 24, Event{Type: EventKey, Key: KeyRune, Rune: 'a'})
	first := f.PollEvent(0)
	if first.Type != EventKey || first.Rune != 'a' {
		t.Fatalf("unexpected first event: %+v", first)
	}
	second := f.PollEvent(0)
	if second.Type != EventNone {
		t.Fatalf("expected EventNone after exhaustion, got %+v", second)
	}
}

func TestFakeSize(t *testing.T) {
	f := NewFake(40, 10)
	w, h := f.Size()
	if w != 40 || h != 10 {
		t.Fatalf("Size() = %d,%d want 40,10", w, h)
	}
}
