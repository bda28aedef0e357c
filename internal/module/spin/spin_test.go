package spin

import "testing"

func TestAdvanceCycles(t *testing.T) {
	s := New()
	first := s.Current()
	seen := map[rune]bool{first: true}
	for i := 0; i < len(frames); i++ {
		seen[s.Advance()] = true
	}
	if len(seen) != len(frames) {
		t.Fatalf("seen %d distinct frames, want %d", len(seen), len(frames))
	}
}

func TestResetReturnsToFirstFrame(t *testing.T) {
	s := New()
	s.Advance()
	s.Advance()
	s.Reset()
	if s.Current() != frames[0] {
		t.Fatalf("Current() after Reset = %q, want %q", s.Current(), frames[0])
	}
}
