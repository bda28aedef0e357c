package editableline

import "testing"

func TestInsertAndCursor(t *testing.T) {
	l := New("")
	l.InsertRune('a')
	l.InsertRune('b')
	if l.String() != "ab" {
		t.Fatalf("String() = %q", l.String())
	}
	if l.CursorByteOffset() != 2 {
		t.Fatalf("CursorByteOffset() = %d, want 2", l.CursorByteOffset())
	}
}

func TestBackspace(t *testing.T) {
	l := New("abc")
	l.Backspace()
	if l.String() != "ab" {
		t.Fatalf("String() = %q", l.String())
	}
}

func TestMoveLeftRightHomeEnd(t *testing.T) {
	l := New("abc")
	l.MoveHome()
	if l.CursorByteOffset() != 0 {
		t.Fatalf("after MoveHome, offset = %d", l.CursorByteOffset())
	}
	l.MoveRight()
	l.MoveRight()
	if l.CursorByteOffset() != 2 {
		t.Fatalf("after 2x MoveRight, offset = %d", l.CursorByteOffset())
	}
	l.MoveEnd()
	if l.CursorByteOffset() != 3 {
		t.Fatalf("after MoveEnd, offset = %d", l.CursorByteOffset())
	}
	l.MoveLeft()
	l.Delete()
	if l.String() != "ab" {
		t.Fatalf("after Delete at offset 2, String() = %q", l.String())
	}
}

func TestGraphemeClusterBoundary(t *testing.T) {
	// family emoji: one grapheme cluster, several runes.
	family := "\U0001F468‍\U0001F469‍\U0001F467"
	l := New(family)
	l.Backspace()
	if l.String() != "" {
		t.Fatalf("Backspace over one grapheme cluster left %q", l.String())
	}
}
