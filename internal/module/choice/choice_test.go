package choice

import "testing"

func TestSelectMatchesCaseInsensitively(t *testing.T) {
	m := New([]Option{{Key: 'y', Value: "yes", Label: "(y)es"}, {Key: 'n', Value: "no", Label: "(n)o"}})
	v, ok := m.Select('Y')
	if !ok || v != "yes" {
		t.Fatalf("Select('Y') = %q, %v", v, ok)
	}
	if m.Invalid() {
		t.Fatal("Invalid() should be false after a match")
	}
}

func TestSelectUnmappedSetsInvalid(t *testing.T) {
	m := New([]Option{{Key: 'y', Value: "yes"}})
	if _, ok := m.Select('z'); ok {
		t.Fatal("Select('z') should not match")
	}
	if !m.Invalid() {
		t.Fatal("Invalid() should be true after an unmapped key")
	}
}
