package config

import (
	"testing"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/backend"
)

func TestParseBindingListSimple(t *testing.T) {
	bindings, err := ParseBindingList("k", "j Down")
	if err != nil {
		t.Fatalf("ParseBindingList error: %v", err)
	}
	if len(bindings) != 2 {
		t.Fatalf("len(bindings) = %d, want 2", len(bindings))
	}
	if bindings[0].Key != backend.KeyRune || bindings[0].Rune != 'j' {
		t.Fatalf("bindings[0] = %+v", bindings[0])
	}
	if bindings[1].Key != backend.KeyDown {
		t.Fatalf("bindings[1] = %+v", bindings[1])
	}
}

func TestParseBindingShiftUppercasesAndDropsModifier(t *testing.T) {
	b, err := parseDescriptor("Shift+j")
	if err != nil {
		t.Fatalf("parseDescriptor error: %v", err)
	}
	if b.Rune != 'J' || b.Mod.Has(backend.ModShift) {
		t.Fatalf("parseDescriptor(Shift+j) = %+v", b)
	}
}

func TestParseBindingControlModifier(t *testing.T) {
	b, err := parseDescriptor("Control+Alt+x")
	if err != nil {
		t.Fatalf("parseDescriptor error: %v", err)
	}
	if !b.Mod.Has(backend.ModCtrl) || !b.Mod.Has(backend.ModAlt) || b.Rune != 'x' {
		t.Fatalf("parseDescriptor(Control+Alt+x) = %+v", b)
	}
}

func TestParseBindingFunctionKey(t *testing.T) {
	b, err := parseDescriptor("F5")
	if err != nil {
		t.Fatalf("parseDescriptor(F5) error: %v", err)
	}
	if b.Key != backend.KeyF1+4 {
		t.Fatalf("parseDescriptor(F5).Key = %v", b.Key)
	}
}

func TestParseBindingUnrecognizedModifier(t *testing.T) {
	if _, err := parseDescriptor("Meta+x"); err == nil {
		t.Fatal("expected error for unrecognized modifier")
	}
}

func TestParseBindingListInvalidSurfacesConfigError(t *testing.T) {
	_, err := ParseBindingList("interactive-rebase-tool.inputMoveUp", "notasinglekey")
	if err == nil {
		t.Fatal("expected error")
	}
	var cfgErr *Error
	if !asError(err, &cfgErr) {
		t.Fatalf("expected *config.Error, got %T", err)
	}
	if cfgErr.Key != "interactive-rebase-tool.inputMoveUp" {
		t.Fatalf("cfgErr.Key = %q", cfgErr.Key)
	}
}

func asError(err error, target **Error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	*target = e
	return true
}
