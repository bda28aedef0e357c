package config

import "testing"

func TestBuildAppliesDefaults(t *testing.T) {
	s, err := build(defaultValues())
	if err != nil {
		t.Fatalf("build() error: %v", err)
	}
	if s.CommentChar != "#" {
		t.Fatalf("CommentChar = %q, want #", s.CommentChar)
	}
	if s.UndoLimit != 5000 {
		t.Fatalf("UndoLimit = %d, want 5000", s.UndoLimit)
	}
	if s.DiffIgnoreWhitespace != "none" {
		t.Fatalf("DiffIgnoreWhitespace = %q, want none", s.DiffIgnoreWhitespace)
	}
}

func TestBuildRejectsInvalidEnum(t *testing.T) {
	merged := defaultValues()
	merged["interactive-rebase-tool.diffIgnoreWhitespace"] = "bogus"
	if _, err := build(merged); err == nil {
		t.Fatal("expected ConfigError for invalid enum value")
	}
}

func TestBuildRejectsInvalidUint(t *testing.T) {
	merged := defaultValues()
	merged["interactive-rebase-tool.undoLimit"] = "-1"
	if _, err := build(merged); err == nil {
		t.Fatal("expected ConfigError for negative undoLimit")
	}
}

func TestBuildParsesColours(t *testing.T) {
	merged := defaultValues()
	merged["interactive-rebase-tool.actionPickColor"] = "10,20,30"
	s, err := build(merged)
	if err != nil {
		t.Fatalf("build() error: %v", err)
	}
	c := s.Colours["actionPickColor"]
	if c.R != 10 || c.G != 20 || c.B != 30 {
		t.Fatalf("Colours[actionPickColor] = %+v", c)
	}
}

func TestBuildDetectsBindingConflict(t *testing.T) {
	merged := defaultValues()
	merged["interactive-rebase-tool.inputMoveUp"] = "j"
	merged["interactive-rebase-tool.inputMoveDown"] = "j"
	if _, err := build(merged); err == nil {
		t.Fatal("expected ConfigError for conflicting bindings")
	}
}

func TestScopeLayerMapping(t *testing.T) {
	cases := map[string]string{"system": "system", "global": "global", "worktree": "worktree", "local": "local", "command": "local"}
	for scope, want := range cases {
		src, _ := scopeLayer(scope)
		if src.String() != want {
			t.Fatalf("scopeLayer(%q) = %v, want %v", scope, src, want)
		}
	}
}
