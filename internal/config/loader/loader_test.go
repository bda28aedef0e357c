package loader

import (
	"os"
	"testing"
)

func TestParseShowOrigin(t *testing.T) {
	raw := "file:/etc/gitconfig\x00core.editor\nvim\x00" +
		"file:/home/user/.gitconfig\x00user.name\nAlice\x00" +
		"file:.git/config\x00core.commentChar\n#\x00"
	entries := parseShowOrigin(raw)
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	if entries[0].Scope != "system" || entries[0].Key != "core.editor" || entries[0].Value != "vim" {
		t.Fatalf("entries[0] = %+v", entries[0])
	}
	if entries[1].Scope != "global" || entries[1].Key != "user.name" || entries[1].Value != "Alice" {
		t.Fatalf("entries[1] = %+v", entries[1])
	}
	if entries[2].Scope != "local" || entries[2].Key != "core.commentChar" || entries[2].Value != "#" {
		t.Fatalf("entries[2] = %+v", entries[2])
	}
}

func TestParseShowOriginEmpty(t *testing.T) {
	if got := parseShowOrigin(""); got != nil {
		t.Fatalf("parseShowOrigin(\"\") = %v, want nil", got)
	}
}

func TestEditorFromEnvPrefersVisual(t *testing.T) {
	t.Setenv("VISUAL", "nvim")
	t.Setenv("EDITOR", "vim")
	got, ok := EditorFromEnv()
	if !ok || got != "nvim" {
		t.Fatalf("EditorFromEnv() = %q,%v want nvim,true", got, ok)
	}
}

func TestEditorFromEnvFallsBackToEditor(t *testing.T) {
	os.Unsetenv("VISUAL")
	t.Setenv("EDITOR", "vim")
	got, ok := EditorFromEnv()
	if !ok || got != "vim" {
		t.Fatalf("EditorFromEnv() = %q,%v want vim,true", got, ok)
	}
}

func TestEditorFromEnvNeitherSet(t *testing.T) {
	os.Unsetenv("VISUAL")
	os.Unsetenv("EDITOR")
	if _, ok := EditorFromEnv(); ok {
		t.Fatalf("EditorFromEnv() ok = true, want false")
	}
}
