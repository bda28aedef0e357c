package vcs

import "testing"

const sampleDiff = `diff --git a/foo.go b/foo.go
index 111..222 100644
--- a/foo.go
+++ b/foo.go
@@ -1,3 +1,4 @@
 package foo
+// added
 func Foo() {}

`

func TestParseDiff(t *testing.T) {
	files := parseDiff(sampleDiff)
	if len(files) != 1 {
		t.Fatalf("len(files) = %d, want 1", len(files))
	}
	f := files[0]
	if f.SourcePath != "foo.go" || f.DestinationPath != "foo.go" {
		t.Fatalf("paths = %q/%q", f.SourcePath, f.DestinationPath)
	}
	if f.Status != StatusModified {
		t.Fatalf("status = %v, want Modified", f.Status)
	}
	if len(f.Deltas) != 1 {
		t.Fatalf("len(Deltas) = %d, want 1", len(f.Deltas))
	}
	d := f.Deltas[0]
	if d.OldStart != 1 || d.OldLines != 3 || d.NewStart != 1 || d.NewLines != 4 {
		t.Fatalf("hunk header parsed wrong: %+v", d)
	}

	var additions int
	for _, l := range d.Lines {
		if l.Origin == OriginAddition {
			additions++
		}
	}
	if additions != 1 {
		t.Fatalf("additions = %d, want 1", additions)
	}
}

func TestParseDiffEmpty(t *testing.T) {
	if files := parseDiff(""); len(files) != 0 {
		t.Fatalf("expected no files for empty diff, got %d", len(files))
	}
}

func TestParseCommit(t *testing.T) {
	out := "abc123\x1fJane Doe\x1fjane@example.com\x1f1700000000\x1fJohn Roe\x1fjohn@example.com\x1f1700000100\x1fFix bug\x1fFix bug\n\nLonger body.\n"
	c, err := parseCommit(out)
	if err != nil {
		t.Fatal(err)
	}
	if c.Hash != "abc123" {
		t.Fatalf("Hash = %q", c.Hash)
	}
	if c.Author.String() != "Jane Doe <jane@example.com>" {
		t.Fatalf("Author.String() = %q", c.Author.String())
	}
	if c.Summary == nil || *c.Summary != "Fix bug" {
		t.Fatalf("Summary = %v", c.Summary)
	}
}
