package process

import (
	"os"
	"testing"
	"time"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/action"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/backend"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/config"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/events"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/todo"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/vcs"
)

type fakeRepo struct{}

func (fakeRepo) ResolveReference(string) (*vcs.Commit, error) { return nil, nil }
func (fakeRepo) GetCommit(hash string) (*vcs.Commit, error)   { return &vcs.Commit{Hash: hash}, nil }
func (fakeRepo) DiffCommit(string, vcs.DiffOptions) (*vcs.CommitDiff, error) {
	return &vcs.CommitDiff{}, nil
}

func newDoc(t *testing.T, lines ...todo.Line) *todo.Document {
	t.Helper()
	dir := t.TempDir()
	d := todo.New(dir+"/git-rebase-todo", "#", 10)
	d.Load(lines)
	return d
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition never became true")
}

// runAsync starts o.Run on its own goroutine and returns a channel that
// receives the exit status once the loop finishes, mirroring how
// cmd/git-interactive-rebase-tool drives a live Orchestrator.
func runAsync(o *Orchestrator) <-chan events.ExitStatus {
	done := make(chan events.ExitStatus, 1)
	go func() { done <- o.Run() }()
	return done
}

func TestForceRebaseExitsGoodAndPersists(t *testing.T) {
	doc := newDoc(t, todo.NewCommitLine(action.Pick, "a1", "one"))
	term := backend.NewFake(80, 24, backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'W'})
	o := New(term, &config.Settings{}, doc, fakeRepo{}, nil)

	done := runAsync(o)
	select {
	case status := <-done:
		if status != events.Good {
			t.Fatalf("status = %v, want Good", status)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return")
	}
	written, err := os.ReadFile(doc.Path)
	if err != nil {
		t.Fatalf("todo file not persisted: %v", err)
	}
	if string(written) != "pick a1 one\n" {
		t.Fatalf("persisted todo = %q, want %q", written, "pick a1 one\n")
	}
}

func TestWindowTooSmallTransitionsToErrorModule(t *testing.T) {
	doc := newDoc(t, todo.NewCommitLine(action.Pick, "a1", "one"))
	term := backend.NewFake(5, 3)
	o := New(term, &config.Settings{}, doc, fakeRepo{}, nil)

	go o.Run()
	t.Cleanup(func() { o.rt.EndAll() })

	waitFor(t, func() bool { return o.state == events.StateWindowSizeError })
}

func TestHelpKeyLabelFormatsBinding(t *testing.T) {
	settings := &config.Settings{Bindings: map[string][]config.Binding{
		"help": {{Key: backend.KeyRune, Rune: 'h'}},
	}}
	doc := newDoc(t, todo.NewBareLine(action.Noop))
	term := backend.NewFake(80, 24)
	o := New(term, settings, doc, fakeRepo{}, nil)

	if got := o.helpKeyLabel(); got != "h" {
		t.Fatalf("helpKeyLabel() = %q, want %q", got, "h")
	}
}

func TestFormatBindingNamedAndModified(t *testing.T) {
	cases := []struct {
		b    config.Binding
		want string
	}{
		{config.Binding{Key: backend.KeyEsc}, "Esc"},
		{config.Binding{Mod: backend.ModCtrl, Key: backend.KeyRune, Rune: 'c'}, "Control+c"},
		{config.Binding{Key: backend.KeyF1 + 2}, "F3"},
	}
	for _, c := range cases {
		if got := formatBinding(c.b); got != c.want {
			t.Fatalf("formatBinding(%+v) = %q, want %q", c.b, got, c.want)
		}
	}
}

func TestDiffOptionsFromSettingsAppliesOverrides(t *testing.T) {
	settings := &config.Settings{
		DiffContextLines:      7,
		DiffInterhunkLines:    2,
		DiffRenames:           "copy",
		DiffRenameLimit:       500,
		DiffIgnoreWhitespace:  "all",
	}
	opts := diffOptionsFromSettings(settings)
	if opts.ContextLines != 7 || opts.InterhunkContext != 2 || opts.RenameLimit != 500 {
		t.Fatalf("opts = %+v", opts)
	}
	if !opts.DetectRenames || !opts.DetectCopies {
		t.Fatalf("opts = %+v, want renames+copies detected", opts)
	}
	if opts.IgnoreWhitespace != vcs.IgnoreWhitespaceAll {
		t.Fatalf("IgnoreWhitespace = %v, want IgnoreWhitespaceAll", opts.IgnoreWhitespace)
	}
}

func TestDiffOptionsFromNilSettingsReturnsDefaults(t *testing.T) {
	if got := diffOptionsFromSettings(nil); got != vcs.DefaultDiffOptions() {
		t.Fatalf("diffOptionsFromSettings(nil) = %+v, want defaults", got)
	}
}
