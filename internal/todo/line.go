// Package todo implements the rebase-todo document model: a mutable
// sequence of action lines with range selection, move semantics, and a
// bounded two-stack undo/redo history.
package todo

import (
	"fmt"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/action"
)

// Line is one row of the rebase plan.
type Line struct {
	Action   action.Action
	Hash     string
	Content  string
	Modifier action.Modifier

	// Selected is true while the user's current range selection covers
	// this line. It is recomputed from the document's cursor/anchor on
	// every access, never stored across document mutations.
	Selected bool

	// Duplicate is true when another line in the document shares this
	// line's hash. Recomputed whenever the document's line set changes.
	Duplicate bool

	// Mutated is true once the line differs from the form it had when
	// the document was loaded from disk.
	Mutated bool
}

// NewCommitLine builds a commit-bearing action line (pick/reword/edit/
// squash/fixup/drop).
func NewCommitLine(a action.Action, hash, subject string) Line {
	return Line{Action: a, Hash: hash, Content: subject}
}

// NewContentLine builds a content-bearing action line (exec/label/reset/
// merge/update-ref).
func NewContentLine(a action.Action, content string) Line {
	return Line{Action: a, Content: content}
}

// NewBareLine builds a break or noop line.
func NewBareLine(a action.Action) Line {
	return Line{Action: a}
}

// Clone returns a deep copy (Line has no reference fields, but Clone keeps
// call sites future-proof and documents the copy-on-write intent of the
// history stack).
func (l Line) Clone() Line {
	return l
}

// Valid checks the action-line invariants from spec.md §3.
func (l Line) Valid() error {
	switch {
	case l.Action == action.Break || l.Action == action.Noop:
		if l.Hash != "" || l.Content != "" {
			return fmt.Errorf("%s line must have empty hash and content", l.Action)
		}
	case l.Action.ContentBearing():
		if l.Hash != "" {
			return fmt.Errorf("%s line must have empty hash", l.Action)
		}
		if l.Content == "" {
			return fmt.Errorf("%s line must have non-empty content", l.Action)
		}
	case l.Action.CommitBearing():
		if l.Hash == "" {
			return fmt.Errorf("%s line must have a hash", l.Action)
		}
	}
	if l.Modifier != action.NoModifier && l.Action != action.Fixup {
		return fmt.Errorf("only fixup lines may carry a modifier")
	}
	return nil
}

// ToLine renders the canonical on-disk form: "ACTION [MODIFIER] [HASH]
// [CONTENT]" with single-space separators.
func (l Line) ToLine() string {
	parts := []string{l.Action.String()}
	if l.Modifier != action.NoModifier {
		parts = append(parts, l.Modifier.String())
	}
	if l.Hash != "" {
		parts = append(parts, l.Hash)
	}
	if l.Content != "" {
		parts = append(parts, l.Content)
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += " " + p
	}
	return out
}
