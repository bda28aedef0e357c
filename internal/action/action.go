// Package action defines the typed rebase-todo action vocabulary.
package action

import "strings"

// Action identifies the kind of operation a rebase-todo line performs.
type Action int

const (
	Pick Action = iota
	Reword
	Edit
	Squash
	Fixup
	Drop
	Exec
	Break
	Label
	Reset
	Merge
	UpdateRef
	Noop
)

// String returns the canonical, lower-case action keyword.
func (a Action) String() string {
	switch a {
	case Pick:
		return "pick"
	case Reword:
		return "reword"
	case Edit:
		return "edit"
	case Squash:
		return "squash"
	case Fixup:
		return "fixup"
	case Drop:
		return "drop"
	case Exec:
		return "exec"
	case Break:
		return "break"
	case Label:
		return "label"
	case Reset:
		return "reset"
	case Merge:
		return "merge"
	case UpdateRef:
		return "update-ref"
	case Noop:
		return "noop"
	default:
		return "unknown"
	}
}

// Letter returns the single-letter alias used in compact rendering.
func (a Action) Letter() string {
	switch a {
	case Pick:
		return "p"
	case Reword:
		return "r"
	case Edit:
		return "e"
	case Squash:
		return "s"
	case Fixup:
		return "f"
	case Drop:
		return "d"
	case Exec:
		return "x"
	case Break:
		return "b"
	case Label:
		return "l"
	case Reset:
		return "t"
	case Merge:
		return "m"
	case UpdateRef:
		return "u"
	case Noop:
		return "n"
	default:
		return "?"
	}
}

// CommitBearing reports whether the action carries a commit hash.
func (a Action) CommitBearing() bool {
	switch a {
	case Pick, Reword, Edit, Squash, Fixup, Drop:
		return true
	default:
		return false
	}
}

// ContentBearing reports whether the action carries a non-empty content
// string (shell command, reference name) rather than a commit hash.
func (a Action) ContentBearing() bool {
	switch a {
	case Exec, Label, Reset, Merge, UpdateRef:
		return true
	default:
		return false
	}
}

// aliases maps every recognized token (full name or one-letter alias),
// case-insensitively, to its Action.
var aliases = map[string]Action{
	"pick": Pick, "p": Pick,
	"reword": Reword, "r": Reword,
	"edit": Edit, "e": Edit,
	"squash": Squash, "s": Squash,
	"fixup": Fixup, "f": Fixup,
	"drop": Drop, "d": Drop,
	"exec": Exec, "x": Exec,
	"break": Break, "b": Break,
	"label": Label, "l": Label,
	"reset": Reset, "t": Reset,
	"merge": Merge, "m": Merge,
	"update-ref": UpdateRef, "u": UpdateRef,
	"noop": Noop, "n": Noop,
}

// Parse resolves a token (full name or one-letter alias) to an Action.
// The second return value is false when the token is not recognized.
func Parse(token string) (Action, bool) {
	a, ok := aliases[strings.ToLower(token)]
	return a, ok
}

// Modifier is the fixup-specific message-handling flag.
type Modifier int

const (
	NoModifier Modifier = iota
	// KeepMessage corresponds to "-C": keep the squashed-in commit's message.
	KeepMessage
	// KeepMessageEditor corresponds to "-c": keep the message but reopen it
	// in an editor.
	KeepMessageEditor
)

// String renders the modifier as it appears on disk, or "" when absent.
func (m Modifier) String() string {
	switch m {
	case KeepMessage:
		return "-C"
	case KeepMessageEditor:
		return "-c"
	default:
		return ""
	}
}
