// Package events defines the typed event and artifact vocabulary that
// flows between the input thread, the active module, and the process
// loop (spec.md §3, "Events and artifacts").
package events

// StandardEvent is the closed set of abstract, module-level events a
// key press or mouse action can be translated into.
type StandardEvent int

const (
	StandardNone StandardEvent = iota
	Abort
	ForceAbort
	Rebase
	ForceRebase
	ActionBreak
	ActionDrop
	ActionEdit
	ActionFixup
	ActionPick
	ActionReword
	ActionSquash
	MoveCursorUp
	MoveCursorDown
	MoveCursorLeft
	MoveCursorRight
	MoveCursorHome
	MoveCursorEnd
	MoveCursorPageUp
	MoveCursorPageDown
	ScrollUp
	ScrollDown
	ScrollLeft
	ScrollRight
	ScrollTop
	ScrollBottom
	Delete
	Edit
	OpenInEditor
	ShowCommit
	ShowDiff
	SwapDown
	SwapUp
	ToggleVisualMode
	InsertLine
	Help
	SearchStart
	SearchNext
	SearchPrevious
	SearchFinish
	SearchCancel
	SearchUpdate
	Yes
	No
	ExternalCommandSuccess
	ExternalCommandError
	Exit
	Kill
	Undo
	Redo
	FixupKeepMessage
	FixupKeepMessageWithEditor
	// Acknowledge is "any key" dismissing a modal module (Error, Help,
	// WindowSizeError once the window is acceptable again).
	Acknowledge
	// Commit and CancelInput are enter/escape on an editableline-backed
	// input step (Insert's content step, Edit, SearchBar's editing
	// sub-state).
	Commit
	CancelInput
)

// KeyModifier is a bitmask of held modifier keys.
type KeyModifier int

const (
	ModNone KeyModifier = 0
	ModCtrl KeyModifier = 1 << iota
	ModAlt
	ModShift
)

// Has reports whether m includes flag.
func (m KeyModifier) Has(flag KeyModifier) bool { return m&flag != 0 }

// KeyCode identifies a physical or virtual key.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyChar         // use Rune
	KeyBackspace
	KeyBackTab
	KeyDelete
	KeyDown
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeyInsert
	KeyLeft
	KeyPageDown
	KeyPageUp
	KeyRight
	KeyTab
	KeyUp
	KeyF1
)

// MouseAction identifies a mouse interaction kind.
type MouseAction int

const (
	MouseNone MouseAction = iota
	MouseScrollUp
	MouseScrollDown
	MouseLeftClick
)

// Kind discriminates the Event union.
type Kind int

const (
	KindEmpty Kind = iota
	KindKey
	KindMouse
	KindResize
	KindStandard
)

// Event is one item the input thread enqueues, or a module translates a
// raw key/mouse event into via read_event.
type Event struct {
	Kind Kind

	// Key fields.
	Code KeyCode
	Rune rune
	Mod  KeyModifier

	// Mouse fields.
	Mouse MouseAction

	// Resize fields.
	Width, Height int

	// Standard fields.
	Standard StandardEvent
}

// Empty is the "no event" sentinel returned when the input queue has
// nothing to deliver.
var Empty = Event{Kind: KindEmpty}

// NewKey builds a key event, normalising Shift into an uppercase Char per
// spec.md §9 ("Key normalisation"): a Char(c) with Shift held is
// uppercased and Shift is dropped from the modifier set.
func NewKey(code KeyCode, r rune, mod KeyModifier) Event {
	if code == KeyChar && mod.Has(ModShift) {
		r = toUpper(r)
		mod &^= ModShift
	}
	return Event{Kind: KindKey, Code: code, Rune: r, Mod: mod}
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// NewResize builds a resize event.
func NewResize(w, h int) Event { return Event{Kind: KindResize, Width: w, Height: h} }

// NewStandard builds a standard-event wrapper.
func NewStandard(s StandardEvent) Event { return Event{Kind: KindStandard, Standard: s} }
