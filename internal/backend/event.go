// Package backend is the terminal capability interface (spec.md §6):
// draw bytes, read one input event, query size, enter/leave the
// alternate screen. Grounded on the teacher's internal/renderer/backend
// package, which wraps the same gdamore/tcell screen.
package backend

// EventType identifies the kind of raw terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
)

// Key identifies a physical/virtual key reported by the terminal.
type Key int

const (
	KeyNone Key = iota
	KeyRune
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

// ModMask is a bitmask of held modifier keys.
type ModMask int

const (
	ModNone ModMask = 0
	ModCtrl ModMask = 1 << iota
	ModAlt
	ModShift
)

// Has reports whether m includes flag.
func (m ModMask) Has(flag ModMask) bool { return m&flag != 0 }

// MouseAction identifies a mouse interaction.
type MouseAction int

const (
	MouseNone MouseAction = iota
	MouseWheelUp
	MouseWheelDown
	MouseLeftClick
)

// Event is a single raw terminal event, as read by PollEvent.
type Event struct {
	Type EventType

	Key  Key
	Rune rune
	Mod  ModMask

	Mouse  MouseAction
	MouseX int
	MouseY int

	Width, Height int
}
