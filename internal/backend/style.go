package backend

// Colour is either a named/RGB terminal colour or transparent, matching
// the colour config keys in spec.md §6.
type Colour struct {
	// Transparent, when true, means "use the terminal default".
	Transparent bool
	R, G, B     uint8
}

// Style is the set of text attributes one cell or segment can carry.
type Style struct {
	FG        Colour
	BG        Colour
	Dim       bool
	Underline bool
	Reverse   bool
}

// Capability is the terminal surface the view subsystem draws through
// (spec.md §6). Implementations must support: enter/leave alternate
// screen; raw mode; cursor visibility; mouse capture; cursor movement;
// colour + attribute setting; printing; flushing; size queries; and
// polling one input event with a short timeout.
type Capability interface {
	EnterAltScreen() error
	LeaveAltScreen() error
	EnableRawMode() error
	DisableRawMode() error
	HideCursor()
	ShowCursor()
	EnableMouse()
	DisableMouse()

	MoveTo(col, row int)
	NextLine()
	SetStyle(s Style)
	Print(s string)
	Flush() error

	Size() (width, height int)

	// PollEvent blocks for at most timeout waiting for one input event,
	// returning an EventNone-typed Event on timeout.
	PollEvent(timeoutMillis int) Event
}
