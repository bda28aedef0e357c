package backend

// Fake is an in-memory Capability implementation for tests, grounded on
// the teacher's NullBackend (internal/renderer/backend/backend.go).
type Fake struct {
	Width, Height    int
	Events           []Event
	eventIdx         int
	Printed          []string
	col, row         int
	style            Style
	CursorVisible    bool
	AltScreenEntered bool
	RawModeEnabled   bool
	MouseEnabled     bool
	FlushCount       int
}

// NewFake builds a fake terminal of the given size with a queued event
// script.
func NewFake(width, height int, events ...Event) *Fake {
	return &Fake{Width: width, Height: height, Events: events}
}

func (f *Fake) EnterAltScreen() error  { f.AltScreenEntered = true; return nil }
func (f *Fake) LeaveAltScreen() error  { f.AltScreenEntered = false; return nil }
func (f *Fake) EnableRawMode() error   { f.RawModeEnabled = true; return nil }
func (f *Fake) DisableRawMode() error  { f.RawModeEnabled = false; return nil }
func (f *Fake) HideCursor()            { f.CursorVisible = false }
func (f *Fake) ShowCursor()            { f.CursorVisible = true }
func (f *Fake) EnableMouse()           { f.MouseEnabled = true }
func (f *Fake) DisableMouse()          { f.MouseEnabled = false }
func (f *Fake) MoveTo(col, row int)    { f.col, f.row = col, row }
func (f *Fake) NextLine()              { f.col, f.row = 0, f.row+1 }
func (f *Fake) SetStyle(s Style)       { f.style = s }
func (f *Fake) Print(s string)         { f.Printed = append(f.Printed, s) }
func (f *Fake) Flush() error           { f.FlushCount++; return nil }
func (f *Fake) Size() (int, int)       { return f.Width, f.Height }

func (f *Fake) PollEvent(_ int) Event {
	if f.eventIdx >= len(f.Events) {
		return Event{Type: EventNone}
	}
	ev := f.Events[f.eventIdx]
	f.eventIdx++
	return ev
}
