package backend

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Terminal implements Capability using tcell.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
	col    int
	row    int
	style  tcell.Style
}

// NewTerminal opens and initialises a tcell screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &Terminal{screen: screen, style: tcell.StyleDefault}, nil
}

func (t *Terminal) EnterAltScreen() error {
	// tcell always owns the alternate screen once Init() succeeds; there
	// is no separate enter call, but returning nil keeps call sites
	// symmetric with LeaveAltScreen's Fini().
	return nil
}

func (t *Terminal) LeaveAltScreen() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
	return nil
}

func (t *Terminal) EnableRawMode() error  { return nil } // tcell.Init() already sets raw mode.
func (t *Terminal) DisableRawMode() error { return nil }

func (t *Terminal) HideCursor() { t.screen.HideCursor() }
func (t *Terminal) ShowCursor() { t.screen.ShowCursor(t.col, t.row) }

func (t *Terminal) EnableMouse()  { t.screen.EnableMouse() }
func (t *Terminal) DisableMouse() { t.screen.DisableMouse() }

func (t *Terminal) MoveTo(col, row int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.col, t.row = col, row
}

func (t *Terminal) NextLine() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.col = 0
	t.row++
}

func (t *Terminal) SetStyle(s Style) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.style = convertStyle(s)
}

func (t *Terminal) Print(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	col := t.col
	for _, r := range s {
		t.screen.SetContent(col, t.row, r, nil, t.style)
		col++
	}
	t.col = col
}

func (t *Terminal) Flush() error {
	t.screen.Show()
	return nil
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *Terminal) PollEvent(timeoutMillis int) Event {
	ch := make(chan tcell.Event, 1)
	go func() { ch <- t.screen.PollEvent() }()
	select {
	case ev := <-ch:
		return convertEvent(ev)
	case <-time.After(time.Duration(timeoutMillis) * time.Millisecond):
		return Event{Type: EventNone}
	}
}

func convertStyle(s Style) tcell.Style {
	style := tcell.StyleDefault
	if !s.FG.Transparent {
		style = style.Foreground(tcell.NewRGBColor(int32(s.FG.R), int32(s.FG.G), int32(s.FG.B)))
	}
	if !s.BG.Transparent {
		style = style.Background(tcell.NewRGBColor(int32(s.BG.R), int32(s.BG.G), int32(s.BG.B)))
	}
	if s.Dim {
		style = style.Dim(true)
	}
	if s.Underline {
		style = style.Underline(true)
	}
	if s.Reverse {
		style = style.Reverse(true)
	}
	return style
}

func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{Type: EventKey, Key: mapKey(e.Key()), Rune: e.Rune(), Mod: mapMod(e.Modifiers())}
	case *tcell.EventMouse:
		x, y := e.Position()
		action := MouseNone
		switch e.Buttons() {
		case tcell.WheelUp:
			action = MouseWheelUp
		case tcell.WheelDown:
			action = MouseWheelDown
		case tcell.Button1:
			action = MouseLeftClick
		}
		return Event{Type: EventMouse, Mouse: action, MouseX: x, MouseY: y}
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	default:
		return Event{Type: EventNone}
	}
}

func mapMod(m tcell.ModMask) ModMask {
	out := ModNone
	if m&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= ModAlt
	}
	if m&tcell.ModShift != 0 {
		out |= ModShift
	}
	return out
}

func mapKey(k tcell.Key) Key {
	switch k {
	case tcell.KeyRune:
		return KeyRune
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	case tcell.KeyBacktab:
		return KeyBackTab
	case tcell.KeyDelete:
		return KeyDelete
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyEnd:
		return KeyEnd
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyEsc:
		return KeyEsc
	case tcell.KeyHome:
		return KeyHome
	case tcell.KeyInsert:
		return KeyInsert
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyPgDn:
		return KeyPageDown
	case tcell.KeyPgUp:
		return KeyPageUp
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyTab:
		return KeyTab
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyF1:
		return KeyF1
	default:
		return KeyNone
	}
}
