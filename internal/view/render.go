package view

import (
	"sync"
	"time"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/backend"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/runtime"
)

// Minimum terminal dimensions the renderer will draw a normal page into,
// and the width below which the title row drops to a compact form
// (spec.md §4.3, "window too small").
const (
	MinWidth        = 21
	MinHeight       = 6
	FullWidthColumn = 34
)

// TickInterval is the render thread's capped redraw rate (spec.md §4.3).
const TickInterval = 20 * time.Millisecond

// actionKind discriminates the renderer's control-channel messages.
type actionKind int

const (
	actionRender actionKind = iota
	actionRefresh
	actionStart
	actionStop
	actionEnd
)

type action struct {
	kind actionKind
	data *Data
}

// Renderer is the view subsystem's dedicated render thread (spec.md §4.3).
// It owns the terminal, redraws at a capped tick rate, and coalesces
// back-to-back Render requests so a burst of updates only repaints once
// per tick.
type Renderer struct {
	term backend.Capability

	mu         sync.Mutex
	slice      RenderSlice
	pending    *Data
	pendingVis Visibility
	started    bool
	poisoned   bool
	lastErr    error

	notifier *runtime.Notifier
	control  chan action
	paused   bool
}

// NewRenderer builds a Renderer drawing to term.
func NewRenderer(term backend.Capability) *Renderer {
	return &Renderer{term: term, control: make(chan action, 16)}
}

// Install registers the renderer as the single "view" thread (spec.md
// §4.3: "Runs on one thread named view").
func (r *Renderer) Install(ins *runtime.Installer) {
	r.notifier = ins.Register("view")
	go r.run()
}

// Pause marks the renderer's thread paused; it stops redrawing but keeps
// draining control messages so Render calls don't block.
func (r *Renderer) Pause() {
	r.mu.Lock()
	r.paused = true
	r.mu.Unlock()
}

// Resume clears the paused flag.
func (r *Renderer) Resume() {
	r.mu.Lock()
	r.paused = false
	r.mu.Unlock()
}

// End requests the render thread exit promptly.
func (r *Renderer) End() {
	select {
	case r.control <- action{kind: actionEnd}:
	default:
	}
}

// Render enqueues page data for the next tick, along with the cell the
// module wants kept visible (spec.md §4.3's "render slice"; the module's
// build_view_data return carries this as its Visibility result). Back-to-
// back calls between ticks coalesce: only the latest Data is drawn.
func (r *Renderer) Render(data Data, vis Visibility) {
	r.mu.Lock()
	r.pending = &data
	r.pendingVis = vis
	r.mu.Unlock()
	select {
	case r.control <- action{kind: actionRender}:
	default:
	}
}

// Refresh forces a redraw of the last-rendered page, e.g. after a resize.
func (r *Renderer) Refresh() {
	select {
	case r.control <- action{kind: actionRefresh}:
	default:
	}
}

// Start enters the alternate screen, raw mode, and hides the cursor.
func (r *Renderer) Start() {
	r.control <- action{kind: actionStart}
}

// Stop leaves the alternate screen and restores the cursor.
func (r *Renderer) Stop() {
	r.control <- action{kind: actionStop}
}

// Poisoned reports whether a fatal terminal error has permanently
// disabled drawing (spec.md §4.3).
func (r *Renderer) Poisoned() (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.poisoned, r.lastErr
}

func (r *Renderer) run() {
	r.notifier.Waiting()
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	dirty := false
	for {
		select {
		case act, ok := <-r.control:
			if !ok {
				r.notifier.Ended()
				return
			}
			switch act.kind {
			case actionEnd:
				r.notifier.Ended()
				return
			case actionStart:
				r.notifier.Busy()
				r.doStart()
				r.notifier.Waiting()
			case actionStop:
				r.notifier.Busy()
				r.doStop()
				r.notifier.Waiting()
			case actionRender:
				dirty = true
			case actionRefresh:
				dirty = true
			}
		case <-ticker.C:
			if !dirty {
				continue
			}
			r.mu.Lock()
			paused := r.paused
			if r.pending != nil {
				if !r.pending.RetainScrollPosition {
					r.slice.Scroll = ScrollState{}
				}
				r.slice.Data = *r.pending
				r.slice.Visibility = r.pendingVis
				r.pending = nil
			}
			r.mu.Unlock()
			if paused {
				continue
			}
			r.notifier.Busy()
			r.draw()
			dirty = false
			r.notifier.Waiting()
		}
	}
}

func (r *Renderer) doStart() {
	if err := r.term.EnterAltScreen(); err != nil {
		r.fail(err)
		return
	}
	if err := r.term.EnableRawMode(); err != nil {
		r.fail(err)
		return
	}
	r.term.HideCursor()
	r.term.EnableMouse()
	r.mu.Lock()
	r.started = true
	r.mu.Unlock()
}

func (r *Renderer) doStop() {
	r.term.DisableMouse()
	r.term.ShowCursor()
	_ = r.term.DisableRawMode()
	_ = r.term.LeaveAltScreen()
	r.mu.Lock()
	r.started = false
	r.mu.Unlock()
}

func (r *Renderer) fail(err error) {
	r.mu.Lock()
	r.poisoned = true
	r.lastErr = err
	r.mu.Unlock()
	r.notifier.Error(err.Error())
}

// draw renders the current slice to the terminal: title row, fixed
// leading/trailing regions, a scrollable body, and a vertical scrollbar
// thumb when the body overflows (spec.md §4.3).
func (r *Renderer) draw() {
	width, height := r.term.Size()
	if width < MinWidth || height < MinHeight {
		r.drawTooSmall(width, height)
		_ = r.term.Flush()
		return
	}

	r.mu.Lock()
	data := r.slice.Data
	scroll := r.slice.Scroll
	r.mu.Unlock()

	row := 0
	if data.Title {
		r.drawTitleRow(width, width >= FullWidthColumn)
		row++
	}

	for _, line := range data.Leading {
		if row >= height {
			break
		}
		r.drawLine(line, 0, row, width, 0)
		row++
	}

	trailingStart := height - len(data.Trailing)
	bodyHeight := trailingStart - row
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	bodyWidth := width
	showScrollbar := len(data.Body) > bodyHeight
	if showScrollbar {
		bodyWidth--
	}

	r.mu.Lock()
	r.slice.EnsureVisible(r.slice.Visibility, bodyWidth, bodyHeight)
	r.slice.EnsureVisible(data.MinVisibility, bodyWidth, bodyHeight)
	scroll = r.slice.Scroll
	r.mu.Unlock()

	for i := 0; i < bodyHeight; i++ {
		srcIdx := scroll.Top + i
		r.term.MoveTo(0, row+i)
		if srcIdx < len(data.Body) {
			r.drawLine(data.Body[srcIdx], 0, row+i, bodyWidth, scroll.Left)
		} else {
			r.clearRow(0, row+i, bodyWidth)
		}
		if showScrollbar {
			r.drawScrollbarCell(bodyWidth, row+i, i, bodyHeight, len(data.Body), scroll.Top)
		}
	}
	row += bodyHeight

	for _, line := range data.Trailing {
		if row >= height {
			break
		}
		r.drawLine(line, 0, row, width, 0)
		row++
	}

	_ = r.term.Flush()
}

func (r *Renderer) drawTitleRow(width int, full bool) {
	r.term.MoveTo(0, 0)
	title := "Git Interactive Rebase Tool"
	if !full {
		title = "Rebase"
	}
	r.term.SetStyle(backend.Style{Reverse: true})
	r.term.Print(padTo(title, width))
}

func (r *Renderer) drawLine(line ViewLine, col, row, width, scrollLeft int) {
	r.term.MoveTo(col, row)
	remaining := width
	skip := scrollLeft

	for i, seg := range line.Segments {
		style := seg.Style
		if line.Selected {
			style.Reverse = true
		}
		text := seg.Text
		if i >= line.Pinned {
			if skip > 0 {
				if skip >= seg.Width() {
					skip -= seg.Width()
					continue
				}
				text = truncateLeft(text, skip)
				skip = 0
			}
		}
		w := runeWidth(text)
		if w > remaining {
			text = truncateWidth(text, remaining)
			w = runeWidth(text)
		}
		r.term.SetStyle(style)
		r.term.Print(text)
		remaining -= w
		if remaining <= 0 {
			return
		}
	}

	if remaining > 0 {
		fill := " "
		style := backend.Style{}
		if line.Padding != nil {
			fill = line.Padding.Text
			style = line.Padding.Style
		}
		if line.Selected {
			style.Reverse = true
		}
		r.term.SetStyle(style)
		for remaining > 0 {
			r.term.Print(fill)
			remaining -= runeWidth(fill)
		}
	}
}

func (r *Renderer) clearRow(col, row, width int) {
	r.term.MoveTo(col, row)
	r.term.SetStyle(backend.Style{})
	for i := 0; i < width; i++ {
		r.term.Print(" ")
	}
}

// drawScrollbarCell draws one cell of the vertical scrollbar track/thumb
// at the given viewport row; the thumb row is ScrollbarThumb(top,
// height, total).
func (r *Renderer) drawScrollbarCell(col, screenRow, viewportRow, bodyHeight, total, top int) {
	thumb := ScrollbarThumb(top, bodyHeight, total)
	r.term.MoveTo(col, screenRow)
	if viewportRow == thumb {
		r.term.SetStyle(backend.Style{Reverse: true})
		r.term.Print(" ")
	} else {
		r.term.SetStyle(backend.Style{})
		r.term.Print(" ")
	}
}

func (r *Renderer) drawTooSmall(width, height int) {
	r.term.MoveTo(0, 0)
	r.term.SetStyle(backend.Style{})
	msg := "Window too small"
	if width < len(msg) {
		msg = msg[:max0(width, 0)]
	}
	r.term.Print(msg)
	for row := 1; row < height; row++ {
		r.clearRow(0, row, width)
	}
}

func max0(v, lo int) int {
	if v < lo {
		return lo
	}
	return v
}

func padTo(s string, width int) string {
	w := runeWidth(s)
	if w >= width {
		return truncateWidth(s, width)
	}
	out := s
	for w < width {
		out += " "
		w++
	}
	return out
}

func runeWidth(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

func truncateWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	out := make([]rune, 0, width)
	for _, r := range s {
		if len(out) >= width {
			break
		}
		out = append(out, r)
	}
	return string(out)
}

func truncateLeft(s string, skip int) string {
	rs := []rune(s)
	if skip >= len(rs) {
		return ""
	}
	return string(rs[skip:])
}
