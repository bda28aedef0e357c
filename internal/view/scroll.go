package view

// ScrollAction is one pending scroll intent appended to a RenderSlice,
// applied by the renderer before drawing (spec.md §4.3).
type ScrollAction int

const (
	ScrollUp ScrollAction = iota
	ScrollDown
	ScrollLeft
	ScrollRight
	ScrollPageUp
	ScrollPageDown
	ScrollTop
	ScrollBottom
)

// PendingResize is a queued terminal-size change.
type PendingResize struct {
	Width, Height int
}

// ScrollState is the render-slice's current top/left position.
type ScrollState struct {
	Top  int
	Left int
}

// RenderSlice is the immutable snapshot the view renderer currently
// draws: the set of view lines scheduled for display, plus the scroll
// position and any pending scroll/resize actions (spec.md Glossary,
// "Render-slice").
type RenderSlice struct {
	Data       Data
	Scroll     ScrollState
	Pending    []ScrollAction
	Resize     *PendingResize
	Visibility Visibility
}

// AppendAction queues a scroll intent for the next render pass.
func (rs *RenderSlice) AppendAction(a ScrollAction) {
	rs.Pending = append(rs.Pending, a)
}

// ApplyPending resolves all queued scroll actions against the body's
// total extent, updating Scroll and clearing the queue. bodyHeight/Width
// are the body viewport's visible dimensions; totalLines/totalCols are
// the full content extent.
func (rs *RenderSlice) ApplyPending(bodyWidth, bodyHeight, totalCols, totalLines int) {
	for _, a := range rs.Pending {
		switch a {
		case ScrollUp:
			rs.Scroll.Top = clamp(rs.Scroll.Top-1, 0, maxTop(totalLines, bodyHeight))
		case ScrollDown:
			rs.Scroll.Top = clamp(rs.Scroll.Top+1, 0, maxTop(totalLines, bodyHeight))
		case ScrollLeft:
			rs.Scroll.Left = clamp(rs.Scroll.Left-1, 0, maxTop(totalCols, bodyWidth))
		case ScrollRight:
			rs.Scroll.Left = clamp(rs.Scroll.Left+1, 0, maxTop(totalCols, bodyWidth))
		case ScrollPageUp:
			rs.Scroll.Top = clamp(rs.Scroll.Top-bodyHeight, 0, maxTop(totalLines, bodyHeight))
		case ScrollPageDown:
			rs.Scroll.Top = clamp(rs.Scroll.Top+bodyHeight, 0, maxTop(totalLines, bodyHeight))
		case ScrollTop:
			rs.Scroll.Top = 0
		case ScrollBottom:
			rs.Scroll.Top = maxTop(totalLines, bodyHeight)
		}
	}
	rs.Pending = nil
}

func maxTop(total, visible int) int {
	if total <= visible {
		return 0
	}
	return total - visible
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EnsureVisible moves the scroll position so that (col, row) is in view,
// honoring a MinVisibility request from the active module's view data.
func (rs *RenderSlice) EnsureVisible(v Visibility, bodyWidth, bodyHeight int) {
	if v.Row < rs.Scroll.Top {
		rs.Scroll.Top = v.Row
	} else if v.Row >= rs.Scroll.Top+bodyHeight {
		rs.Scroll.Top = v.Row - bodyHeight + 1
	}
	if v.Column < rs.Scroll.Left {
		rs.Scroll.Left = v.Column
	} else if v.Column >= rs.Scroll.Left+bodyWidth {
		rs.Scroll.Left = v.Column - bodyWidth + 1
	}
}

// ScrollbarThumb computes the vertical scrollbar thumb row, clamped to
// [0, height-1] (spec.md §4.3 drawing rules). It is monotonic in top
// (spec.md §8 property 6).
func ScrollbarThumb(top, height, total int) int {
	if total <= 0 || height <= 0 {
		return 0
	}
	pos := (top * height) / total
	return clamp(pos, 0, height-1)
}
