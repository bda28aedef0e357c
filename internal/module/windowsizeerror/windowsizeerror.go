// Package windowsizeerror implements the WindowSizeError module
// (spec.md §4.8): picks one of three canned messages according to which
// of width and height is below the minimum (the message does not vary
// with how much width is available), and returns to the saved previous
// state once the window is acceptable again.
package windowsizeerror

import (
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/backend"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/config"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/events"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/module"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/view"
)

// Minimum and full-width thresholds, matching internal/view's drawing
// rules (spec.md §4.3).
const (
	MinWidth        = view.MinWidth
	MinHeight       = view.MinHeight
	FullWidthColumn = view.FullWidthColumn
)

// Module is the WindowSizeError state.
type Module struct {
	returnState events.State
	width       int
	height      int
}

// New builds a WindowSizeError module.
func New() *Module { return &Module{} }

// SetReturnState records the state to resume once the window is
// acceptable again.
func (m *Module) SetReturnState(s events.State) { m.returnState = s }

// Acceptable reports whether (width, height) clears the minimum
// threshold spec.md §4.3 defines.
func Acceptable(width, height int) bool {
	return width >= MinWidth && height >= MinHeight
}

func (m *Module) Activate(previous events.State) events.Results {
	if previous != events.StateWindowSizeError {
		m.returnState = previous
	}
	return nil
}
func (m *Module) Deactivate() events.Results { return nil }

func (m *Module) InputOptions() module.InputOptions { return module.OptResize }

// message picks one of three canned messages (spec.md §4.8) depending on
// which dimension(s) fall below the minimum.
func message(width, height int) string {
	switch {
	case width < MinWidth && height < MinHeight:
		return "Window too small, increase width and height"
	case width < MinWidth:
		return "Window too small, increase width"
	default:
		return "Window too small, increase height"
	}
}

func (m *Module) BuildViewData(ctx module.RenderContext) (view.Data, view.Visibility) {
	m.width, m.height = ctx.Width, ctx.Height
	body := []view.ViewLine{view.NewViewLine(view.Segment{Text: message(ctx.Width, ctx.Height), Tag: view.ColourError})}
	return view.Data{Body: body}, view.Visibility{}
}

func (m *Module) ReadEvent(raw backend.Event, bindings map[string][]config.Binding) events.Event {
	if e, ok := module.ReadResizeOrMouse(raw); ok {
		return e
	}
	return events.Empty
}

func (m *Module) HandleEvent(e events.Event) events.Results {
	if e.Kind == events.KindResize && Acceptable(e.Width, e.Height) {
		return events.Results{events.ChangeState(m.returnState)}
	}
	return nil
}

func (m *Module) HandleError(err error) events.Results { return nil }
