// Package errormodule implements the Error module (spec.md §4.8): a
// scrollable view of an error's cause chain; any key press returns to the
// state that was active before the error.
package errormodule

import (
	"errors"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/backend"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/config"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/events"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/module"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/view"
)

// Module is the Error state (spec.md §4.8).
type Module struct {
	err         error
	returnState events.State
	errColour   backend.Style
}

// New builds an Error module; errColour styles every cause-chain line.
func New(settings *config.Settings) *Module {
	m := &Module{}
	if settings != nil {
		m.errColour = backend.Style{FG: settings.Colours["errorColor"]}
	}
	return m
}

// SetError records the error and the state to return to once dismissed.
func (m *Module) SetError(err error, returnState events.State) {
	m.err = err
	m.returnState = returnState
}

func (m *Module) Activate(previous events.State) events.Results { return nil }
func (m *Module) Deactivate() events.Results                    { return nil }

func (m *Module) InputOptions() module.InputOptions { return module.OptResize }

func (m *Module) BuildViewData(ctx module.RenderContext) (view.Data, view.Visibility) {
	var body []view.ViewLine
	if m.err != nil {
		for _, cause := range causeChain(m.err) {
			body = append(body, view.NewViewLine(view.Segment{Text: cause.Error(), Tag: view.ColourError, Style: m.errColour}))
		}
	}
	trailing := []view.ViewLine{
		view.NewViewLine(view.Segment{Text: "Press any key to continue"}),
	}
	return view.Data{Title: true, Body: body, Trailing: trailing}, view.Visibility{}
}

func (m *Module) ReadEvent(raw backend.Event, bindings map[string][]config.Binding) events.Event {
	if raw.Type == backend.EventKey {
		return events.NewStandard(events.Acknowledge)
	}
	if e, ok := module.ReadResizeOrMouse(raw); ok {
		return e
	}
	return events.Empty
}

func (m *Module) HandleEvent(e events.Event) events.Results {
	if e.Kind == events.KindStandard && e.Standard == events.Acknowledge {
		return events.Results{events.ChangeState(m.returnState)}
	}
	return nil
}

func (m *Module) HandleError(err error) events.Results { return nil }

// causeChain unwraps err via errors.Unwrap, innermost last.
func causeChain(err error) []error {
	var chain []error
	for err != nil {
		chain = append(chain, err)
		err = errors.Unwrap(err)
	}
	return chain
}
