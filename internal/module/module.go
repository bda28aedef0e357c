// Package module defines the per-state UI module contract the process
// loop drives (spec.md §4.4). Grounded on the teacher's
// internal/dispatcher/handler package (a Handler is asked CanHandle then
// Handle; a Module is asked InputOptions then handed a translated event)
// generalized from vim-mode action dispatch to rebase-todo state modules,
// and on internal/input/key for key-descriptor matching.
package module

import (
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/backend"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/config"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/events"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/view"
)

// InputOptions is a bitmask a module returns to tell the process loop
// which classes of event it wants translated and delivered (spec.md
// §4.4).
type InputOptions int

const (
	OptResize InputOptions = 1 << iota
	OptMovement
	OptHelp
	OptSearch
	OptUndoRedo
)

// Has reports whether o includes flag.
func (o InputOptions) Has(flag InputOptions) bool { return o&flag != 0 }

// RenderContext is the information a module needs to build its view data:
// the available body size and whether the help-key hint should show.
type RenderContext struct {
	Width, Height int
	HelpKeyLabel  string
}

// Module is one state in the closed state set spec.md §4.4 names (List,
// ShowCommit, Insert, Edit, ConfirmAbort, ConfirmRebase, ExternalEditor,
// Error, WindowSizeError).
type Module interface {
	// Activate is called when the process loop switches into this
	// module, with the state being left.
	Activate(previous events.State) events.Results

	// Deactivate is called when the process loop switches away from this
	// module.
	Deactivate() events.Results

	// BuildViewData renders the module's current state as a page of
	// view lines, plus any cell that must stay visible (cursor, a
	// scrolled-to row) after pending scroll actions apply.
	BuildViewData(ctx RenderContext) (view.Data, view.Visibility)

	// InputOptions reports which event classes this module wants
	// translated before HandleEvent is called.
	InputOptions() InputOptions

	// ReadEvent translates a raw terminal event into the module's event
	// vocabulary using the active key bindings. Returns events.Empty for
	// keys the module does not recognize.
	ReadEvent(raw backend.Event, bindings map[string][]config.Binding) events.Event

	// HandleEvent processes a translated event and returns the
	// artifacts it produces (spec.md §3). The caller prepends an
	// Event(e) artifact itself.
	HandleEvent(e events.Event) events.Results

	// HandleError is invoked on the Error module only, carrying the
	// error that triggered the transition.
	HandleError(err error) events.Results
}

// ResolveBinding looks up which bound action name (if any) matches raw,
// scanning the full bindings table. Multiple actions can never match the
// same descriptor (config.Conflicts rejects that at load time), so the
// first match is unambiguous.
func ResolveBinding(raw backend.Event, bindings map[string][]config.Binding) (string, bool) {
	if raw.Type != backend.EventKey {
		return "", false
	}
	for name, bs := range bindings {
		for _, b := range bs {
			if matches(raw, b) {
				return name, true
			}
		}
	}
	return "", false
}

func matches(raw backend.Event, b config.Binding) bool {
	if raw.Mod != b.Mod {
		return false
	}
	if b.Key == backend.KeyRune {
		return raw.Key == backend.KeyRune && raw.Rune == b.Rune
	}
	return raw.Key == b.Key
}

// actionEvents maps every bindable action name (internal/config's
// bindingActions list) to its StandardEvent.
var actionEvents = map[string]events.StandardEvent{
	"moveUp":           events.MoveCursorUp,
	"moveDown":         events.MoveCursorDown,
	"moveLeft":         events.MoveCursorLeft,
	"moveRight":        events.MoveCursorRight,
	"movePageUp":       events.MoveCursorPageUp,
	"movePageDown":     events.MoveCursorPageDown,
	"moveHome":         events.MoveCursorHome,
	"moveEnd":          events.MoveCursorEnd,
	"toggleVisualMode": events.ToggleVisualMode,
	"actionPick":       events.ActionPick,
	"actionReword":     events.ActionReword,
	"actionEdit":       events.ActionEdit,
	"actionSquash":     events.ActionSquash,
	"actionFixup":      events.ActionFixup,
	"actionDrop":       events.ActionDrop,
	"swapSelectedUp":   events.SwapUp,
	"swapSelectedDown": events.SwapDown,
	"toggleBreak":      events.ActionBreak,
	"openInEditor":     events.OpenInEditor,
	"showCommit":       events.ShowCommit,
	"confirmAbort":     events.Abort,
	"confirmRebase":    events.Rebase,
	"undo":             events.Undo,
	"redo":             events.Redo,
	"help":             events.Help,
	"searchStart":      events.SearchStart,
	"searchNext":       events.SearchNext,
	"searchPrevious":   events.SearchPrevious,
	"insertLine":       events.InsertLine,
	"removeLine":       events.Delete,
}

// ReadStandardEvent resolves raw against bindings and, for the handful of
// action names that don't round-trip one-to-one onto module-specific
// behaviour, lets the caller fall back to its own translation.
func ReadStandardEvent(raw backend.Event, bindings map[string][]config.Binding) (events.Event, bool) {
	name, ok := ResolveBinding(raw, bindings)
	if !ok {
		return events.Empty, false
	}
	se, ok := actionEvents[name]
	if !ok {
		return events.Empty, false
	}
	return events.NewStandard(se), true
}

// ReadResizeOrMouse handles the event classes common to every module
// (resize, and scroll-wheel mouse input), independent of key bindings.
func ReadResizeOrMouse(raw backend.Event) (events.Event, bool) {
	switch raw.Type {
	case backend.EventResize:
		return events.NewResize(raw.Width, raw.Height), true
	case backend.EventMouse:
		switch raw.Mouse {
		case backend.MouseWheelUp:
			return events.NewStandard(events.ScrollUp), true
		case backend.MouseWheelDown:
			return events.NewStandard(events.ScrollDown), true
		}
	}
	return events.Empty, false
}
