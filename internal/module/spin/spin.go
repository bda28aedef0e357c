// Package spin implements the small rotating indicator shown while the
// diff loader is working and during external-editor hand-off
// (SPEC_FULL.md §5 supplemented feature 2: the original's SpinIndicator
// is reused across both). Grounded on internal/renderer/dirty's
// tick-counter idiom, repurposed from "is a redraw due" to "which glyph
// is due".
package spin

// frames is the rotation sequence, advanced one frame per render tick.
var frames = []rune{'|', '/', '-', '\\'}

// Spinner tracks which frame to show next.
type Spinner struct {
	tick int
}

// New returns a Spinner starting at frame 0.
func New() *Spinner { return &Spinner{} }

// Advance moves to the next frame and returns its glyph.
func (s *Spinner) Advance() rune {
	s.tick = (s.tick + 1) % len(frames)
	return frames[s.tick]
}

// Current returns the current frame's glyph without advancing.
func (s *Spinner) Current() rune { return frames[s.tick] }

// Reset returns the spinner to its first frame.
func (s *Spinner) Reset() { s.tick = 0 }
