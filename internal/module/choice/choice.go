// Package choice implements the keyed-menu component the Insert module
// uses as its line-kind picker. Grounded on internal/dispatcher/handler's CanHandle/Handle
// shape, narrowed from "can this handler process the action" to "is this
// rune a mapped option".
package choice

import "strings"

// Option is one selectable entry: a single trigger rune, its value, and
// the label shown in the rendered menu.
type Option struct {
	Key   rune
	Value string
	Label string
}

// Menu is a set of options plus the "invalid selection" flag the last
// unmapped key press raised.
type Menu struct {
	options []Option
	invalid bool
}

// New builds a Menu from options.
func New(options []Option) *Menu { return &Menu{options: options} }

// Options returns the configured options, in order.
func (m *Menu) Options() []Option { return m.options }

// Select resolves r (case-insensitively) against the configured options.
// On a match it clears Invalid and returns (value, true); on no match it
// sets Invalid and returns ("", false).
func (m *Menu) Select(r rune) (string, bool) {
	for _, o := range m.options {
		if strings.EqualFold(string(o.Key), string(r)) {
			m.invalid = false
			return o.Value, true
		}
	}
	m.invalid = true
	return "", false
}

// Invalid reports whether the most recent Select call was unmapped.
func (m *Menu) Invalid() bool { return m.invalid }

// ClearInvalid resets the invalid-selection flag, e.g. after it has been
// rendered once.
func (m *Menu) ClearInvalid() { m.invalid = false }
