package config

import (
	"fmt"
	"strings"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/backend"
)

// Binding is one parsed key descriptor: `Modifier+...+Key` (spec.md §6).
type Binding struct {
	Mod  backend.ModMask
	Key  backend.Key
	Rune rune // set when Key == backend.KeyRune
}

var namedKeys = map[string]backend.Key{
	"backspace": backend.KeyBackspace,
	"backtab":   backend.KeyBackTab,
	"delete":    backend.KeyDelete,
	"down":      backend.KeyDown,
	"end":       backend.KeyEnd,
	"enter":     backend.KeyEnter,
	"esc":       backend.KeyEsc,
	"home":      backend.KeyHome,
	"insert":    backend.KeyInsert,
	"left":      backend.KeyLeft,
	"pagedown":  backend.KeyPageDown,
	"pageup":    backend.KeyPageUp,
	"right":     backend.KeyRight,
	"tab":       backend.KeyTab,
	"up":        backend.KeyUp,
}

// ParseBindingList parses a config value into the whitespace-separated
// list of key descriptors spec.md §6 describes for key-binding keys.
func ParseBindingList(key, value string) ([]Binding, error) {
	fields := strings.Fields(value)
	bindings := make([]Binding, 0, len(fields))
	for _, f := range fields {
		b, err := parseDescriptor(f)
		if err != nil {
			return nil, &Error{Key: key, Value: value, Reason: err.Error()}
		}
		bindings = append(bindings, b)
	}
	return bindings, nil
}

func parseDescriptor(descriptor string) (Binding, error) {
	parts := strings.Split(descriptor, "+")
	if len(parts) == 0 {
		return Binding{}, fmt.Errorf("empty key descriptor")
	}
	var b Binding
	keyToken := parts[len(parts)-1]
	for _, mod := range parts[:len(parts)-1] {
		switch strings.ToLower(mod) {
		case "shift":
			b.Mod |= backend.ModShift
		case "control", "ctrl":
			b.Mod |= backend.ModCtrl
		case "alt":
			b.Mod |= backend.ModAlt
		default:
			return Binding{}, fmt.Errorf("unrecognized modifier %q", mod)
		}
	}

	if named, ok := namedKeys[strings.ToLower(keyToken)]; ok {
		b.Key = named
		return b, nil
	}
	if len(keyToken) >= 2 && (keyToken[0] == 'F' || keyToken[0] == 'f') {
		if n, err := fNumber(keyToken[1:]); err == nil && n >= 1 && n <= 255 {
			b.Key = backend.KeyF1 + backend.Key(n-1)
			return b, nil
		}
	}
	runes := []rune(keyToken)
	if len(runes) != 1 {
		return Binding{}, fmt.Errorf("key token %q is not a single character or recognized name", keyToken)
	}
	r := runes[0]
	if r >= 'a' && r <= 'z' && b.Mod.Has(backend.ModShift) {
		// Normalize: Shift+Char uppercases the rune, then the Shift flag is
		// dropped (spec.md §4.2 key-normalization rule).
		r -= 'a' - 'A'
		b.Mod &^= backend.ModShift
	}
	b.Key = backend.KeyRune
	b.Rune = r
	return b, nil
}

func fNumber(s string) (int, error) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("not a number")
		}
		n = n*10 + int(r-'0')
	}
	if n == 0 {
		return 0, fmt.Errorf("F0 is not valid")
	}
	return n, nil
}
