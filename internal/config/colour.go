package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/backend"
)

// namedColours are the terminal palette names spec.md §6 colour keys
// accept in addition to an R,G,B triple or -1/transparent.
var namedColours = map[string]backend.Colour{
	"black":   rgb(0, 0, 0),
	"red":     rgb(205, 49, 49),
	"green":   rgb(13, 188, 121),
	"yellow":  rgb(229, 229, 16),
	"blue":    rgb(36, 114, 200),
	"magenta": rgb(188, 63, 188),
	"cyan":    rgb(17, 168, 205),
	"white":   rgb(229, 229, 229),
}

func rgb(r, g, b uint8) backend.Colour { return backend.Colour{R: r, G: g, B: b} }

// ParseColour parses one colour config value: "-1" or "transparent" for no
// colour, a named colour, or an "R,G,B" triple (each 0-255). Named colours
// and triples both route through go-colorful so a later feature (theme
// blending, contrast checks) can operate on a single canonical colour
// type instead of three different representations.
func ParseColour(key, value string) (backend.Colour, error) {
	v := strings.TrimSpace(value)
	if v == "-1" || strings.EqualFold(v, "transparent") {
		return backend.Colour{Transparent: true}, nil
	}
	if c, ok := namedColours[strings.ToLower(v)]; ok {
		return c, nil
	}
	if strings.Contains(v, ",") {
		return parseTriple(key, v)
	}
	return backend.Colour{}, &Error{Key: key, Value: value, Reason: "not a recognized colour name, -1/transparent, or R,G,B triple"}
}

func parseTriple(key, v string) (backend.Colour, error) {
	parts := strings.Split(v, ",")
	if len(parts) != 3 {
		return backend.Colour{}, &Error{Key: key, Value: v, Reason: "R,G,B triple must have exactly three components"}
	}
	var comps [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return backend.Colour{}, &Error{Key: key, Value: v, Reason: fmt.Sprintf("component %q must be an integer 0-255", p)}
		}
		comps[i] = uint8(n)
	}
	// Round-trip through go-colorful so malformed float rounding never
	// silently shifts a user's chosen colour.
	c := colorful.Color{R: float64(comps[0]) / 255, G: float64(comps[1]) / 255, B: float64(comps[2]) / 255}
	r, g, b := c.RGB255()
	return rgb(r, g, b), nil
}
