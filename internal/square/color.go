package square

import (
	"fmt"
	"image/color"

	"github.com/iburimskiy/squarefx/internal/config"
)

// ColorChoice is one of the three selectable fills.
type ColorChoice int

const (
	Red ColorChoice = iota
	Green
	Orange
)

// Choices lists every ColorChoice in display order.
var Choices = []ColorChoice{Red, Green, Orange}

func (c ColorChoice) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Orange:
		return "Orange"
	}
	return fmt.Sprintf("ColorChoice(%d)", int(c))
}

// Valid reports whether c is one of Red, Green or Orange.
func (c ColorChoice) Valid() bool {
	return c >= Red && c <= Orange
}

var palette = map[ColorChoice]color.RGBA{
	Red:    MustHex(config.Red),
	Green:  MustHex(config.Green),
	Orange: MustHex(config.Orange),
}

// Fill returns the palette color for c.
func (c ColorChoice) Fill() color.RGBA {
	return palette[c]
}

// ParseHex parses "#RRGGBB" into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustHex is ParseHex for constants; it panics on malformed input.
func MustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
