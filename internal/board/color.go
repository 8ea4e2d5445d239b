// Package board provides the Mastermind data model and the feedback scorer.
package board

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Color is one of the six peg colors.
type Color int

const (
	Red Color = iota
	Green
	Blue
	Yellow
	Purple
	Pink
)

// NumColors is the size of the color set.
const NumColors = 6

// Colors lists every valid color in display order.
var Colors = [NumColors]Color{Red, Green, Blue, Yellow, Purple, Pink}

// String returns the upper-case color name.
func (c Color) String() string {
	switch c {
	case Red:
		return "RED"
	case Green:
		return "GREEN"
	case Blue:
		return "BLUE"
	case Yellow:
		return "YELLOW"
	case Purple:
		return "PURPLE"
	case Pink:
		return "PINK"
	default:
		return "UNKNOWN"
	}
}

// ID returns the lower-case identifier used for palette lookups.
func (c Color) ID() string {
	return strings.ToLower(c.String())
}

// Valid reports whether c is one of the six known colors.
func (c Color) Valid() bool {
	return c >= Red && c <= Pink
}

// ParseColor matches a color name case-insensitively, ignoring surrounding whitespace.
func ParseColor(s string) (Color, error) {
	name := cases.Upper(language.Und).String(strings.TrimSpace(s))
	for _, c := range Colors {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, ErrInvalidColor
}

// ColorNames returns the names of all colors, comma separated.
func ColorNames() string {
	names := make([]string, 0, NumColors)
	for _, c := range Colors {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
