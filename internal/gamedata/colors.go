package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	r, g, b := int32(rgb>>16&0xff), int32(rgb>>8&0xff), int32(rgb&0xff)
	return tcell.NewRGBColor(r, g, b), nil
}

// ParseColor accepts either a hex string or a W3C color name ("silver").
func ParseColor(s string) (tcell.Color, error) {
	if strings.HasPrefix(s, "#") {
		return ParseHexColor(s)
	}
	c := tcell.GetColor(strings.ToLower(s))
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown color name: %q", s)
	}
	return c, nil
}
