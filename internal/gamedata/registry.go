package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mastermind/internal/board"
)

// ColorDef describes how a board color is displayed.
type ColorDef struct {
	ID    string `json:"id"`    // Matches board.Color.ID() (e.g., "red")
	Hex   string `json:"hex"`   // Hex color code (e.g., "#E53935")
	Glyph string `json:"glyph"` // Single character for compact rendering
}

// PegDef describes a feedback marker.
type PegDef struct {
	Glyph string `json:"glyph"`
	Color string `json:"color"` // Hex code or color name
}

// PaletteFile represents the structure of palette.json.
type PaletteFile struct {
	Colors []ColorDef `json:"colors"`
	Pegs   struct {
		Exact   PegDef `json:"exact"`
		Partial PegDef `json:"partial"`
	} `json:"pegs"`
}

// Peg is a resolved feedback marker.
type Peg struct {
	Glyph rune
	Color tcell.Color
}

// Palette maps every board color to its display attributes.
type Palette struct {
	colors  [board.NumColors]tcell.Color
	glyphs  [board.NumColors]rune
	Exact   Peg
	Partial Peg
}

// NewPalette resolves a palette file. Every board color must be defined exactly once.
func NewPalette(file PaletteFile) (*Palette, error) {
	p := &Palette{}
	seen := make(map[string]bool, len(file.Colors))

	for _, def := range file.Colors {
		if seen[def.ID] {
			return nil, fmt.Errorf("palette color %q defined twice", def.ID)
		}
		seen[def.ID] = true
	}

	for _, c := range board.Colors {
		def := file.colorByID(c.ID())
		if def == nil {
			return nil, fmt.Errorf("palette missing color %q", c.ID())
		}
		color, err := ParseHexColor(def.Hex)
		if err != nil {
			return nil, fmt.Errorf("palette color %q: %w", def.ID, err)
		}
		p.colors[c] = color
		p.glyphs[c] = glyphRune(def.Glyph)
	}

	var err error
	if p.Exact, err = resolvePeg(file.Pegs.Exact); err != nil {
		return nil, fmt.Errorf("exact peg: %w", err)
	}
	if p.Partial, err = resolvePeg(file.Pegs.Partial); err != nil {
		return nil, fmt.Errorf("partial peg: %w", err)
	}
	return p, nil
}

// LoadPalette loads the embedded palette.json.
func LoadPalette() (*Palette, error) {
	file, err := Load[PaletteFile]("palette.json")
	if err != nil {
		return nil, err
	}
	if len(file.Colors) == 0 {
		return nil, errors.New("no colors loaded from palette.json")
	}
	return NewPalette(file)
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() *Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}

// Color returns the display color for c, or tcell.ColorDefault for unknown colors.
func (p *Palette) Color(c board.Color) tcell.Color {
	if !c.Valid() {
		return tcell.ColorDefault
	}
	return p.colors[c]
}

// Glyph returns the single-character symbol for c.
func (p *Palette) Glyph(c board.Color) rune {
	if !c.Valid() {
		return '?'
	}
	return p.glyphs[c]
}

func (f *PaletteFile) colorByID(id string) *ColorDef {
	for i := range f.Colors {
		if f.Colors[i].ID == id {
			return &f.Colors[i]
		}
	}
	return nil
}

func resolvePeg(def PegDef) (Peg, error) {
	color, err := ParseColor(def.Color)
	if err != nil {
		return Peg{}, err
	}
	return Peg{Glyph: glyphRune(def.Glyph), Color: color}, nil
}

func glyphRune(s string) rune {
	if len(s) == 0 {
		return '?'
	}
	return rune(s[0])
}
