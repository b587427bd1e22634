package models

import (
	"fmt"
	"strings"
)

const (
	dominoUnicodeHorizontal = '\U0001F031'
	dominoUnicodeVertical   = '\U0001F063'
)

func (d Domino) String() string {
	return fmt.Sprintf("[%d|%d]", d.L, d.R)
}

// Glyph renders the tile with the Unicode domino blocks; doubles stand upright.
func (d Domino) Glyph() string {
	offset := d.L*DominoUniqueBones + d.R

	base := int(dominoUnicodeHorizontal)
	if d.IsDouble() {
		base = dominoUnicodeVertical
	}

	return fmt.Sprintf("%c", base+offset)
}

func DominoesString(dominoes []Domino) string {
	parts := make([]string, 0, len(dominoes))
	for _, d := range dominoes {
		parts = append(parts, d.String())
	}

	return strings.Join(parts, " ")
}

func DominoesGlyphs(dominoes []Domino) string {
	parts := make([]string, 0, len(dominoes))
	for _, d := range dominoes {
		parts = append(parts, d.Glyph())
	}

	return strings.Join(parts, " ")
}

func (e Edge) String() string {
	return string(e)
}
