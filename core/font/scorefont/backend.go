package scorefont

import (
	"image/draw"

	"github.com/npillmayer/smufl/core/dimen"
)

// Backend is the rendering service a font delegates to. It measures glyphs
// while a font is loaded and paints them on request.
//
// Measurements are taken at an em size given by the caller; a font queries
// at UnitsPerEm, thus receiving values in design units.
type Backend interface {
	UnitsPerEm() float64
	HasGlyph(code rune) bool
	GlyphBox(code rune, size float64) dimen.Rect
	GlyphAdvance(code rune, size float64) float64
	// Paint draws a glyph with its origin at pos (in pixels of dst);
	// design units are multiplied by mag.
	Paint(dst draw.Image, code rune, mag dimen.Mag, pos dimen.Point)
}
