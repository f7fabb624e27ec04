package scorefont

import (
	"strings"

	"github.com/npillmayer/smufl/core/dimen"
	"github.com/npillmayer/smufl/core/font/smufl"
)

// Metrics are stored at magnitude 1 and scaled on each query.
// Symbols without a glyph measure zero.

// BBox returns the bounding box of a symbol.
func (f *Font) BBox(id smufl.SymID, mag dimen.Mag) dimen.Rect {
	s := f.sym(id)
	if !s.measurable() {
		return dimen.Rect{}
	}
	return s.Box.Scaled(mag)
}

// Width returns the width of a symbol's bounding box.
func (f *Font) Width(id smufl.SymID, mag dimen.Mag) float64 {
	return f.BBox(id, mag).Width()
}

// Height returns the height of a symbol's bounding box.
func (f *Font) Height(id smufl.SymID, mag dimen.Mag) float64 {
	return f.BBox(id, mag).Height()
}

// Advance returns the horizontal advance of a symbol.
func (f *Font) Advance(id smufl.SymID, mag dimen.Mag) float64 {
	s := f.sym(id)
	if !s.measurable() {
		return 0
	}
	return s.Advance * mag.X
}

// SeqBBox returns the bounding box of symbols set one after another, each
// shifted by the advances of its predecessors.
func (f *Font) SeqBBox(ids smufl.SymIDList, mag dimen.Mag) dimen.Rect {
	var box dimen.Rect
	x := 0.0
	for _, id := range ids {
		box = box.Union(f.BBox(id, mag).Translated(dimen.Point{X: x}))
		x += f.Advance(id, mag)
	}
	return box
}

// SeqWidth returns the sum of advances of a sequence of symbols.
func (f *Font) SeqWidth(ids smufl.SymIDList, mag dimen.Mag) float64 {
	w := 0.0
	for _, id := range ids {
		w += f.Advance(id, mag)
	}
	return w
}

// Anchor returns the position of an anchor relative to a symbol's origin.
// The second result is false if the symbol has no such anchor.
func (f *Font) Anchor(id smufl.SymID, anchor smufl.AnchorID, mag dimen.Mag) (dimen.Point, bool) {
	p, ok := f.sym(id).Anchors[anchor]
	if !ok {
		return dimen.Point{}, false
	}
	return p.Scaled(mag), true
}

// SymCode returns the codepoint used for a symbol in this font, or 0.
func (f *Font) SymCode(id smufl.SymID) rune {
	return f.sym(id).Code
}

// FromCode returns the symbol for a codepoint of this font, or NoSym.
func (f *Font) FromCode(code rune) smufl.SymID {
	if id, ok := f.byCode[code]; ok {
		return id
	}
	return smufl.NoSym
}

// ToString returns the text which displays a symbol with this font.
// Composed symbols produce the text of their components.
func (f *Font) ToString(id smufl.SymID) string {
	s := f.sym(id)
	if !s.IsCompound() {
		if s.Code == 0 {
			return ""
		}
		return string(s.Code)
	}
	var b strings.Builder
	for _, sub := range s.SubSymbols {
		if code := f.SymCode(sub); code != 0 {
			b.WriteRune(code)
		}
	}
	return b.String()
}

// IsValid is true if the font has a glyph for a symbol.
func (f *Font) IsValid(id smufl.SymID) bool {
	return f.sym(id).IsValid()
}

// IsCompound is true if a symbol is drawn as a sequence of other symbols.
func (f *Font) IsCompound(id smufl.SymID) bool {
	return f.sym(id).IsCompound()
}

// UseFallbackFont is true if a symbol should be taken from the fallback
// font, because this font cannot display it. Composed symbols are drawn from
// their components and never defer to the fallback font, even without a
// glyph of their own.
func (f *Font) UseFallbackFont(id smufl.SymID) bool {
	s := f.sym(id)
	return !s.IsValid() && !s.IsCompound()
}
