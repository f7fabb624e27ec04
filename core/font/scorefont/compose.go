package scorefont

import (
	"github.com/npillmayer/smufl/core/dimen"
	"github.com/npillmayer/smufl/core/font/smufl"
)

type composition struct {
	id         smufl.SymID
	components smufl.SymIDList
}

// builtinCompositions are used for fonts which lack a glyph of their own
// for a composed symbol.
var builtinCompositions = []composition{
	{smufl.OrnamentPrallMordent, smufl.SymIDList{
		smufl.OrnamentZigZagLineNoRightEnd,
		smufl.OrnamentZigZagLineNoRightEnd,
		smufl.OrnamentZigZagLineWithRightEnd,
	}},
	{smufl.OrnamentUpPrall, smufl.SymIDList{
		smufl.OrnamentBottomLeftConcaveStroke,
		smufl.OrnamentZigZagLineNoRightEnd,
		smufl.OrnamentZigZagLineWithRightEnd,
	}},
	{smufl.OrnamentPrallDown, smufl.SymIDList{
		smufl.OrnamentZigZagLineNoRightEnd,
		smufl.OrnamentZigZagLineNoRightEnd,
		smufl.OrnamentBottomRightConcaveStroke,
	}},
	{smufl.KeyboardPedalPedDot, smufl.SymIDList{
		smufl.KeyboardPedalPed,
		smufl.KeyboardPedalDot,
	}},
}

// compose turns a symbol into a sequence of other symbols of the same font.
// Components must be valid, atomic glyphs different from the symbol itself.
// If a component fails these checks, the symbol is left as it is.
//
// Box and advance of the composed symbol are those of the sequence; anchors
// are kept.
func (f *Font) compose(id smufl.SymID, components smufl.SymIDList) bool {
	if !id.IsValid() || len(components) == 0 {
		return false
	}
	for _, c := range components {
		switch {
		case c == id:
			tracer().Errorf("score font %s: %s is composed of itself", f.desc.Name, id)
			return false
		case !c.IsValid():
			tracer().Errorf("score font %s: %s has an invalid component", f.desc.Name, id)
			return false
		case f.symbols[c].IsCompound():
			tracer().Errorf("score font %s: %s: component %s is composed itself", f.desc.Name, id, c)
			return false
		case !f.symbols[c].IsValid():
			tracer().Debugf("score font %s: %s: component %s missing", f.desc.Name, id, c)
			return false
		}
	}
	sym := &f.symbols[id]
	sym.SubSymbols = append([]smufl.SymID(nil), components...)
	sym.Box = f.SeqBBox(components, dimen.Uniform(1))
	sym.Advance = f.SeqWidth(components, dimen.Uniform(1))
	return true
}
