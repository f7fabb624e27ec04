package scorefont

import (
	"image/draw"

	"github.com/npillmayer/smufl/core/dimen"
	"github.com/npillmayer/smufl/core/font/smufl"
)

// Draw paints a symbol with its origin at pos. Composed symbols paint their
// components. Symbols the font cannot display are silently skipped.
func (f *Font) Draw(id smufl.SymID, dst draw.Image, mag dimen.Mag, pos dimen.Point) {
	s := f.sym(id)
	if s.IsCompound() {
		f.DrawSeq(s.SubSymbols, dst, mag, pos)
		return
	}
	if !s.IsValid() || f.backend == nil {
		tracer().Debugf("score font %s cannot draw %s", f.desc.Name, id)
		return
	}
	f.backend.Paint(dst, f.SymCode(id), mag, pos)
}

// DrawN paints a symbol n times in a row.
func (f *Font) DrawN(id smufl.SymID, dst draw.Image, mag dimen.Mag, pos dimen.Point, n int) {
	for i := 0; i < n; i++ {
		f.Draw(id, dst, mag, pos)
		pos.X += f.Advance(id, mag)
	}
}

// DrawSeq paints symbols one after another, starting at pos.
func (f *Font) DrawSeq(ids smufl.SymIDList, dst draw.Image, mag dimen.Mag, pos dimen.Point) {
	for _, id := range ids {
		f.Draw(id, dst, mag, pos)
		pos.X += f.Advance(id, mag)
	}
}
