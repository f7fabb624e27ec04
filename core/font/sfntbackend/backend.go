/*
Package sfntbackend measures and paints glyphs of OpenType and TrueType
fonts. It is the default glyph backend for score fonts.

Glyph outlines are read with golang.org/x/image/font/sfnt and rasterized
with golang.org/x/image/vector.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package sfntbackend

import (
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smufl/core"
	"github.com/npillmayer/smufl/core/dimen"
	"github.com/npillmayer/smufl/core/font/scorefont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// tracer writes to trace with key 'smufl.font'
func tracer() tracing.Trace {
	return tracing.Select("smufl.font")
}

// Backend wraps a parsed font file. It is safe for concurrent use.
type Backend struct {
	font   *sfnt.Font
	family string
	upem   float64
	ink    image.Image
}

var _ scorefont.Backend = (*Backend)(nil)

// Option configures a backend.
type Option func(*Backend)

// WithColor sets the color glyphs are painted with. Default is black.
func WithColor(c color.Color) Option {
	return func(b *Backend) {
		b.ink = image.NewUniform(c)
	}
}

// New parses font data.
func New(data []byte, opts ...Option) (*Backend, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, core.WrapError(err, core.ECORRUPT, "cannot parse font data")
	}
	b := &Backend{
		font: f,
		upem: float64(f.UnitsPerEm()),
		ink:  image.Black,
	}
	if family, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		b.family = family
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Open reads and parses a font file.
func Open(path string, opts ...Option) (*Backend, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", path)
	}
	b, err := New(data, opts...)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("opened font %s (%s)", path, b.family)
	return b, nil
}

// Family is the family name of the font, as stated in the font's name table.
func (b *Backend) Family() string {
	return b.family
}

// UnitsPerEm is the design grid of the font.
func (b *Backend) UnitsPerEm() float64 {
	return b.upem
}

// HasGlyph is true if the font maps code to a glyph.
func (b *Backend) HasGlyph(code rune) bool {
	_, ok := b.glyph(code)
	return ok
}

func (b *Backend) glyph(code rune) (sfnt.GlyphIndex, bool) {
	var buf sfnt.Buffer
	gid, err := b.font.GlyphIndex(&buf, code)
	if err != nil || gid == 0 {
		return 0, false
	}
	return gid, true
}

// GlyphBox returns the bounding box of a glyph at em size size, with y
// pointing down. Missing glyphs have an empty box.
func (b *Backend) GlyphBox(code rune, size float64) dimen.Rect {
	gid, ok := b.glyph(code)
	if !ok {
		return dimen.Rect{}
	}
	var buf sfnt.Buffer
	bounds, _, err := b.font.GlyphBounds(&buf, gid, toFixed(size), font.HintingNone)
	if err != nil {
		tracer().Errorf("bounds of glyph %U: %v", code, err)
		return dimen.Rect{}
	}
	return dimen.Rect{
		TopL: dimen.Point{X: fromFixed(bounds.Min.X), Y: fromFixed(bounds.Min.Y)},
		BotR: dimen.Point{X: fromFixed(bounds.Max.X), Y: fromFixed(bounds.Max.Y)},
	}
}

// GlyphAdvance returns the advance width of a glyph at em size size.
func (b *Backend) GlyphAdvance(code rune, size float64) float64 {
	gid, ok := b.glyph(code)
	if !ok {
		return 0
	}
	var buf sfnt.Buffer
	adv, err := b.font.GlyphAdvance(&buf, gid, toFixed(size), font.HintingNone)
	if err != nil {
		tracer().Errorf("advance of glyph %U: %v", code, err)
		return 0
	}
	return fromFixed(adv)
}

// Paint rasterizes a glyph into dst. The glyph outline is taken in design
// units and scaled by mag, which may differ for x and y. pos is the glyph
// origin in dst's coordinate space.
func (b *Backend) Paint(dst draw.Image, code rune, mag dimen.Mag, pos dimen.Point) {
	gid, ok := b.glyph(code)
	if !ok {
		return
	}
	var buf sfnt.Buffer
	segments, err := b.font.LoadGlyph(&buf, gid, toFixed(b.upem), nil)
	if err != nil {
		tracer().Errorf("outline of glyph %U: %v", code, err)
		return
	}
	if len(segments) == 0 {
		return
	}
	r := dst.Bounds()
	if r.Empty() {
		return
	}
	pt := func(p fixed.Point26_6) (float32, float32) {
		x := pos.X + fromFixed(p.X)*mag.X - float64(r.Min.X)
		y := pos.Y + fromFixed(p.Y)*mag.Y - float64(r.Min.Y)
		return float32(x), float32(y)
	}
	raster := vector.NewRasterizer(r.Dx(), r.Dy())
	raster.DrawOp = draw.Over
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				raster.ClosePath()
			}
			raster.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			raster.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			raster.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			raster.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		raster.ClosePath()
	}
	raster.Draw(dst, r, b.ink, image.Point{})
}

func toFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
