package fontregistry

import (
	"image/draw"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/smufl/core"
	"github.com/npillmayer/smufl/core/dimen"
	"github.com/npillmayer/smufl/core/font"
	"github.com/npillmayer/smufl/core/font/glyphnames"
	"github.com/npillmayer/smufl/core/font/scorefont"
	"github.com/npillmayer/smufl/core/font/smufl"
	"github.com/npillmayer/smufl/core/locate/resources"
	"github.com/npillmayer/smufl/core/parameters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clefFont knows G clefs only: the standard one and the alternate of
// stylistic set ss01.
type clefFont struct{}

func (clefFont) UnitsPerEm() float64 { return 1000 }

func (clefFont) HasGlyph(code rune) bool { return code == 0xE050 || code == 0xF472 }

func (clefFont) GlyphBox(code rune, size float64) dimen.Rect {
	return dimen.R(0, -650, 670, 1000).Scaled(dimen.Uniform(size / 1000))
}

func (clefFont) GlyphAdvance(code rune, size float64) float64 { return 670 * size / 1000 }

func (clefFont) Paint(draw.Image, rune, dimen.Mag, dimen.Point) {}

func noFiles(font.Descriptor) (resources.FontFiles, error) {
	return resources.FontFiles{}, nil
}

// only Bravura and Leland have a font file
func clefFonts(desc font.Descriptor, _ resources.FontFiles) (scorefont.Backend, error) {
	switch desc.Name {
	case "Bravura", "Leland":
		return clefFont{}, nil
	}
	return nil, core.Error(core.EMISSING, "no font file for %s", desc.Name)
}

func testCatalog(t *testing.T, opts ...Option) *Catalog {
	names, err := glyphnames.Default()
	require.NoError(t, err)
	opts = append([]Option{WithResolver(noFiles), WithBackends(clefFonts)}, opts...)
	c := NewCatalog(names, DefaultFonts, opts...)
	c.Load()
	return c
}

func TestCatalog(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smufl.font")
	defer teardown()
	//
	c := testCatalog(t)
	fonts := c.Fonts()
	require.Len(t, fonts, len(DefaultFonts))
	for i, f := range fonts {
		assert.Equal(t, DefaultFonts[i].Name, f.Name())
		assert.True(t, f.IsLoaded())
	}
	bravura := c.FontByName("bravura")
	require.NotNil(t, bravura)
	assert.Same(t, bravura, c.FontByName("BRAVURA"))
	assert.Same(t, c.FontByName("Finale Maestro"), c.FontByName("finale maestro"))
	assert.Nil(t, c.FontByName("Helvetica"))
	assert.Nil(t, c.FontByName("Brav"))
	//
	assert.Same(t, bravura, c.FallbackFont())
	assert.Equal(t, "Bravura Text", c.FallbackTextFont())
	c.LogFontList()
}

func TestFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smufl.font")
	defer teardown()
	//
	c := testCatalog(t)
	emmentaler := c.FontByName("Emmentaler")
	require.NotNil(t, emmentaler)
	assert.True(t, emmentaler.UseFallbackFont(smufl.GClef), "font without file has no symbols")
	fallback := c.FallbackFont()
	assert.True(t, fallback.IsValid(smufl.GClef))
	assert.Equal(t, rune(0xE050), fallback.SymCode(smufl.GClef))
	assert.Equal(t, 670.0, fallback.Advance(smufl.GClef, dimen.Uniform(1)))
}

func TestPackagedMetadata(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smufl.font")
	defer teardown()
	//
	c := testCatalog(t)
	bravura := c.FontByName("Bravura")
	ed := bravura.EngravingDefaults()
	assert.Equal(t, "Bravura Text", ed.S(parameters.MusicalTextFont))
	assert.Equal(t, parameters.Spatium(0.13), ed.Sp(parameters.StaffLineWidth))
	assert.Equal(t, 0.16, bravura.TextEnclosureThickness())
	p, ok := bravura.Anchor(smufl.NoteheadBlack, smufl.StemUpSE, dimen.Uniform(1))
	assert.True(t, ok)
	assert.InDelta(t, 295.0, p.X, 1e-9)
	leland := c.FontByName("Leland")
	assert.Equal(t, "Leland Text", leland.EngravingDefaults().S(parameters.MusicalTextFont))
	assert.Equal(t, parameters.Spatium(0.11), leland.EngravingDefaults().Sp(parameters.StaffLineWidth))
	// Petaluma has neither font file nor packaged metadata
	assert.Equal(t, 0, c.FontByName("Petaluma").EngravingDefaults().Len())
}

func TestConfiguredCatalog(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smufl.font")
	defer teardown()
	//
	conf := testconfig.Conf{
		"scorefont.fallback":      "leland",
		"scorefont.stylistic-set": "ss01",
	}
	c := testCatalog(t, WithConfig(conf))
	assert.Equal(t, "Leland", c.FallbackFont().Name())
	assert.Equal(t, "Leland Text", c.FallbackTextFont())
	bravura := c.FontByName("Bravura")
	assert.Equal(t, "ss01", bravura.StylisticSet())
	assert.Equal(t, rune(0xF472), bravura.SymCode(smufl.GClef))
	//
	conf = testconfig.Conf{"scorefont.fallback": "Helvetica"}
	c = testCatalog(t, WithConfig(conf))
	assert.Equal(t, "Bravura", c.FallbackFont().Name(), "unknown fallback reverts to default")
}

func TestInitScoreFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smufl.font")
	defer teardown()
	//
	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = InitScoreFonts(testconfig.Conf{})
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Len(t, ScoreFonts(), len(DefaultFonts))
	assert.NotNil(t, FontByName("petaluma"))
	assert.Nil(t, FontByName("Helvetica"))
	assert.Equal(t, "Bravura", FallbackFont().Name())
	assert.NoError(t, InitScoreFonts(nil), "repeated initialization is a no-op")
}
