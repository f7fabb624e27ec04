package glyphnames

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/smufl/core"
	"github.com/npillmayer/smufl/core/font/smufl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGlyphNames = `{
	"gClef": {"codepoint": "U+E050", "alternateCodepoint": "U+1D11E", "description": "G clef"},
	"accidentalFlat": {"codepoint": "U+E260", "alternateCodepoint": "U+266D"},
	"keyboardPedalDot": {"codepoint": "U+E654"},
	"brandNewGlyph2031": {"codepoint": "U+EFFF"},
	"segno": {"codepoint": "U+E0XX"},
	"coda": {"description": "no codepoints at all"},
	"stem": [1, 2, 3]
}`

func TestParseGlyphNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smufl.glyphs")
	defer teardown()
	//
	reg, err := Parse([]byte(testGlyphNames))
	require.NoError(t, err)
	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, smufl.Code{Primary: 0xE050, Fallback: 0x1D11E}, reg.Code(smufl.GClef))
	assert.Equal(t, smufl.Code{Primary: 0xE260, Fallback: 0x266D}, reg.Code(smufl.AccidentalFlat))
	assert.Equal(t, smufl.Code{Primary: 0xE654}, reg.Code(smufl.KeyboardPedalDot))
	// malformed entries are dropped, not fatal
	assert.True(t, reg.Code(smufl.Segno).IsZero())
	assert.True(t, reg.Code(smufl.Coda).IsZero())
	assert.True(t, reg.Code(smufl.Stem).IsZero())
	assert.True(t, reg.Code(smufl.NoSym).IsZero())
}

func TestResolveNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smufl.glyphs")
	defer teardown()
	//
	reg, err := Parse([]byte(testGlyphNames))
	require.NoError(t, err)
	id, ok := reg.Resolve("gClef")
	assert.True(t, ok)
	assert.Equal(t, smufl.GClef, id)
	// every enumerated name resolves, with or without codepoint
	id, ok = reg.Resolve("keyboardPedalPedDot")
	assert.True(t, ok)
	assert.Equal(t, smufl.KeyboardPedalPedDot, id)
	_, ok = reg.Resolve("brandNewGlyph2031")
	assert.False(t, ok, "names from newer standard revisions must not resolve")
	_, ok = reg.Resolve("gCle")
	assert.False(t, ok, "prefixes of names must not resolve")
	assert.Equal(t, "accidentalFlat", reg.Name(smufl.AccidentalFlat))
}

func TestNamesWithPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smufl.glyphs")
	defer teardown()
	//
	reg, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	names := reg.NamesWithPrefix("keyboardPedal")
	assert.Equal(t, []string{
		"keyboardPedalDot",
		"keyboardPedalHyphen",
		"keyboardPedalP",
		"keyboardPedalPed",
		"keyboardPedalPedDot",
		"keyboardPedalUp",
	}, names)
	assert.Empty(t, reg.NamesWithPrefix("zzz"))
}

func TestCorruptGlyphNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smufl.glyphs")
	defer teardown()
	//
	for _, doc := range []string{``, `[1,2]`, `{"gClef": `, `null`} {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, "document %q should not parse", doc)
		assert.Equal(t, core.ECORRUPT, core.Code(err))
	}
}

func TestDefaultRegistryOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smufl.glyphs")
	defer teardown()
	//
	const n = 16
	regs := make([]*Registry, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reg, err := Default()
			assert.NoError(t, err)
			regs[i] = reg
		}(i)
	}
	wg.Wait()
	require.NotNil(t, regs[0])
	for i := 1; i < n; i++ {
		assert.Same(t, regs[0], regs[i])
	}
	assert.Equal(t, smufl.Code{Primary: 0xE050, Fallback: 0x1D11E}, regs[0].Code(smufl.GClef))
	assert.True(t, regs[0].Code(smufl.GClefSmall).IsZero(), "gClefSmall is an optional glyph")
	assert.True(t, regs[0].Len() > 100)
}
