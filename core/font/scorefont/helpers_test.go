package scorefont

import (
	"image/draw"
	"testing"

	"github.com/npillmayer/smufl/core/dimen"
	"github.com/npillmayer/smufl/core/font"
	"github.com/npillmayer/smufl/core/font/glyphnames"
)

// --- Fake glyph backend ----------------------------------------------------

type fakeGlyph struct {
	box     dimen.Rect
	advance float64
}

type paintCall struct {
	code rune
	mag  dimen.Mag
	pos  dimen.Point
}

// fakeBackend has a 1000 unit em and reports its glyph metrics when
// measured at 1000.
type fakeBackend struct {
	glyphs  map[rune]fakeGlyph
	queries int
	painted []paintCall
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{glyphs: map[rune]fakeGlyph{
		0xE050: {dimen.R(0, 0, 20, 40), 22},   // gClef
		0xE051: {dimen.R(0, 0, 18, 36), 20},   // alternate gClef of ss01
		0xF472: {dimen.R(0, 0, 15, 30), 16},   // gClefSmall
		0xE0A4: {dimen.R(0, -5, 12, 10), 12},  // noteheadBlack
		0xE0A5: {dimen.R(0, 0, 0, 0), 12},     // noteheadNull, leaves no marks
		0xE1E7: {dimen.R(0, -2, 4, 4), 6},     // augmentationDot
		0x266D: {dimen.R(0, -20, 9, 27), 10},  // flat of Unicode block
		0xE650: {dimen.R(0, 0, 30, 10), 30},   // keyboardPedalPed
		0xE654: {dimen.R(0, 0, 5, 5), 5},      // keyboardPedalDot
		0xE521: {dimen.R(0, -8, 10, 8), 10},   // dynamicMezzo
		0xE522: {dimen.R(0, -8, 9, 12), 8},    // dynamicForte
		0xE52D: {dimen.R(0, -8, 19, 12), 19},  // dynamicMF
		0xF500: {dimen.R(0, -10, 8, 20), 8},   // alternate timeSig0
		0xE080: {dimen.R(0, -10, 9, 20), 9.5}, // timeSig0
	}}
}

func (fb *fakeBackend) UnitsPerEm() float64 { return 1000 }

func (fb *fakeBackend) HasGlyph(code rune) bool {
	_, ok := fb.glyphs[code]
	return ok
}

func (fb *fakeBackend) GlyphBox(code rune, size float64) dimen.Rect {
	fb.queries++
	return fb.glyphs[code].box.Scaled(dimen.Uniform(size / 1000))
}

func (fb *fakeBackend) GlyphAdvance(code rune, size float64) float64 {
	return fb.glyphs[code].advance * size / 1000
}

func (fb *fakeBackend) Paint(dst draw.Image, code rune, mag dimen.Mag, pos dimen.Point) {
	fb.painted = append(fb.painted, paintCall{code, mag, pos})
}

// --- Fixtures --------------------------------------------------------------

const testGlyphNames = `{
	"gClef": {"codepoint": "U+E050", "alternateCodepoint": "U+1D11E"},
	"noteheadBlack": {"codepoint": "U+E0A4", "alternateCodepoint": "U+1D158"},
	"noteheadNull": {"codepoint": "U+E0A5"},
	"augmentationDot": {"codepoint": "U+E1E7", "alternateCodepoint": "U+1D16D"},
	"accidentalFlat": {"codepoint": "U+E260", "alternateCodepoint": "U+266D"},
	"accidentalSharp": {"codepoint": "U+E262", "alternateCodepoint": "U+266F"},
	"keyboardPedalPed": {"codepoint": "U+E650", "alternateCodepoint": "U+1D1AE"},
	"keyboardPedalDot": {"codepoint": "U+E654"},
	"dynamicMezzo": {"codepoint": "U+E521"},
	"dynamicForte": {"codepoint": "U+E522"},
	"dynamicMF": {"codepoint": "U+E52D"},
	"timeSig0": {"codepoint": "U+E080"},
	"ornamentZigZagLineNoRightEnd": {"codepoint": "U+E59D"},
	"ornamentZigZagLineWithRightEnd": {"codepoint": "U+E59E"}
}`

const testMetadata = `{
	"fontName": "Testing",
	"fontVersion": 1.0,
	"engravingDefaults": {
		"staffLineThickness": 0.13,
		"thinBarlineThickness": 0.16,
		"beamSpacing": 0.25,
		"textEnclosureThickness": 0.16,
		"textFontFamily": ["Testing Text", "serif"],
		"stemThickness": "thick",
		"brandNewDefault": 1
	},
	"glyphsWithAnchors": {
		"noteheadBlack": {
			"stemUpSE": [1.18, 0.168],
			"stemDownNW": [0.0, -0.168],
			"stemDownSW": [0],
			"cutOutNE": "abc",
			"bogusAnchor": [1, 1]
		},
		"timeSig0": {"codepoint": "U+F500", "numeralTop": [0.0, 1.0]},
		"dynamicMF": {"opticalCenter": [0.5, 0.0]},
		"unknownGlyph": {"stemUpSE": [1, 1]},
		"augmentationDot": [1, 2]
	},
	"composedGlyphs": {
		"keyboardPedalPedDot": {"components": ["keyboardPedalPed", "keyboardPedalDot"]},
		"dynamicMF": {"components": ["dynamicMezzo", "dynamicForte"]},
		"ornamentPrallMordent": {"components": ["ornamentPrallMordent"]},
		"ornamentUpPrall": {"components": ["keyboardPedalPedDot"]},
		"ornamentPrallDown": {"components": ["noteheadBlack", "unknownGlyph"]},
		"ornamentTrill": {"components": ["noteheadBlack", "accidentalSharp"]}
	},
	"glyphsWithAlternates": {
		"gClef": {"alternates": [
			{"codepoint": "U+F472", "name": "gClefSmall"},
			{"codepoint": "U+E051", "name": "gClefAlternateOfSomeKind"}
		]}
	},
	"sets": {
		"ss01": {"description": "Testing alternates", "glyphs": [
			{"alternateFor": "gClef", "codepoint": "U+E051", "name": "gClefAlt"},
			{"alternateFor": "accidentalSharp", "codepoint": "U+F4FF", "name": "accidentalSharpAlt"}
		]}
	}
}`

var testDescriptor = font.Descriptor{
	Name:     "Testing",
	Family:   "Testing",
	Path:     "Testing",
	Filename: "Testing.otf",
}

func testRegistry(t *testing.T) *glyphnames.Registry {
	names, err := glyphnames.Parse([]byte(testGlyphNames))
	if err != nil {
		t.Fatalf("cannot parse test glyph names: %v", err)
	}
	return names
}

func loadTestFont(t *testing.T, opts ...Option) (*Font, *fakeBackend) {
	fb := newFakeBackend()
	opts = append([]Option{WithBackend(fb), WithMetadataBytes([]byte(testMetadata))}, opts...)
	f := New(testDescriptor, testRegistry(t), opts...)
	if err := f.Load(); err != nil {
		t.Fatalf("cannot load test font: %v", err)
	}
	return f, fb
}
