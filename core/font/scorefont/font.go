package scorefont

import (
	"github.com/npillmayer/smufl/core/dimen"
	"github.com/npillmayer/smufl/core/font"
	"github.com/npillmayer/smufl/core/font/glyphnames"
	"github.com/npillmayer/smufl/core/font/smufl"
	"github.com/npillmayer/smufl/core/parameters"
)

// Symbol holds the metrics of a symbol within a font, at magnitude 1 and in
// design units. The zero Symbol is the content of every unset slot.
type Symbol struct {
	Code       rune                           // codepoint in the font, 0 if absent
	Box        dimen.Rect                     // bounding box, y pointing down
	Advance    float64                        // horizontal advance
	Anchors    map[smufl.AnchorID]dimen.Point // anchors, relative to the glyph origin
	SubSymbols []smufl.SymID                  // non-empty for composed symbols
}

// IsValid is true if the font has a glyph for the symbol which leaves marks.
func (s Symbol) IsValid() bool {
	return s.Code != 0 && s.Box.IsValid()
}

// IsCompound is true for symbols drawn as a sequence of other symbols.
func (s Symbol) IsCompound() bool {
	return len(s.SubSymbols) > 0
}

// measurable is true for symbols with metrics: valid glyphs and compounds.
func (s Symbol) measurable() bool {
	return s.IsValid() || s.IsCompound()
}

func (s Symbol) clone() Symbol {
	c := s
	if s.Anchors != nil {
		c.Anchors = make(map[smufl.AnchorID]dimen.Point, len(s.Anchors))
		for a, p := range s.Anchors {
			c.Anchors[a] = p
		}
	}
	if s.SubSymbols != nil {
		c.SubSymbols = append([]smufl.SymID(nil), s.SubSymbols...)
	}
	return c
}

var noSymbol = Symbol{}

// ---------------------------------------------------------------------------

// Font is a score font: a table of symbols plus the engraving defaults the
// font asks for. A Font is created empty and filled by Load.
type Font struct {
	desc                   font.Descriptor
	names                  *glyphnames.Registry
	backend                Backend
	metadata               func() ([]byte, error)
	stylisticSet           string
	upem                   float64
	symbols                []Symbol
	byCode                 map[rune]smufl.SymID
	engravingDefaults      *parameters.EngravingDefaults
	textEnclosureThickness float64
	loaded                 bool
}

// Option configures a Font at creation time.
type Option func(*Font)

// WithBackend sets the rendering backend which measures and paints glyphs.
func WithBackend(b Backend) Option {
	return func(f *Font) {
		f.backend = b
	}
}

// WithMetadata sets the source of the font's SMuFL metadata document.
// It is called once, during Load.
func WithMetadata(source func() ([]byte, error)) Option {
	return func(f *Font) {
		f.metadata = source
	}
}

// WithMetadataBytes is WithMetadata for a document already in memory.
func WithMetadataBytes(data []byte) Option {
	return WithMetadata(func() ([]byte, error) {
		return data, nil
	})
}

// WithStylisticSet selects a stylistic set ("ss01", ...) from the
// metadata section "sets".
func WithStylisticSet(set string) Option {
	return func(f *Font) {
		f.stylisticSet = set
	}
}

// New creates an unloaded font. names must not be nil.
func New(desc font.Descriptor, names *glyphnames.Registry, opts ...Option) *Font {
	if names == nil {
		panic("score font needs a glyph name registry")
	}
	f := &Font{
		desc:              desc,
		names:             names,
		symbols:           make([]Symbol, smufl.SymIDCount),
		byCode:            make(map[rune]smufl.SymID),
		engravingDefaults: parameters.NewEngravingDefaults(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name is the unique name of the font.
func (f *Font) Name() string { return f.desc.Name }

// Family is the font family.
func (f *Font) Family() string { return f.desc.Family }

// FontPath is the folder of the font file, relative to a font directory.
func (f *Font) FontPath() string { return f.desc.Path }

// Filename is the name of the font file.
func (f *Font) Filename() string { return f.desc.Filename }

// Descriptor returns the descriptor the font was created from.
func (f *Font) Descriptor() font.Descriptor { return f.desc }

// IsLoaded is true after Load has run, successful or not.
func (f *Font) IsLoaded() bool { return f.loaded }

// UnitsPerEm is the design grid of the font, 0 before loading.
func (f *Font) UnitsPerEm() float64 { return f.upem }

// StylisticSet is the selected stylistic set, if any.
func (f *Font) StylisticSet() string { return f.stylisticSet }

// EngravingDefaults returns the style values the font overrides.
// Lengths are in staff spaces.
func (f *Font) EngravingDefaults() *parameters.EngravingDefaults {
	return f.engravingDefaults
}

// TextEnclosureThickness is the thickness of boxes around text, in staff
// spaces, or 0 if the font does not say.
func (f *Font) TextEnclosureThickness() float64 {
	return f.textEnclosureThickness
}

// Symbol returns a copy of the table entry for id.
func (f *Font) Symbol(id smufl.SymID) Symbol {
	return f.sym(id).clone()
}

func (f *Font) sym(id smufl.SymID) *Symbol {
	if !id.IsValid() {
		return &noSymbol
	}
	return &f.symbols[id]
}
