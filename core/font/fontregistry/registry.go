package fontregistry

import (
	"sync"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smufl/core"
	"github.com/npillmayer/smufl/core/font"
	"github.com/npillmayer/smufl/core/font/glyphnames"
	"github.com/npillmayer/smufl/core/font/scorefont"
	"github.com/npillmayer/smufl/core/font/sfntbackend"
	"github.com/npillmayer/smufl/core/locate/resources"
	"golang.org/x/text/cases"
)

// DefaultFallbackFont is the font asked for symbols other fonts lack.
const DefaultFallbackFont = "Bravura"

// DefaultFonts are the score fonts an application knows about.
var DefaultFonts = []font.Descriptor{
	{Name: "Leland", Family: "Leland", Path: "leland", Filename: "Leland.otf"},
	{Name: "Bravura", Family: "Bravura", Path: "bravura", Filename: "Bravura.otf"},
	{Name: "Emmentaler", Family: "Emmentaler", Path: "mscore", Filename: "mscore.ttf"},
	{Name: "Gonville", Family: "Gonville", Path: "gootville", Filename: "Gootville.otf"},
	{Name: "MuseJazz", Family: "MuseJazz", Path: "musejazz", Filename: "MuseJazz.otf"},
	{Name: "Petaluma", Family: "Petaluma", Path: "petaluma", Filename: "Petaluma.otf"},
	{Name: "Finale Maestro", Family: "Finale Maestro", Path: "finalemaestro", Filename: "FinaleMaestro.otf"},
	{Name: "Finale Broadway", Family: "Finale Broadway", Path: "finalebroadway", Filename: "FinaleBroadway.otf"},
}

// Resolver locates the files of a score font.
type Resolver func(desc font.Descriptor) (resources.FontFiles, error)

// BackendFactory creates the glyph backend for a font from its files.
type BackendFactory func(desc font.Descriptor, files resources.FontFiles) (scorefont.Backend, error)

// MetadataFactory returns the SMuFL metadata document of a font.
type MetadataFactory func(desc font.Descriptor, files resources.FontFiles) ([]byte, error)

// Catalog is the set of score fonts known to an application. After Load,
// a catalog is read-only and may be used concurrently.
type Catalog struct {
	names    *glyphnames.Registry
	descs    []font.Descriptor
	conf     schuko.Configuration
	resolve  Resolver
	backend  BackendFactory
	metadata MetadataFactory
	fonts    []*scorefont.Font
	byName   map[string]*scorefont.Font
	loaded   bool
}

// Option configures a catalog.
type Option func(*Catalog)

// WithConfig sets the configuration to use for locating fonts, selecting a
// stylistic set and the fallback font.
func WithConfig(conf schuko.Configuration) Option {
	return func(c *Catalog) {
		c.conf = conf
	}
}

// WithResolver replaces the default way of locating font files.
func WithResolver(r Resolver) Option {
	return func(c *Catalog) {
		c.resolve = r
	}
}

// WithBackends replaces the default glyph backend, which reads font files
// with package sfntbackend.
func WithBackends(f BackendFactory) Option {
	return func(c *Catalog) {
		c.backend = f
	}
}

// WithMetadata replaces the default source of metadata documents.
func WithMetadata(f MetadataFactory) Option {
	return func(c *Catalog) {
		c.metadata = f
	}
}

// NewCatalog creates a catalog of unloaded fonts.
func NewCatalog(names *glyphnames.Registry, descs []font.Descriptor, opts ...Option) *Catalog {
	c := &Catalog{
		names:  names,
		descs:  descs,
		byName: make(map[string]*scorefont.Font, len(descs)),
	}
	c.resolve = c.resolveFiles
	c.backend = openBackend
	c.metadata = packagedOrFound
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load loads all fonts of the catalog. Fonts which cannot be located or
// loaded completely are kept, with the symbols which could be loaded; the
// problems are written to the trace. Load runs only once.
func (c *Catalog) Load() {
	if c.loaded {
		return
	}
	c.loaded = true
	var opts []scorefont.Option
	if set := c.confString(resources.ConfStylisticSet); set != "" {
		opts = append(opts, scorefont.WithStylisticSet(set))
	}
	files := make([]func() (resources.FontFiles, error), len(c.descs))
	for i, desc := range c.descs {
		files[i] = c.await(desc)
	}
	for i, desc := range c.descs {
		ff, err := files[i]()
		if err != nil {
			tracer().Infof("score font %s: %v", desc.Name, err)
		}
		fopts := append([]scorefont.Option(nil), opts...)
		if b, err := c.backend(desc, ff); err == nil {
			fopts = append(fopts, scorefont.WithBackend(b))
		} else {
			tracer().Errorf("score font %s: %v", desc.Name, err)
		}
		desc := desc
		fopts = append(fopts, scorefont.WithMetadata(func() ([]byte, error) {
			return c.metadata(desc, ff)
		}))
		f := scorefont.New(desc, c.names, fopts...)
		if err = f.Load(); err != nil {
			tracer().Errorf("score font %s: %v", desc.Name, err)
		}
		c.fonts = append(c.fonts, f)
		key := fold(desc.Name)
		if _, dup := c.byName[key]; !dup {
			c.byName[key] = f
		}
	}
	tracer().Infof("font catalog holds %d score fonts", len(c.fonts))
}

// await starts resolution of a font's files and returns a function to
// wait for the result.
func (c *Catalog) await(desc font.Descriptor) func() (resources.FontFiles, error) {
	ch := make(chan struct{})
	var files resources.FontFiles
	var err error
	go func() {
		defer close(ch)
		files, err = c.resolve(desc)
	}()
	return func() (resources.FontFiles, error) {
		<-ch
		return files, err
	}
}

// Fonts returns the fonts of the catalog, in order of their descriptors.
func (c *Catalog) Fonts() []*scorefont.Font {
	return append([]*scorefont.Font(nil), c.fonts...)
}

// FontByName returns the font with a given name, ignoring case, or nil.
func (c *Catalog) FontByName(name string) *scorefont.Font {
	return c.byName[fold(name)]
}

// FallbackFont is the font for symbols other fonts cannot display.
// It may be set with configuration key "scorefont.fallback".
func (c *Catalog) FallbackFont() *scorefont.Font {
	name := c.confString(resources.ConfFallbackFont)
	if name == "" {
		name = DefaultFallbackFont
	}
	f := c.FontByName(name)
	if f == nil && name != DefaultFallbackFont {
		tracer().Errorf("fallback font %s not in catalog", name)
		f = c.FontByName(DefaultFallbackFont)
	}
	return f
}

// FallbackTextFont is the name of the text font accompanying the fallback
// font.
func (c *Catalog) FallbackTextFont() string {
	if f := c.FallbackFont(); f != nil {
		return f.Descriptor().TextFontName()
	}
	return font.Descriptor{Family: DefaultFallbackFont}.TextFontName()
}

// LogFontList is a helper function to dump the list of fonts to the trace
// (log-level Info).
func (c *Catalog) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- score fonts ---")
	for _, f := range c.fonts {
		tracer().Infof("font [%s] family=%s file=%s", f.Name(), f.Family(), f.Filename())
	}
	tracer().Infof("-------------------")
	tracer().SetTraceLevel(level)
}

func (c *Catalog) confString(key string) string {
	if c.conf == nil {
		return ""
	}
	return c.conf.GetString(key)
}

func (c *Catalog) resolveFiles(desc font.Descriptor) (resources.FontFiles, error) {
	return resources.ResolveScoreFont(c.conf, desc).FontFiles()
}

func openBackend(desc font.Descriptor, files resources.FontFiles) (scorefont.Backend, error) {
	if files.FontPath == "" {
		return nil, core.Error(core.EMISSING, "no font file for %s", desc.Name)
	}
	return sfntbackend.Open(files.FontPath)
}

func packagedOrFound(desc font.Descriptor, files resources.FontFiles) ([]byte, error) {
	if files.Metadata != nil {
		return files.Metadata, nil
	}
	return resources.PackagedMetadata(desc.Name)
}

func fold(name string) string {
	return cases.Fold().String(name)
}

// --- Application-wide catalog ----------------------------------------------

var scoreFonts *Catalog
var scoreFontsErr error
var scoreFontsCreation sync.Once

// InitScoreFonts loads the default score fonts into the application-wide
// catalog. It does its work once; later calls return the result of the
// first one. An error is returned only if the glyph name registry cannot
// be set up.
func InitScoreFonts(conf schuko.Configuration) error {
	scoreFontsCreation.Do(func() {
		names, err := glyphnames.Default()
		if err != nil {
			scoreFontsErr = core.WrapError(err, core.EINTERNAL, "cannot initialize score fonts")
			return
		}
		c := NewCatalog(names, DefaultFonts, WithConfig(conf))
		c.Load()
		scoreFonts = c
	})
	return scoreFontsErr
}

// ScoreFonts returns the fonts of the application-wide catalog.
func ScoreFonts() []*scorefont.Font {
	if scoreFonts == nil {
		return nil
	}
	return scoreFonts.Fonts()
}

// FontByName returns a font of the application-wide catalog, or nil.
func FontByName(name string) *scorefont.Font {
	if scoreFonts == nil {
		return nil
	}
	return scoreFonts.FontByName(name)
}

// FallbackFont returns the fallback font of the application-wide catalog.
func FallbackFont() *scorefont.Font {
	if scoreFonts == nil {
		return nil
	}
	return scoreFonts.FallbackFont()
}
