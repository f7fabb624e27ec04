package glyphnames

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/derekparker/trie"
	"github.com/npillmayer/smufl/core"
	"github.com/npillmayer/smufl/core/font/smufl"
	"github.com/npillmayer/smufl/core/locate/resources"
)

// Registry maps canonical glyph names to symbol identifiers, and symbol
// identifiers to codepoints. A registry is immutable after creation and
// shared by all fonts.
type Registry struct {
	codes [smufl.SymIDCount]smufl.Code
	index *trie.Trie
	known int
}

type glyphEntry struct {
	Codepoint          string `json:"codepoint"`
	AlternateCodepoint string `json:"alternateCodepoint"`
	Description        string `json:"description"`
}

// Parse interprets a SMuFL glyph-name table (glyphnames.json).
//
// Names outside the symbol enumeration are skipped: they stem from newer
// revisions of the standard. Entries with malformed codepoints are dropped.
// If data is not a JSON object, Parse fails with an error of code ECORRUPT.
func Parse(data []byte) (*Registry, error) {
	var table map[string]json.RawMessage
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, core.WrapError(err, core.ECORRUPT, "glyph name table cannot be parsed")
	}
	if table == nil {
		return nil, core.Error(core.ECORRUPT, "glyph name table is empty")
	}
	reg := newRegistry()
	skipped := 0
	for name, raw := range table {
		id, ok := smufl.SymIDByName(name)
		if !ok {
			skipped++
			tracer().Debugf("glyph name %q unknown, skipped", name)
			continue
		}
		var entry glyphEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			tracer().Errorf("glyph %s: malformed entry: %v", name, err)
			continue
		}
		code, err := entry.code()
		if err != nil {
			tracer().Errorf("glyph %s: %v", name, err)
			continue
		}
		reg.codes[id] = code
		reg.known++
	}
	if skipped > 0 {
		tracer().Infof("%d glyph names unknown to this version, skipped", skipped)
	}
	tracer().Infof("glyph name registry knows codepoints for %d symbols", reg.known)
	return reg, nil
}

func newRegistry() *Registry {
	reg := &Registry{index: trie.New()}
	for id := smufl.NoSym + 1; id < smufl.SymIDCount; id++ {
		reg.index.Add(id.Name(), id)
	}
	return reg
}

func (e glyphEntry) code() (code smufl.Code, err error) {
	if e.Codepoint != "" {
		if code.Primary, err = smufl.ParseCodepoint(e.Codepoint); err != nil {
			return
		}
	}
	if e.AlternateCodepoint != "" {
		if code.Fallback, err = smufl.ParseCodepoint(e.AlternateCodepoint); err != nil {
			return
		}
	}
	if code.IsZero() {
		err = core.Error(core.EINVALID, "no codepoint")
	}
	return
}

// Resolve returns the symbol for a canonical glyph name.
func (reg *Registry) Resolve(name string) (smufl.SymID, bool) {
	node, ok := reg.index.Find(name)
	if !ok {
		return smufl.NoSym, false
	}
	id, ok := node.Meta().(smufl.SymID)
	return id, ok
}

// Code returns the codepoints of a symbol. Symbols without an entry in the
// glyph-name table have a zero Code.
func (reg *Registry) Code(id smufl.SymID) smufl.Code {
	if !id.IsValid() {
		return smufl.Code{}
	}
	return reg.codes[id]
}

// Name returns the canonical name of a symbol.
func (reg *Registry) Name(id smufl.SymID) string {
	return id.Name()
}

// Len is the number of symbols with codepoints.
func (reg *Registry) Len() int {
	return reg.known
}

// NamesWithPrefix lists all canonical glyph names starting with prefix,
// sorted.
func (reg *Registry) NamesWithPrefix(prefix string) []string {
	names := reg.index.PrefixSearch(prefix)
	sort.Strings(names)
	return names
}

// --- Process-wide registry -------------------------------------------------

var defaultRegistry *Registry
var defaultRegistryErr error
var defaultRegistryCreation sync.Once

// Default returns the application-wide registry, built from the glyph-name
// table packaged with this module. It is created exactly once, even if
// called concurrently. If creation fails, every call returns the same error.
func Default() (*Registry, error) {
	defaultRegistryCreation.Do(func() {
		data, err := resources.GlyphNames()
		if err != nil {
			defaultRegistryErr = err
			return
		}
		defaultRegistry, defaultRegistryErr = Parse(data)
	})
	return defaultRegistry, defaultRegistryErr
}
