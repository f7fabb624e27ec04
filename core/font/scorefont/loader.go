package scorefont

import (
	"encoding/json"
	"sort"

	"github.com/npillmayer/smufl/core"
	"github.com/npillmayer/smufl/core/dimen"
	"github.com/npillmayer/smufl/core/font/smufl"
	"github.com/npillmayer/smufl/core/parameters"
)

// Load fills the symbol table of a font. It runs exactly once; subsequent
// calls return nil and leave the table untouched.
//
// Loading happens in passes:
//
//   - base glyphs and anchors
//   - composed glyphs
//   - stylistic alternates
//   - engraving defaults
//
// Problems with single metadata entries are traced and the entries dropped.
// If the metadata document is missing or corrupt, Load returns an error
// after the base glyphs have been measured. A font without a backend is
// loaded with an empty table and reports EMISSING.
func (f *Font) Load() error {
	if f.loaded {
		return nil
	}
	f.loaded = true
	if f.backend == nil {
		return core.Error(core.EMISSING, "score font %s has no glyph backend", f.desc.Name)
	}
	f.upem = f.backend.UnitsPerEm()
	if f.upem <= 0 {
		return core.Error(core.EINVALID, "score font %s reports %g units per em", f.desc.Name, f.upem)
	}
	tracer().Debugf("loading score font %s, %g units per em", f.desc.Name, f.upem)
	f.loadBaseGlyphs()
	md, err := f.readMetadata()
	if err != nil {
		f.buildCodeIndex()
		return err
	}
	f.loadAnchors(md["glyphsWithAnchors"])
	f.loadComposedGlyphs(md["composedGlyphs"])
	f.loadAlternates(md["glyphsWithAlternates"])
	f.loadStylisticSet(md["sets"])
	f.loadEngravingDefaults(md["engravingDefaults"])
	f.buildCodeIndex()
	tracer().Infof("score font %s loaded, %d symbols available", f.desc.Name, len(f.byCode))
	return nil
}

// computeMetrics sets code and metrics of a symbol from the glyph for code,
// preferring the SMuFL codepoint over the Unicode one. It returns false and
// leaves the symbol unchanged if the backend has neither.
func (f *Font) computeMetrics(sym *Symbol, code smufl.Code) bool {
	var r rune
	switch {
	case code.Primary != 0 && f.backend.HasGlyph(code.Primary):
		r = code.Primary
	case code.Fallback != 0 && f.backend.HasGlyph(code.Fallback):
		r = code.Fallback
	default:
		return false
	}
	sym.Code = r
	sym.Box = f.backend.GlyphBox(r, f.upem)
	sym.Advance = f.backend.GlyphAdvance(r, f.upem)
	return true
}

func (f *Font) loadBaseGlyphs() {
	missing := 0
	for id := smufl.NoSym + 1; id < smufl.SymIDCount; id++ {
		code := f.names.Code(id)
		if code.IsZero() {
			continue
		}
		if !f.computeMetrics(&f.symbols[id], code) {
			missing++
		}
	}
	if missing > 0 {
		tracer().Debugf("score font %s lacks %d glyphs", f.desc.Name, missing)
	}
}

// readMetadata returns the top-level sections of the metadata document.
func (f *Font) readMetadata() (map[string]json.RawMessage, error) {
	if f.metadata == nil {
		return nil, core.Error(core.EMISSING, "no metadata for score font %s", f.desc.Name)
	}
	data, err := f.metadata()
	if err != nil {
		return nil, err
	}
	var md map[string]json.RawMessage
	if err = json.Unmarshal(data, &md); err != nil {
		return nil, core.WrapError(err, core.ECORRUPT, "metadata of score font %s corrupt", f.desc.Name)
	}
	if md == nil {
		return nil, core.Error(core.ECORRUPT, "metadata of score font %s is empty", f.desc.Name)
	}
	return md, nil
}

// section splits a metadata section into its entries. A section which is
// absent yields no entries.
func (f *Font) section(name string, raw json.RawMessage) map[string]json.RawMessage {
	if raw == nil {
		return nil
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		tracer().Errorf("score font %s: section %s malformed: %v", f.desc.Name, name, err)
		return nil
	}
	return entries
}

func (f *Font) resolve(section, name string) (smufl.SymID, bool) {
	id, ok := f.names.Resolve(name)
	if !ok {
		tracer().Debugf("score font %s: %s: unknown glyph %q", f.desc.Name, section, name)
	}
	return id, ok
}

// --- Anchors ---------------------------------------------------------------

func (f *Font) loadAnchors(raw json.RawMessage) {
	for name, entry := range f.section("glyphsWithAnchors", raw) {
		id, ok := f.resolve("glyphsWithAnchors", name)
		if !ok {
			continue
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(entry, &fields); err != nil {
			tracer().Errorf("score font %s: anchors of %s malformed", f.desc.Name, name)
			continue
		}
		sym := &f.symbols[id]
		if cp, ok := fields["codepoint"]; ok {
			f.overrideCode(sym, name, cp)
		}
		for key, value := range fields {
			if key == "codepoint" {
				continue
			}
			anchor, ok := smufl.AnchorByName(key)
			if !ok {
				tracer().Debugf("score font %s: %s: unknown anchor %q", f.desc.Name, name, key)
				continue
			}
			p, err := f.anchorPosition(value)
			if err != nil {
				tracer().Errorf("score font %s: %s: anchor %s: %v", f.desc.Name, name, key, err)
				continue
			}
			if sym.Anchors == nil {
				sym.Anchors = make(map[smufl.AnchorID]dimen.Point)
			}
			sym.Anchors[anchor] = p
		}
	}
}

func (f *Font) overrideCode(sym *Symbol, name string, raw json.RawMessage) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		tracer().Errorf("score font %s: %s: codepoint malformed", f.desc.Name, name)
		return
	}
	cp, err := smufl.ParseCodepoint(s)
	if err != nil {
		tracer().Errorf("score font %s: %s: %v", f.desc.Name, name, err)
		return
	}
	f.computeMetrics(sym, smufl.Code{Primary: cp})
}

// anchorPosition converts an anchor from staff spaces (y up) to design
// units (y down).
func (f *Font) anchorPosition(raw json.RawMessage) (dimen.Point, error) {
	var xy []float64
	if err := json.Unmarshal(raw, &xy); err != nil {
		return dimen.Point{}, core.WrapError(err, core.EINVALID, "anchor is not a list of numbers")
	}
	if len(xy) != 2 {
		return dimen.Point{}, core.Error(core.EINVALID, "anchor has %d coordinates", len(xy))
	}
	return dimen.Point{
		X: dimen.StaffSpaces(xy[0], f.upem),
		Y: -dimen.StaffSpaces(xy[1], f.upem),
	}, nil
}

// --- Composed glyphs -------------------------------------------------------

// loadComposedGlyphs applies the built-in compositions, then those of the
// metadata. Metadata entries are collected first and applied in SymID order.
// A component which is the target of another metadata entry is rejected,
// independent of the order of entries, so compositions stay one level deep.
func (f *Font) loadComposedGlyphs(raw json.RawMessage) {
	for _, c := range builtinCompositions {
		if f.symbols[c.id].IsValid() {
			continue
		}
		f.compose(c.id, c.components)
	}
	var comps []composition
	targets := make(map[smufl.SymID]bool)
	for name, entry := range f.section("composedGlyphs", raw) {
		id, ok := f.resolve("composedGlyphs", name)
		if !ok {
			continue
		}
		var comp struct {
			Components []string `json:"components"`
		}
		if err := json.Unmarshal(entry, &comp); err != nil {
			tracer().Errorf("score font %s: composition of %s malformed", f.desc.Name, name)
			continue
		}
		components, bad := smufl.ParseSymIDList(comp.Components)
		if bad >= 0 {
			tracer().Errorf("score font %s: composition of %s: unknown component %q",
				f.desc.Name, name, comp.Components[bad])
			continue
		}
		targets[id] = true
		comps = append(comps, composition{id, components})
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i].id < comps[j].id })
next:
	for _, c := range comps {
		for _, component := range c.components {
			if component != c.id && targets[component] {
				tracer().Errorf("score font %s: %s: component %s is composed itself",
					f.desc.Name, c.id, component)
				continue next
			}
		}
		f.compose(c.id, c.components)
	}
}

// --- Stylistic alternates --------------------------------------------------

type alternate struct {
	Codepoint    string `json:"codepoint"`
	Name         string `json:"name"`
	AlternateFor string `json:"alternateFor"`
}

func (alt alternate) code() (rune, error) {
	return smufl.ParseCodepoint(alt.Codepoint)
}

// loadAlternates measures alternate glyphs which have a symbol of their own,
// e.g. gClefSmall as an alternate of gClef.
func (f *Font) loadAlternates(raw json.RawMessage) {
	for base, entry := range f.section("glyphsWithAlternates", raw) {
		var alts struct {
			Alternates []alternate `json:"alternates"`
		}
		if err := json.Unmarshal(entry, &alts); err != nil {
			tracer().Errorf("score font %s: alternates of %s malformed", f.desc.Name, base)
			continue
		}
		for _, alt := range alts.Alternates {
			id, ok := f.names.Resolve(alt.Name)
			if !ok || f.symbols[id].IsCompound() {
				continue // most alternates have no symbol of their own
			}
			cp, err := alt.code()
			if err != nil {
				tracer().Errorf("score font %s: alternate %s: %v", f.desc.Name, alt.Name, err)
				continue
			}
			f.computeMetrics(&f.symbols[id], smufl.Code{Primary: cp})
		}
	}
}

// loadStylisticSet replaces glyphs by the alternates of the selected set.
// Composed symbols keep their components.
func (f *Font) loadStylisticSet(raw json.RawMessage) {
	if f.stylisticSet == "" {
		return
	}
	entry, ok := f.section("sets", raw)[f.stylisticSet]
	if !ok {
		tracer().Infof("score font %s has no stylistic set %s", f.desc.Name, f.stylisticSet)
		return
	}
	var set struct {
		Description string      `json:"description"`
		Glyphs      []alternate `json:"glyphs"`
	}
	if err := json.Unmarshal(entry, &set); err != nil {
		tracer().Errorf("score font %s: stylistic set %s malformed", f.desc.Name, f.stylisticSet)
		return
	}
	tracer().Debugf("score font %s: using stylistic set %s (%s)", f.desc.Name, f.stylisticSet, set.Description)
	for _, alt := range set.Glyphs {
		id, ok := f.resolve("sets", alt.AlternateFor)
		if !ok {
			continue
		}
		if f.symbols[id].IsCompound() {
			tracer().Debugf("score font %s: set %s: %s is composed, alternate ignored",
				f.desc.Name, f.stylisticSet, alt.AlternateFor)
			continue
		}
		cp, err := alt.code()
		if err != nil {
			tracer().Errorf("score font %s: set %s: %s: %v", f.desc.Name, f.stylisticSet, alt.AlternateFor, err)
			continue
		}
		if !f.computeMetrics(&f.symbols[id], smufl.Code{Primary: cp}) {
			tracer().Debugf("score font %s: no glyph %s for %s", f.desc.Name, smufl.FormatCodepoint(cp), alt.AlternateFor)
		}
	}
}

// --- Engraving defaults ----------------------------------------------------

func (f *Font) loadEngravingDefaults(raw json.RawMessage) {
	for key, entry := range f.section("engravingDefaults", raw) {
		styles, known := parameters.SMuFLKeys[key]
		if !known && key != "textEnclosureThickness" {
			tracer().Debugf("score font %s: engraving default %s ignored", f.desc.Name, key)
			continue
		}
		var v float64
		if err := json.Unmarshal(entry, &v); err != nil {
			tracer().Errorf("score font %s: engraving default %s is not a number", f.desc.Name, key)
			continue
		}
		switch key {
		case "textEnclosureThickness":
			f.textEnclosureThickness = v
		case "beamSpacing":
			f.engravingDefaults.Set(parameters.UseWideBeams, v > parameters.WideBeamsThreshold)
		default:
			for _, style := range styles {
				f.engravingDefaults.Set(style, parameters.Spatium(v))
			}
		}
	}
	f.engravingDefaults.Set(parameters.MusicalTextFont, f.desc.TextFontName())
}

// ---------------------------------------------------------------------------

// buildCodeIndex creates the reverse mapping from codepoints to symbols.
// If symbols share a codepoint, the lowest SymID wins.
func (f *Font) buildCodeIndex() {
	f.byCode = make(map[rune]smufl.SymID)
	for id := smufl.NoSym + 1; id < smufl.SymIDCount; id++ {
		code := f.symbols[id].Code
		if code == 0 {
			continue
		}
		if _, dup := f.byCode[code]; !dup {
			f.byCode[code] = id
		}
	}
}
