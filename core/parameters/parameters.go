/*
Package parameters holds engraving style parameters.

Score fonts may suggest values for a number of style parameters, such as the
thickness of staff lines or stems (SMuFL "engravingDefaults"). This package
enumerates the style parameters a font may override and maps SMuFL keys
onto them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
)

// StyleID identifies an engraving style parameter.
type StyleID int

const (
	none StyleID = iota
	StaffLineWidth
	StemWidth
	BeamWidth
	UseWideBeams
	LedgerLineWidth
	LedgerLineLength
	SlurEndWidth
	SlurMidWidth
	TieEndWidth
	TieMidWidth
	BarWidth
	DoubleBarWidth
	EndBarWidth
	DoubleBarDistance
	EndBarDistance
	RepeatBarlineDotSeparation
	BracketWidth
	HairpinLineWidth
	OttavaLineWidth
	PedalLineWidth
	VoltaLineWidth
	LyricsLineThickness
	TupletBracketWidth
	MusicalTextFont
	P_STOPPER
)

var styleNames = [P_STOPPER]string{
	none:                       "none",
	StaffLineWidth:             "staffLineWidth",
	StemWidth:                  "stemWidth",
	BeamWidth:                  "beamWidth",
	UseWideBeams:               "useWideBeams",
	LedgerLineWidth:            "ledgerLineWidth",
	LedgerLineLength:           "ledgerLineLength",
	SlurEndWidth:               "slurEndWidth",
	SlurMidWidth:               "slurMidWidth",
	TieEndWidth:                "tieEndWidth",
	TieMidWidth:                "tieMidWidth",
	BarWidth:                   "barWidth",
	DoubleBarWidth:             "doubleBarWidth",
	EndBarWidth:                "endBarWidth",
	DoubleBarDistance:          "doubleBarDistance",
	EndBarDistance:             "endBarDistance",
	RepeatBarlineDotSeparation: "repeatBarlineDotSeparation",
	BracketWidth:               "bracketWidth",
	HairpinLineWidth:           "hairpinLineWidth",
	OttavaLineWidth:            "ottavaLineWidth",
	PedalLineWidth:             "pedalLineWidth",
	VoltaLineWidth:             "voltaLineWidth",
	LyricsLineThickness:        "lyricsLineThickness",
	TupletBracketWidth:         "tupletBracketWidth",
	MusicalTextFont:            "musicalTextFont",
}

func (sid StyleID) String() string {
	if sid < none || sid >= P_STOPPER {
		return fmt.Sprintf("StyleID(%d)", int(sid))
	}
	return styleNames[sid]
}

// Spatium is a length in staff spaces.
type Spatium float64

// Value is a style value: a Spatium, a bool or a string.
type Value interface{}

// SMuFLKeys maps the keys of a font's "engravingDefaults" to the style
// parameters they set. A key may set more than one parameter.
// Keys "beamSpacing" and "textEnclosureThickness" get special treatment by
// the font loader.
var SMuFLKeys = map[string][]StyleID{
	"staffLineThickness":         {StaffLineWidth},
	"stemThickness":              {StemWidth},
	"beamThickness":              {BeamWidth},
	"beamSpacing":                {UseWideBeams},
	"legerLineThickness":         {LedgerLineWidth},
	"legerLineExtension":         {LedgerLineLength},
	"slurEndpointThickness":      {SlurEndWidth},
	"slurMidpointThickness":      {SlurMidWidth},
	"tieEndpointThickness":       {TieEndWidth},
	"tieMidpointThickness":       {TieMidWidth},
	"thinBarlineThickness":       {BarWidth, DoubleBarWidth},
	"thickBarlineThickness":      {EndBarWidth},
	"barlineSeparation":          {DoubleBarDistance},
	"thinThickBarlineSeparation": {EndBarDistance},
	"repeatBarlineDotSeparation": {RepeatBarlineDotSeparation},
	"bracketThickness":           {BracketWidth},
	"hairpinThickness":           {HairpinLineWidth},
	"octaveLineThickness":        {OttavaLineWidth},
	"pedalLineThickness":         {PedalLineWidth},
	"repeatEndingLineThickness":  {VoltaLineWidth},
	"lyricLineThickness":         {LyricsLineThickness},
	"tupletBracketThickness":     {TupletBracketWidth},
}

// WideBeamsThreshold is the beam spacing (in staff spaces) above which a
// font asks for wide beams.
const WideBeamsThreshold = 0.75

// ----------------------------------------------------------------------

// EngravingDefaults is a sparse table of style values a font overrides.
// Iteration is ordered by StyleID.
type EngravingDefaults struct {
	values *treemap.Map
}

// NewEngravingDefaults creates an empty table.
func NewEngravingDefaults() *EngravingDefaults {
	return &EngravingDefaults{values: treemap.NewWithIntComparator()}
}

// Set stores a value for a style parameter, replacing an existing one.
func (ed *EngravingDefaults) Set(key StyleID, value Value) {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of style parameters")
	}
	ed.values.Put(int(key), value)
}

// Get returns the value for a style parameter, if the font overrides it.
func (ed *EngravingDefaults) Get(key StyleID) (Value, bool) {
	if ed == nil {
		return nil, false
	}
	return ed.values.Get(int(key))
}

// S returns a string value, or "" if unset or not a string.
func (ed *EngravingDefaults) S(key StyleID) string {
	v, _ := ed.Get(key)
	s, _ := v.(string)
	return s
}

// Sp returns a Spatium value, or 0 if unset or not a Spatium.
func (ed *EngravingDefaults) Sp(key StyleID) Spatium {
	v, _ := ed.Get(key)
	sp, _ := v.(Spatium)
	return sp
}

// B returns a bool value, or false if unset or not a bool.
func (ed *EngravingDefaults) B(key StyleID) bool {
	v, _ := ed.Get(key)
	b, _ := v.(bool)
	return b
}

// Len is the number of style parameters set.
func (ed *EngravingDefaults) Len() int {
	if ed == nil {
		return 0
	}
	return ed.values.Size()
}

// Each calls f for every style parameter set, in order of StyleID.
func (ed *EngravingDefaults) Each(f func(StyleID, Value)) {
	if ed == nil {
		return
	}
	ed.values.Each(func(key, value interface{}) {
		f(StyleID(key.(int)), value)
	})
}

// Map returns a copy of the table as a Go map.
func (ed *EngravingDefaults) Map() map[StyleID]Value {
	m := make(map[StyleID]Value, ed.Len())
	ed.Each(func(key StyleID, value Value) {
		m[key] = value
	})
	return m
}
