package smufl

// SymID identifies a music glyph concept. The set of identifiers is closed;
// SymIDCount is the dimension of every per-font symbol table.
type SymID int

// Symbol identifiers. Names follow SMuFL, see SymID.Name().
const (
	NoSym SymID = iota

	// Staff brackets and dividers
	Brace
	BracketTop
	BracketBottom

	// Repeats
	RepeatDots
	RepeatDot
	Segno
	Coda
	CodaSquare

	// Clefs
	GClef
	GClef15mb
	GClef8vb
	GClef8va
	GClef15ma
	GClefSmall
	CClef
	CClef8vb
	CClefFrench
	FClef
	FClef15mb
	FClef8vb
	FClef8va
	FClefFrench
	UnpitchedPercussionClef1
	SixStringTabClef
	FourStringTabClef

	// Time signatures
	TimeSig0
	TimeSig1
	TimeSig2
	TimeSig3
	TimeSig4
	TimeSig5
	TimeSig6
	TimeSig7
	TimeSig8
	TimeSig9
	TimeSigCommon
	TimeSigCutCommon
	TimeSigPlus

	// Noteheads
	NoteheadDoubleWhole
	NoteheadWhole
	NoteheadHalf
	NoteheadBlack
	NoteheadNull
	NoteheadXBlack
	NoteheadBlackSmall

	// Augmentation dot, stems, flags
	AugmentationDot
	Stem
	Flag8thUp
	Flag8thDown
	Flag16thUp
	Flag16thDown
	Flag32ndUp
	Flag32ndDown

	// Accidentals
	AccidentalFlat
	AccidentalNatural
	AccidentalSharp
	AccidentalDoubleSharp
	AccidentalDoubleFlat
	AccidentalParensLeft
	AccidentalParensRight

	// Articulations
	ArticAccentAbove
	ArticAccentBelow
	ArticStaccatoAbove
	ArticStaccatoBelow
	ArticTenutoAbove
	ArticTenutoBelow
	ArticMarcatoAbove
	ArticMarcatoBelow

	// Holds and pauses
	FermataAbove
	FermataBelow
	BreathMarkComma
	Caesura

	// Rests
	RestWhole
	RestHalf
	RestQuarter
	Rest8th
	Rest16th
	Rest32nd

	// Octaves
	Ottava
	OttavaAlta
	OttavaBassa
	Quindicesima
	QuindicesimaAlta
	QuindicesimaBassa

	// Dynamics
	DynamicPiano
	DynamicMezzo
	DynamicForte
	DynamicRinforzando
	DynamicSforzando
	DynamicZ
	DynamicNiente
	DynamicPP
	DynamicMP
	DynamicMF
	DynamicFF
	DynamicSforzato

	// Ornaments
	OrnamentTrill
	OrnamentTurn
	OrnamentTurnInverted
	OrnamentShortTrill
	OrnamentMordent
	OrnamentTremblement
	OrnamentZigZagLineNoRightEnd
	OrnamentZigZagLineWithRightEnd
	OrnamentBottomLeftConcaveStroke
	OrnamentBottomRightConcaveStroke
	OrnamentLeftVerticalStroke

	// Keyboard pedals
	KeyboardPedalPed
	KeyboardPedalP
	KeyboardPedalDot
	KeyboardPedalUp
	KeyboardPedalHyphen

	// Tuplets
	Tuplet0
	Tuplet1
	Tuplet2
	Tuplet3
	Tuplet4
	Tuplet5
	Tuplet6
	Tuplet7
	Tuplet8
	Tuplet9
	TupletColon

	// Composed symbols, not part of the font's own glyph repertoire
	OrnamentPrallMordent
	OrnamentUpPrall
	OrnamentPrallDown
	KeyboardPedalPedDot

	SymIDCount // number of symbol identifiers, not a symbol
)

var symNames = [SymIDCount]string{
	NoSym: "noSym",

	Brace:         "brace",
	BracketTop:    "bracketTop",
	BracketBottom: "bracketBottom",

	RepeatDots: "repeatDots",
	RepeatDot:  "repeatDot",
	Segno:      "segno",
	Coda:       "coda",
	CodaSquare: "codaSquare",

	GClef:                    "gClef",
	GClef15mb:                "gClef15mb",
	GClef8vb:                 "gClef8vb",
	GClef8va:                 "gClef8va",
	GClef15ma:                "gClef15ma",
	GClefSmall:               "gClefSmall",
	CClef:                    "cClef",
	CClef8vb:                 "cClef8vb",
	CClefFrench:              "cClefFrench",
	FClef:                    "fClef",
	FClef15mb:                "fClef15mb",
	FClef8vb:                 "fClef8vb",
	FClef8va:                 "fClef8va",
	FClefFrench:              "fClefFrench",
	UnpitchedPercussionClef1: "unpitchedPercussionClef1",
	SixStringTabClef:         "6stringTabClef",
	FourStringTabClef:        "4stringTabClef",

	TimeSig0:         "timeSig0",
	TimeSig1:         "timeSig1",
	TimeSig2:         "timeSig2",
	TimeSig3:         "timeSig3",
	TimeSig4:         "timeSig4",
	TimeSig5:         "timeSig5",
	TimeSig6:         "timeSig6",
	TimeSig7:         "timeSig7",
	TimeSig8:         "timeSig8",
	TimeSig9:         "timeSig9",
	TimeSigCommon:    "timeSigCommon",
	TimeSigCutCommon: "timeSigCutCommon",
	TimeSigPlus:      "timeSigPlus",

	NoteheadDoubleWhole: "noteheadDoubleWhole",
	NoteheadWhole:       "noteheadWhole",
	NoteheadHalf:        "noteheadHalf",
	NoteheadBlack:       "noteheadBlack",
	NoteheadNull:        "noteheadNull",
	NoteheadXBlack:      "noteheadXBlack",
	NoteheadBlackSmall:  "noteheadBlackSmall",

	AugmentationDot: "augmentationDot",
	Stem:            "stem",
	Flag8thUp:       "flag8thUp",
	Flag8thDown:     "flag8thDown",
	Flag16thUp:      "flag16thUp",
	Flag16thDown:    "flag16thDown",
	Flag32ndUp:      "flag32ndUp",
	Flag32ndDown:    "flag32ndDown",

	AccidentalFlat:        "accidentalFlat",
	AccidentalNatural:     "accidentalNatural",
	AccidentalSharp:       "accidentalSharp",
	AccidentalDoubleSharp: "accidentalDoubleSharp",
	AccidentalDoubleFlat:  "accidentalDoubleFlat",
	AccidentalParensLeft:  "accidentalParensLeft",
	AccidentalParensRight: "accidentalParensRight",

	ArticAccentAbove:   "articAccentAbove",
	ArticAccentBelow:   "articAccentBelow",
	ArticStaccatoAbove: "articStaccatoAbove",
	ArticStaccatoBelow: "articStaccatoBelow",
	ArticTenutoAbove:   "articTenutoAbove",
	ArticTenutoBelow:   "articTenutoBelow",
	ArticMarcatoAbove:  "articMarcatoAbove",
	ArticMarcatoBelow:  "articMarcatoBelow",

	FermataAbove:    "fermataAbove",
	FermataBelow:    "fermataBelow",
	BreathMarkComma: "breathMarkComma",
	Caesura:         "caesura",

	RestWhole:   "restWhole",
	RestHalf:    "restHalf",
	RestQuarter: "restQuarter",
	Rest8th:     "rest8th",
	Rest16th:    "rest16th",
	Rest32nd:    "rest32nd",

	Ottava:            "ottava",
	OttavaAlta:        "ottavaAlta",
	OttavaBassa:       "ottavaBassa",
	Quindicesima:      "quindicesima",
	QuindicesimaAlta:  "quindicesimaAlta",
	QuindicesimaBassa: "quindicesimaBassa",

	DynamicPiano:       "dynamicPiano",
	DynamicMezzo:       "dynamicMezzo",
	DynamicForte:       "dynamicForte",
	DynamicRinforzando: "dynamicRinforzando",
	DynamicSforzando:   "dynamicSforzando",
	DynamicZ:           "dynamicZ",
	DynamicNiente:      "dynamicNiente",
	DynamicPP:          "dynamicPP",
	DynamicMP:          "dynamicMP",
	DynamicMF:          "dynamicMF",
	DynamicFF:          "dynamicFF",
	DynamicSforzato:    "dynamicSforzato",

	OrnamentTrill:                    "ornamentTrill",
	OrnamentTurn:                     "ornamentTurn",
	OrnamentTurnInverted:             "ornamentTurnInverted",
	OrnamentShortTrill:               "ornamentShortTrill",
	OrnamentMordent:                  "ornamentMordent",
	OrnamentTremblement:              "ornamentTremblement",
	OrnamentZigZagLineNoRightEnd:     "ornamentZigZagLineNoRightEnd",
	OrnamentZigZagLineWithRightEnd:   "ornamentZigZagLineWithRightEnd",
	OrnamentBottomLeftConcaveStroke:  "ornamentBottomLeftConcaveStroke",
	OrnamentBottomRightConcaveStroke: "ornamentBottomRightConcaveStroke",
	OrnamentLeftVerticalStroke:       "ornamentLeftVerticalStroke",

	KeyboardPedalPed:    "keyboardPedalPed",
	KeyboardPedalP:      "keyboardPedalP",
	KeyboardPedalDot:    "keyboardPedalDot",
	KeyboardPedalUp:     "keyboardPedalUp",
	KeyboardPedalHyphen: "keyboardPedalHyphen",

	Tuplet0:     "tuplet0",
	Tuplet1:     "tuplet1",
	Tuplet2:     "tuplet2",
	Tuplet3:     "tuplet3",
	Tuplet4:     "tuplet4",
	Tuplet5:     "tuplet5",
	Tuplet6:     "tuplet6",
	Tuplet7:     "tuplet7",
	Tuplet8:     "tuplet8",
	Tuplet9:     "tuplet9",
	TupletColon: "tupletColon",

	OrnamentPrallMordent: "ornamentPrallMordent",
	OrnamentUpPrall:      "ornamentUpPrall",
	OrnamentPrallDown:    "ornamentPrallDown",
	KeyboardPedalPedDot:  "keyboardPedalPedDot",
}

var symIDsByName = func() map[string]SymID {
	m := make(map[string]SymID, SymIDCount)
	for id := NoSym + 1; id < SymIDCount; id++ {
		m[symNames[id]] = id
	}
	return m
}()

// Name returns the canonical SMuFL name of a symbol.
func (id SymID) Name() string {
	if !id.IsValid() {
		return symNames[NoSym]
	}
	return symNames[id]
}

func (id SymID) String() string {
	return id.Name()
}

// IsValid is true for identifiers inside the enumeration, except NoSym.
func (id SymID) IsValid() bool {
	return id > NoSym && id < SymIDCount
}

// SymIDByName returns the identifier for a canonical glyph name.
// Unknown names and "noSym" return (NoSym, false).
func SymIDByName(name string) (SymID, bool) {
	id, ok := symIDsByName[name]
	return id, ok
}

// Names returns the canonical names of all symbols, in enumeration order,
// without "noSym".
func Names() []string {
	names := make([]string, 0, SymIDCount-1)
	for id := NoSym + 1; id < SymIDCount; id++ {
		names = append(names, symNames[id])
	}
	return names
}

// SymIDList is an ordered list of symbols, e.g. a horizontal run of glyphs.
type SymIDList []SymID

// ParseSymIDList resolves a list of canonical names. It returns the position
// of the first unresolvable name as an error index, or -1.
func ParseSymIDList(names []string) (SymIDList, int) {
	list := make(SymIDList, 0, len(names))
	for i, name := range names {
		id, ok := SymIDByName(name)
		if !ok {
			return nil, i
		}
		list = append(list, id)
	}
	return list, -1
}
