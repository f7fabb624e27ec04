package smufl

import (
	"fmt"
	"strconv"
	"strings"
)

// AnchorID names an attachment point of a glyph.
type AnchorID int

// SMuFL anchors.
const (
	NoAnchor AnchorID = iota
	StemUpSE
	StemDownNW
	StemUpNW
	StemDownSW
	CutOutNE
	CutOutNW
	CutOutSE
	CutOutSW
	OpticalCenter
	NominalWidth
	NumeralTop
	NumeralBottom
	GraceNoteSlashSW
	GraceNoteSlashNE
	GraceNoteSlashNW
	GraceNoteSlashSE
	RepeatOffset
	NoteheadOrigin
	anchorCount
)

var anchorNames = [anchorCount]string{
	NoAnchor:         "",
	StemUpSE:         "stemUpSE",
	StemDownNW:       "stemDownNW",
	StemUpNW:         "stemUpNW",
	StemDownSW:       "stemDownSW",
	CutOutNE:         "cutOutNE",
	CutOutNW:         "cutOutNW",
	CutOutSE:         "cutOutSE",
	CutOutSW:         "cutOutSW",
	OpticalCenter:    "opticalCenter",
	NominalWidth:     "nominalWidth",
	NumeralTop:       "numeralTop",
	NumeralBottom:    "numeralBottom",
	GraceNoteSlashSW: "graceNoteSlashSW",
	GraceNoteSlashNE: "graceNoteSlashNE",
	GraceNoteSlashNW: "graceNoteSlashNW",
	GraceNoteSlashSE: "graceNoteSlashSE",
	RepeatOffset:     "repeatOffset",
	NoteheadOrigin:   "noteheadOrigin",
}

func (a AnchorID) String() string {
	if a <= NoAnchor || a >= anchorCount {
		return fmt.Sprintf("anchor(%d)", int(a))
	}
	return anchorNames[a]
}

// AnchorByName returns the anchor identifier for a SMuFL anchor name.
func AnchorByName(name string) (AnchorID, bool) {
	for a := NoAnchor + 1; a < anchorCount; a++ {
		if anchorNames[a] == name {
			return a, true
		}
	}
	return NoAnchor, false
}

// --- Codepoints ------------------------------------------------------------

// Code holds the codepoints of a symbol: its SMuFL codepoint in the private
// use area, and an alternate codepoint from the Unicode "Musical Symbols"
// block, used when a font lacks the former. Both may be zero.
type Code struct {
	Primary  rune
	Fallback rune
}

// IsZero is true if neither codepoint is set.
func (c Code) IsZero() bool {
	return c.Primary == 0 && c.Fallback == 0
}

// ParseCodepoint parses codepoints in SMuFL notation ("U+E050").
// A plain hexadecimal number is accepted as well.
func ParseCodepoint(s string) (rune, error) {
	s = strings.TrimSpace(s)
	hex := strings.TrimPrefix(strings.TrimPrefix(s, "U+"), "u+")
	if hex == "" {
		return 0, fmt.Errorf("empty codepoint %q", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed codepoint %q: %w", s, err)
	}
	if n > 0x10FFFF {
		return 0, fmt.Errorf("codepoint %q out of range", s)
	}
	return rune(n), nil
}

// FormatCodepoint is the inverse of ParseCodepoint.
func FormatCodepoint(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}
