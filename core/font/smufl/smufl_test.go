package smufl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymNamesComplete(t *testing.T) {
	seen := make(map[string]SymID)
	for id := NoSym + 1; id < SymIDCount; id++ {
		name := id.Name()
		if name == "" {
			t.Errorf("symbol %d has no name", int(id))
			continue
		}
		if other, dup := seen[name]; dup {
			t.Errorf("name %q used by %d and %d", name, int(other), int(id))
		}
		seen[name] = id
	}
	assert.Equal(t, int(SymIDCount)-1, len(Names()))
}

func TestSymIDByName(t *testing.T) {
	id, ok := SymIDByName("gClef")
	assert.True(t, ok)
	assert.Equal(t, GClef, id)
	id, ok = SymIDByName("6stringTabClef")
	assert.True(t, ok)
	assert.Equal(t, SixStringTabClef, id)
	_, ok = SymIDByName("noSym")
	assert.False(t, ok)
	_, ok = SymIDByName("someGlyphFromTheFuture")
	assert.False(t, ok)
	assert.Equal(t, "noSym", SymID(-3).Name())
	assert.Equal(t, "noSym", SymIDCount.Name())
}

func TestParseSymIDList(t *testing.T) {
	list, bad := ParseSymIDList([]string{"keyboardPedalPed", "keyboardPedalDot"})
	assert.Equal(t, -1, bad)
	assert.Equal(t, SymIDList{KeyboardPedalPed, KeyboardPedalDot}, list)
	_, bad = ParseSymIDList([]string{"keyboardPedalPed", "nope"})
	assert.Equal(t, 1, bad)
}

func TestAnchorNames(t *testing.T) {
	a, ok := AnchorByName("stemUpSE")
	assert.True(t, ok)
	assert.Equal(t, StemUpSE, a)
	assert.Equal(t, "cutOutNW", CutOutNW.String())
	_, ok = AnchorByName("stemSideways")
	assert.False(t, ok)
}

func TestCodepoints(t *testing.T) {
	r, err := ParseCodepoint("U+E050")
	assert.NoError(t, err)
	assert.Equal(t, rune(0xE050), r)
	r, err = ParseCodepoint("1D11E")
	assert.NoError(t, err)
	assert.Equal(t, rune(0x1D11E), r)
	_, err = ParseCodepoint("U+XYZ")
	assert.Error(t, err)
	_, err = ParseCodepoint("U+")
	assert.Error(t, err)
	_, err = ParseCodepoint("U+FFFFFFF")
	assert.Error(t, err)
	assert.Equal(t, "U+E050", FormatCodepoint(0xE050))
	assert.True(t, Code{}.IsZero())
	assert.False(t, Code{Fallback: 0x266D}.IsZero())
}
