package parameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngravingDefaultsOrdered(t *testing.T) {
	ed := NewEngravingDefaults()
	ed.Set(StemWidth, Spatium(0.12))
	ed.Set(StaffLineWidth, Spatium(0.13))
	ed.Set(MusicalTextFont, "Bravura Text")
	ed.Set(UseWideBeams, false)
	assert.Equal(t, 4, ed.Len())
	//
	var keys []StyleID
	ed.Each(func(key StyleID, _ Value) {
		keys = append(keys, key)
	})
	assert.Equal(t, []StyleID{StaffLineWidth, StemWidth, UseWideBeams, MusicalTextFont}, keys)
	assert.Equal(t, Spatium(0.13), ed.Sp(StaffLineWidth))
	assert.Equal(t, "Bravura Text", ed.S(MusicalTextFont))
	assert.False(t, ed.B(UseWideBeams))
	_, ok := ed.Get(BeamWidth)
	assert.False(t, ok)
	assert.Len(t, ed.Map(), 4)
}

func TestEngravingDefaultsRange(t *testing.T) {
	ed := NewEngravingDefaults()
	assert.Panics(t, func() { ed.Set(P_STOPPER, Spatium(1)) })
	var nilTable *EngravingDefaults
	assert.Equal(t, 0, nilTable.Len())
	_, ok := nilTable.Get(StemWidth)
	assert.False(t, ok)
}

func TestSMuFLKeys(t *testing.T) {
	assert.Equal(t, []StyleID{BarWidth, DoubleBarWidth}, SMuFLKeys["thinBarlineThickness"])
	for key, sids := range SMuFLKeys {
		for _, sid := range sids {
			if sid <= none || sid >= P_STOPPER {
				t.Errorf("key %s maps to style id out of range", key)
			}
		}
	}
	assert.Equal(t, "stemWidth", StemWidth.String())
}
