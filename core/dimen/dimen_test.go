package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestRectExtent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smufl.core")
	defer teardown()
	//
	r := R(0, -40, 20, 40)
	assert.Equal(t, 20.0, r.Width())
	assert.Equal(t, 40.0, r.Height())
	assert.True(t, r.IsValid())
	assert.False(t, R(3, 3, 0, 10).IsValid(), "zero-width box must be invalid")
	assert.False(t, Rect{}.IsValid())
}

func TestRectScaling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smufl.core")
	defer teardown()
	//
	r := R(0, 0, 20, 40)
	assert.Equal(t, R(0, 0, 40, 80), r.Scaled(Uniform(2)))
	assert.Equal(t, R(0, 0, 10, 120), r.Scaled(Mag{0.5, 3}))
	assert.True(t, Uniform(1.5).IsUniform())
	assert.False(t, Mag{1, 2}.IsUniform())
}

func TestRectUnion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smufl.core")
	defer teardown()
	//
	ped := R(0, 0, 30, 10)
	dot := R(0, 0, 5, 5).Translated(Point{30, 0})
	assert.Equal(t, R(0, 0, 35, 10), ped.Union(dot))
	assert.Equal(t, ped, ped.Union(Rect{}), "invalid rect must not contribute")
	assert.Equal(t, dot, Rect{}.Union(dot))
}

func TestStaffSpaces(t *testing.T) {
	assert.Equal(t, 250.0, StaffSpaces(1, 1000))
	assert.InDelta(t, 295.0, StaffSpaces(1.18, 1000), 1e-9)
	p := Point{1, 2}
	p.Shift(Point{3, 4})
	assert.Equal(t, Point{4, 6}, p)
}
