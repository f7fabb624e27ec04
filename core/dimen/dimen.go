// Package dimen implements dimensions for glyph metrics.
//
/*
All values are given in font design units (or in design units multiplied by
a magnitude, after scaling). The y-axis points down, as it does for glyph
bounds reported by the rendering backend: a glyph sitting on the baseline
has a negative TopL.Y.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"fmt"
	"math"
)

// StaffSpacesPerEm is the SMuFL convention: one em equals four staff spaces.
const StaffSpacesPerEm = 4.0

// Point is a point in design units.
type Point struct {
	X, Y float64
}

// Shift a point along a vector.
func (p *Point) Shift(vector Point) *Point {
	p.X += vector.X
	p.Y += vector.Y
	return p
}

// Scaled returns p with x and y multiplied by the components of mag.
func (p Point) Scaled(mag Mag) Point {
	return Point{p.X * mag.X, p.Y * mag.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Mag is a magnitude, i.e. a scale factor, possibly different for the
// horizontal and the vertical axis.
type Mag struct {
	X, Y float64
}

// Uniform returns a magnitude scaling both axes by k.
func Uniform(k float64) Mag {
	return Mag{k, k}
}

// IsUniform is true if both axes scale alike.
func (m Mag) IsUniform() bool {
	return m.X == m.Y
}

// Rect is a rectangle, given by its top-left and bottom-right corners.
type Rect struct {
	TopL, BotR Point
}

// R creates a rectangle from origin (x,y) and extent (w,h).
func R(x, y, w, h float64) Rect {
	return Rect{Point{x, y}, Point{x + w, y + h}}
}

// Width returns the width of a rectangle, i.e. the difference between x-coordinates
// of bottom-right and top-left corner.
func (r Rect) Width() float64 {
	return r.BotR.X - r.TopL.X
}

// Height returns the height of a rectangle, i.e. the difference between y-coordinates
// of bottom-right and top-left corner.
func (r Rect) Height() float64 {
	return r.BotR.Y - r.TopL.Y
}

// IsValid is true if the rectangle has positive width and height.
// Glyphs which leave no marks (spaces) have invalid boxes.
func (r Rect) IsValid() bool {
	return r.Width() > 0 && r.Height() > 0
}

// Scaled multiplies both corners by mag.
func (r Rect) Scaled(mag Mag) Rect {
	return Rect{r.TopL.Scaled(mag), r.BotR.Scaled(mag)}
}

// Translated moves a rectangle by a vector.
func (r Rect) Translated(v Point) Rect {
	r.TopL.Shift(v)
	r.BotR.Shift(v)
	return r
}

// Union returns the smallest rectangle covering r and other.
// Invalid rectangles do not contribute.
func (r Rect) Union(other Rect) Rect {
	if !other.IsValid() {
		return r
	}
	if !r.IsValid() {
		return other
	}
	return Rect{
		TopL: Point{math.Min(r.TopL.X, other.TopL.X), math.Min(r.TopL.Y, other.TopL.Y)},
		BotR: Point{math.Max(r.BotR.X, other.BotR.X), math.Max(r.BotR.Y, other.BotR.Y)},
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.TopL.X, r.TopL.Y, r.Width(), r.Height())
}

// ---------------------------------------------------------------------------

// StaffSpaces converts a value given in staff spaces into design units of a
// font with the given units per em.
func StaffSpaces(v, unitsPerEm float64) float64 {
	return v * unitsPerEm / StaffSpacesPerEm
}
