// seehuhn.de/go/card - rounded cards with drop shadows
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package card

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/card/raster"
)

// Default shadow colours.  The shadow fades from ShadowStart at the card's
// outline to ShadowEnd at its outer rim.
const (
	ShadowStart Color = 0x37000000
	ShadowEnd   Color = 0x03000000
)

// ShadowGeometry holds the drawing primitives shared by all four corners
// of a card's shadow.  Everything is given in canonical corner
// coordinates: the centre of the corner arc is the origin, and the
// shadow of the top-left corner occupies the quadrant x ≤ 0, y ≤ 0.
type ShadowGeometry struct {
	CornerRadius float64
	ShadowSize   float64

	// CornerPath is the quarter annulus between radius CornerRadius and
	// CornerRadius+ShadowSize.  It must be filled with the even-odd rule.
	CornerPath *path.Data

	// CornerPaint is used for CornerPath.
	CornerPaint *RadialGradient

	// EdgePaint is used for the straight shadow pieces between corners.
	EdgePaint *LinearGradient
}

// BuildShadow constructs the corner path and the gradients for the given
// corner radius and effective shadow size.
func BuildShadow(cornerRadius, shadowSize float64, start, end Color) *ShadowGeometry {
	cr := cornerRadius
	ss := shadowSize
	outer := cr + ss

	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: -cr, Y: 0}).
		LineTo(vec.Vec2{X: -outer, Y: 0})
	p = arcTo(p, outer, 180, 90)
	p = arcTo(p, cr, 270, -90)
	p = p.Close()

	corner := &RadialGradient{
		Radius: outer,
		Stops: []Stop{
			{Offset: 0, Color: start},
			{Offset: 0, Color: start},
			{Offset: 1, Color: end},
		},
	}
	if outer > 0 {
		corner.Stops[1].Offset = cr / outer
	}

	edge := &LinearGradient{
		Start: vec.Vec2{X: 0, Y: -cr + ss},
		End:   vec.Vec2{X: 0, Y: -cr - ss},
		Stops: []Stop{
			{Offset: 0, Color: start},
			{Offset: 0.5, Color: start},
			{Offset: 1, Color: end},
		},
	}

	return &ShadowGeometry{
		CornerRadius: cr,
		ShadowSize:   ss,
		CornerPath:   p,
		CornerPaint:  corner,
		EdgePaint:    edge,
	}
}

// arcTo appends a circular arc around the origin to p.  Angles are in
// degrees, measured clockwise from the positive x-axis (the y-axis points
// down).  A straight line joins the current point to the start of the arc,
// unless the path already ends there.
func arcTo(p *path.Data, radius, startDeg, sweepDeg float64) *path.Data {
	start := onCircle(radius, startDeg)
	if n := len(p.Coords); n == 0 || p.Coords[n-1] != start {
		p = p.LineTo(start)
	}

	n := max(1, int(math.Ceil(math.Abs(sweepDeg)/90-1e-9)))
	step := sweepDeg / float64(n)
	k := 4.0 / 3.0 * math.Tan(step*math.Pi/720) * radius
	for i := range n {
		a0 := startDeg + float64(i)*step
		a1 := a0 + step
		p0 := onCircle(radius, a0)
		p3 := onCircle(radius, a1)
		t0 := onCircle(1, a0+90)
		t1 := onCircle(1, a1+90)
		p = p.CubeTo(p0.Add(t0.Mul(k)), p3.Sub(t1.Mul(k)), p3)
	}
	return p
}

// onCircle returns the point at the given angle on a circle around the
// origin.  Multiples of 90 degrees are exact.
func onCircle(radius, deg float64) vec.Vec2 {
	if q := deg / 90; q == math.Trunc(q) {
		switch ((int(q) % 4) + 4) % 4 {
		case 0:
			return vec.Vec2{X: radius}
		case 1:
			return vec.Vec2{Y: radius}
		case 2:
			return vec.Vec2{X: -radius}
		default:
			return vec.Vec2{Y: -radius}
		}
	}
	s, c := math.Sincos(deg * math.Pi / 180)
	return vec.Vec2{X: radius * c, Y: radius * s}
}

// Corner identifies one corner of a card.
type Corner int

// The corners, in the order they are painted.
const (
	TopLeft Corner = iota
	BottomLeft
	TopRight
	BottomRight
)

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case BottomLeft:
		return "bottom-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	default:
		return "Corner(?)"
	}
}

// box is a rectangle with fractional coordinates.
type box struct {
	left, top, right, bottom float64
}

func boxOf(r image.Rectangle, dy float64) box {
	return box{
		left:   float64(r.Min.X),
		top:    float64(r.Min.Y) + dy,
		right:  float64(r.Max.X),
		bottom: float64(r.Max.Y) + dy,
	}
}

// cornerTransform returns where the canonical corner is placed for corner
// c, and by how many degrees it is rotated clockwise.
func cornerTransform(c Corner, bg box, inset float64) (pivot vec.Vec2, degrees int) {
	switch c {
	case TopLeft:
		return vec.Vec2{X: bg.left + inset, Y: bg.top + inset}, 0
	case BottomLeft:
		return vec.Vec2{X: bg.left + inset, Y: bg.bottom - inset}, 270
	case TopRight:
		return vec.Vec2{X: bg.right - inset, Y: bg.top + inset}, 90
	default:
		return vec.Vec2{X: bg.right - inset, Y: bg.bottom - inset}, 180
	}
}

// quarterTurn returns the matrix which rotates by the given multiple of
// 90 degrees and then moves the origin to pivot.
func quarterTurn(degrees int, pivot vec.Vec2) matrix.Matrix {
	var cos, sin float64
	switch ((degrees/90)%4 + 4) % 4 {
	case 0:
		cos = 1
	case 1:
		sin = 1
	case 2:
		cos = -1
	case 3:
		sin = -1
	}
	return matrix.Matrix{cos, sin, -sin, cos, pivot.X, pivot.Y}
}

// PaintShadow draws the shadow of a card with the given background bounds
// onto s.  The shadow is moved down by style.Offset().
//
// Each corner is drawn by replaying sh.CornerPath under a fresh transform.
// The straight edge belonging to a corner is drawn in the same coordinate
// system, and only if the background is long enough to leave a gap
// between the two corners.
func PaintShadow(s Surface, bg image.Rectangle, style ShadowStyle, sh *ShadowGeometry) {
	b := boxOf(bg, style.Offset())
	inset := style.pivotInset()
	cr := sh.CornerRadius
	ss := sh.ShadowSize
	edgeTop := -cr - ss

	horizontal := float64(bg.Dx()) - 2*inset
	vertical := float64(bg.Dy()) - 2*inset

	for _, c := range []Corner{TopLeft, BottomLeft, TopRight, BottomRight} {
		pivot, deg := cornerTransform(c, b, inset)
		ctm := quarterTurn(deg, pivot)

		var edge *path.Data
		switch c {
		case TopLeft:
			if horizontal > 0 {
				edge = rectPath(0, edgeTop, horizontal, -cr)
			}
		case BottomLeft, TopRight:
			if vertical > 0 {
				edge = rectPath(0, edgeTop, vertical, -cr)
			}
		case BottomRight:
			if horizontal > 0 {
				// The bottom edge reaches under the card.
				edge = rectPath(0, edgeTop, horizontal, -cr+ss)
			}
		}

		if c == TopLeft && edge != nil {
			s.FillPath(edge, ctm, raster.NonZero, sh.EdgePaint)
			edge = nil
		}
		s.FillPath(sh.CornerPath, ctm, raster.EvenOdd, sh.CornerPaint)
		if edge != nil {
			s.FillPath(edge, ctm, raster.NonZero, sh.EdgePaint)
		}
	}
}

// rectPath returns a closed axis-aligned rectangle.
func rectPath(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}
