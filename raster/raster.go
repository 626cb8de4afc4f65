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

// Package raster turns filled vector paths into anti-aliased pixel coverage.
//
// Coverage is the fraction of a pixel's area inside the path, from 0 to 1.
// Results are delivered one scanline at a time through a callback, so that
// callers can composite directly into their own pixel format.
package raster

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FillRule selects how the interior of a self-overlapping path is determined.
type FillRule int

const (
	// NonZero fills every point with a non-zero winding number.
	NonZero FillRule = iota

	// EvenOdd fills every point with an odd winding number.
	EvenOdd
)

func (rule FillRule) String() string {
	switch rule {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "FillRule(?)"
	}
}

// EmitFunc receives the coverage of one scanline. Coverage[i] belongs to
// pixel (xMin+i, y). The slice is only valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasterizer fills paths into coverage values.
// Internal buffers grow as needed and are kept between calls, so a
// long-lived Rasterizer does not allocate in steady state.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps path coordinates to device pixels. Must be non-singular.
	CTM matrix.Matrix

	// Clip limits output to this device rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments approximating it.
	Flatness float64

	// denseLimit is the largest bounding box area (in pixels) which is
	// rasterized with full 2D buffers.  Larger paths use an active edge list.
	denseLimit int

	cover     []float32 // signed vertical extent per pixel, reused as output
	area      []float32 // area right of the edge within the pixel
	edges     []edge
	active    []int     // indices into edges
	rowUsed   []bool    // dense strategy: rows touched by at least one edge
	crossings []float64 // y values where an edge crosses a pixel column

	bboxEmpty                      bool
	bboxX0, bboxX1, bboxY0, bboxY1 float64 // device space bounding box of edges
}

// NewRasterizer returns a Rasterizer with the identity CTM, the given clip
// rectangle and the default flatness.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   DefaultFlatness,
		denseLimit: denseLimit,
	}
}

// Reset restores the public fields to their defaults and sets a new clip
// rectangle. Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = DefaultFlatness

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.rowUsed = r.rowUsed[:0]
	r.crossings = r.crossings[:0]
}

// FillNonZero is a shorthand for r.Fill(p, NonZero, emit).
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.Fill(p, NonZero, emit)
}

// FillEvenOdd is a shorthand for r.Fill(p, EvenOdd, emit).
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.Fill(p, EvenOdd, emit)
}

// Fill computes the coverage of p under the given fill rule.
// Rows without any coverage are skipped, and leading and trailing zeros
// are trimmed from the rows which are emitted.
func (r *Rasterizer) Fill(p *path.Data, rule FillRule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}

	if (xMax-xMin)*(yMax-yMin) < r.denseLimit {
		r.fillDense(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillSparse(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// collectEdges flattens p into device space line segments and returns
// the pixel bounding box of the result, clamped to the clip rectangle.
func (r *Rasterizer) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addEdge)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	// Subpaths are implicitly closed for filling.
	if current != start {
		r.addEdge(current, start)
	}

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bboxX0)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bboxX1))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bboxY0)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bboxY1))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge transforms a segment to device space and records it.
// Horizontal segments do not contribute to coverage and are dropped.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.bboxX0, r.bboxX1 = min(x0, x1), max(x0, x1)
		r.bboxY0, r.bboxY1 = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bboxX0 = min(r.bboxX0, x0, x1)
	r.bboxX1 = max(r.bboxX1, x0, x1)
	r.bboxY0 = min(r.bboxY0, y0, y1)
	r.bboxY1 = max(r.bboxY1, y0, y1)
}

// linear applies the 2×2 part of the CTM to v.
func (r *Rasterizer) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// line segments. The number of segments is chosen in device space.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	// The distance between curve and chord is bounded by |p0 - 2p1 + p2|/4.
	dev := r.linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()

	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier curve p0, ..., p3 by line
// segments, using Wang's formula for the segment count.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()

	n := 1
	if m := max(d1, d2); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

const (
	// DefaultFlatness is the default curve tolerance in device pixels.
	// A quarter pixel is below what can be seen.
	DefaultFlatness = 0.25

	// denseLimit is the default bounding box area below which the dense
	// strategy is used.
	// TODO: measure the crossover point on rounded-rectangle masks
	denseLimit = 65536

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which is still recorded.
	horizontalEdgeThreshold = 1e-10
)
