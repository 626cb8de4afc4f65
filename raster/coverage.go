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

package raster

import (
	"cmp"
	"math"
	"slices"
)

// Coverage accumulation
//
// Every pixel keeps two numbers:
//
//	cover: the signed vertical extent of all edge pieces inside the pixel
//	area:  the same, weighted by the fraction of the pixel right of the edge
//
// A scanline is then integrated from left to right: the coverage of pixel i
// is the running sum of cover over all pixels left of i, plus area[i].
// This is the signed area of the path inside the pixel.  The nonzero rule
// clamps its absolute value to [0, 1], the even-odd rule folds it.
//
// Edge pieces left of the buffer are accumulated into pixel 0, so that
// the running sum stays correct after clipping.

// accumulate adds the part of e inside scanline y to cover and area.
// Index 0 of the buffers corresponds to device column xMin.
func (r *Rasterizer) accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	if xa > xb {
		xa, xb = xb, xa
	}
	pixLeft := int(math.Floor(xa))
	pixRight := int(math.Floor(xb))

	if pixRight < xMin {
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	}
	if pixLeft >= xMax {
		return
	}

	if pixLeft == pixRight {
		addPiece(e, yTop, yBot, sign, pixLeft, cover, area, xMin, xMax)
		return
	}

	// The edge crosses pixel columns: split it where it meets the
	// vertical pixel boundaries and handle every piece on its own.
	dydx := 1 / e.dxdy
	r.crossings = append(r.crossings[:0], yTop, yBot)
	for x := pixLeft + 1; x <= pixRight; x++ {
		yx := e.y0 + dydx*(float64(x)-e.x0)
		if yx > yTop && yx < yBot {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)

	for i := range len(r.crossings) - 1 {
		y0, y1 := r.crossings[i], r.crossings[i+1]
		if y1 <= y0 {
			continue
		}
		xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		addPiece(e, y0, y1, sign, int(math.Floor(xMid)), cover, area, xMin, xMax)
	}
}

// addPiece records an edge piece between yTop and yBot which lies
// within pixel column pix.
func addPiece(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, xMin, xMax int) {
	c := sign * float32(yBot-yTop)
	switch {
	case pix < xMin:
		cover[0] += c
		area[0] += c
	case pix < xMax:
		xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
		frac := xMid - float64(pix)
		i := pix - xMin
		cover[i] += c
		area[i] += c * float32(1-frac)
	}
}

// integrate turns the accumulated cover and area values of one scanline
// into coverage, in place.
func integrate(cover, area []float32, rule FillRule) {
	var sum float32
	for i := range cover {
		raw := sum + area[i]
		sum += cover[i]

		if raw < 0 {
			raw = -raw
		}
		if rule == EvenOdd {
			m := raw - 2*float32(int(raw/2))
			raw = 1 - abs32(1-m)
		} else if raw > 1 {
			raw = 1
		}
		cover[i] = raw
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros strips leading and trailing zeros. It returns nil if every
// value is zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// fillDense rasterizes into full width×height buffers. This is used for
// paths with a small bounding box.
func (r *Rasterizer) fillDense(xMin, xMax, yMin, yMax int, rule FillRule, emit EmitFunc) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowUsed = slices.Grow(r.rowUsed[:0], height)[:height]
	clear(r.rowUsed)

	for i := range r.edges {
		e := &r.edges[i]
		y0 := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		y1 := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := y0; y < y1; y++ {
			row := y - yMin
			off := row * width
			r.accumulate(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowUsed[row] = true
		}
	}

	for row := range height {
		if !r.rowUsed[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrate(coverage, r.area[off:off+width], rule)
		if trimmed, dx := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+dx, trimmed)
		}
	}
}

// fillSparse rasterizes one scanline at a time, using an active edge list.
// This is used for paths with a large bounding box.
func (r *Rasterizer) fillSparse(xMin, xMax, yMin, yMax int, rule FillRule, emit EmitFunc) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yf+1 {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		used := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if max(e.y0, e.y1) <= yf {
				// finished: swap-remove
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			r.accumulate(e, y, r.cover, r.area, xMin, xMax)
			used = true
			i++
		}
		if !used {
			continue
		}

		integrate(r.cover, r.area, rule)
		if trimmed, dx := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+dx, trimmed)
		}
	}
}
