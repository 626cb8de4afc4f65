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

import "image"

// Geometry tracks the outer bounds of a card and the background bounds
// derived from them.
//
// Outer bounds are given in the coordinates of the parent.  The background
// bounds are element-local: (0, 0) is the top-left corner of the outer
// bounds.  When the card is too small for its shadow, the background
// bounds are inverted (Max < Min) and nothing but the corners is drawn.
type Geometry struct {
	Bounds     image.Rectangle
	Background image.Rectangle

	maxShadow float64
}

// SetBounds records new outer bounds.  The bounds are normalized, so
// swapped coordinates are accepted.  The return value reports whether
// the bounds differ from the previous ones.
func (g *Geometry) SetBounds(bounds image.Rectangle) bool {
	bounds = bounds.Canon()
	if bounds == g.Bounds {
		return false
	}
	g.Bounds = bounds
	g.update()
	return true
}

// SetMaxShadowSize sets the effective maximal shadow size, which decides
// how much room is left around the background.
func (g *Geometry) SetMaxShadowSize(maxShadow float64) {
	g.maxShadow = maxShadow
	g.update()
}

// Size returns the width and height of the outer bounds.
func (g *Geometry) Size() (width, height int) {
	return g.Bounds.Dx(), g.Bounds.Dy()
}

func (g *Geometry) update() {
	w, h := g.Bounds.Dx(), g.Bounds.Dy()
	dx := int(g.maxShadow)
	dy := int(g.maxShadow * 1.5)
	g.Background = image.Rectangle{
		Min: image.Pt(dx, dy),
		Max: image.Pt(w-dx, h-dy),
	}
}
