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

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/card/raster"
)

// SourceRenderer draws the content of a card into dst.  The content is
// clipped to the card's rounded outline afterwards, so a renderer may
// draw anywhere inside dst.Bounds().
type SourceRenderer func(dst draw.Image)

// MaskShape is the outline of the visible part of a card: a rectangle with
// rounded corners, in element-local coordinates.
type MaskShape struct {
	Left, Top, Right, Bottom float64
	Radius                   float64
}

// maskShape returns the outline for the given background bounds, moved
// down by dy.
func maskShape(bg image.Rectangle, radius, dy float64) MaskShape {
	b := boxOf(bg, dy)
	return MaskShape{Left: b.left, Top: b.top, Right: b.right, Bottom: b.bottom, Radius: radius}
}

// Empty reports whether the shape has no area.
func (m MaskShape) Empty() bool {
	return !(m.Right > m.Left && m.Bottom > m.Top)
}

// Path returns the outline as a closed path.  The radius is reduced if
// the rectangle is too small to hold it.
func (m MaskShape) Path() *path.Data {
	if m.Empty() {
		return &path.Data{}
	}
	r := min(m.Radius, (m.Right-m.Left)/2, (m.Bottom-m.Top)/2)
	if r <= 0 {
		return rectPath(m.Left, m.Top, m.Right, m.Bottom)
	}

	k := r * kappa
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
	return (&path.Data{}).
		MoveTo(pt(m.Left+r, m.Top)).
		LineTo(pt(m.Right-r, m.Top)).
		CubeTo(pt(m.Right-r+k, m.Top), pt(m.Right, m.Top+r-k), pt(m.Right, m.Top+r)).
		LineTo(pt(m.Right, m.Bottom-r)).
		CubeTo(pt(m.Right, m.Bottom-r+k), pt(m.Right-r+k, m.Bottom), pt(m.Right-r, m.Bottom)).
		LineTo(pt(m.Left+r, m.Bottom)).
		CubeTo(pt(m.Left+r-k, m.Bottom), pt(m.Left, m.Bottom-r+k), pt(m.Left, m.Bottom-r)).
		LineTo(pt(m.Left, m.Top+r)).
		CubeTo(pt(m.Left, m.Top+r-k), pt(m.Left+r-k, m.Top), pt(m.Left+r, m.Top)).
		Close()
}

// kappa is the control point distance for a quarter circle of radius 1.
const kappa = 0.5522847498

// MaskCompositor produces the masked content of a card.  The mask and
// the scratch layer are kept between calls.
type MaskCompositor struct {
	mask  *image.Alpha
	layer *image.RGBA
	r     *raster.Rasterizer
}

// Composite replaces the content of dst by the output of src, clipped to
// the given shape.
//
// The shape is first rendered as an opaque coverage mask.  The source then
// draws into a separate layer covering the bounds of dst, and the layer is
// copied into dst through the mask ("destination in"): every pixel of the
// result has the colour of the source, scaled by the coverage of the shape.
func (mc *MaskCompositor) Composite(dst *image.RGBA, shape MaskShape, src SourceRenderer) {
	b := dst.Bounds()
	if shape.Empty() || b.Empty() {
		clear(dst.Pix)
		return
	}

	if mc.mask == nil || mc.mask.Rect != b {
		mc.mask = image.NewAlpha(b)
	} else {
		clear(mc.mask.Pix)
	}
	if mc.r == nil {
		mc.r = raster.NewRasterizer(clipRect(b))
	} else {
		mc.r.Reset(clipRect(b))
	}
	mc.r.FillNonZero(shape.Path(), func(y, xMin int, coverage []float32) {
		row := mc.mask.Pix[mc.mask.PixOffset(xMin, y):][:len(coverage)]
		for i, cov := range coverage {
			if v := cov*255 + 0.5; v >= 255 {
				row[i] = 0xff
			} else if v > 0 {
				row[i] = uint8(v)
			}
		}
	})

	if mc.layer == nil || mc.layer.Rect != b {
		mc.layer = image.NewRGBA(b)
	} else {
		clear(mc.layer.Pix)
	}
	if src != nil {
		src(mc.layer)
	}

	draw.DrawMask(dst, b, mc.layer, b.Min, mc.mask, b.Min, draw.Src)
}
