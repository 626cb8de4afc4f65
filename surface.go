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
	"image/color"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/card/raster"
)

// Surface receives the drawing operations of a card.
type Surface interface {
	// FillPath fills p, transformed by ctm, using the given fill rule.
	// The paint is evaluated in the coordinates of p.
	FillPath(p *path.Data, ctm matrix.Matrix, rule raster.FillRule, paint Paint)

	// DrawImage composites img over the surface, without scaling, with
	// the top-left corner of img.Bounds() placed at the given point.
	DrawImage(img image.Image, at image.Point)
}

// ImageSurface is a Surface which draws into an image.
// All drawing uses source-over compositing.
type ImageSurface struct {
	Dst draw.Image

	r *raster.Rasterizer
}

// NewImageSurface returns a surface which draws into dst.
func NewImageSurface(dst draw.Image) *ImageSurface {
	return &ImageSurface{
		Dst: dst,
		r:   raster.NewRasterizer(clipRect(dst.Bounds())),
	}
}

func clipRect(b image.Rectangle) rect.Rect {
	return rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
}

// FillPath implements the Surface interface.
func (s *ImageSurface) FillPath(p *path.Data, ctm matrix.Matrix, rule raster.FillRule, paint Paint) {
	if ctm[0]*ctm[3]-ctm[1]*ctm[2] == 0 {
		return
	}
	inv := ctm.Inv()

	s.r.Reset(clipRect(s.Dst.Bounds()))
	s.r.CTM = ctm

	solid, isSolid := paint.(SolidPaint)
	var c color.RGBA
	if isSolid {
		c = solid.ColorAt(vec.Vec2{})
	}

	rgba, isRGBA := s.Dst.(*image.RGBA)
	s.r.Fill(p, rule, func(y, xMin int, coverage []float32) {
		for i, cov := range coverage {
			if cov <= 0 {
				continue
			}
			x := xMin + i
			if !isSolid {
				u, v := inv.Apply(float64(x)+0.5, float64(y)+0.5)
				c = paint.ColorAt(vec.Vec2{X: u, Y: v})
			}
			if c.A == 0 {
				continue
			}
			if isRGBA {
				off := rgba.PixOffset(x, y)
				px := rgba.Pix[off : off+4 : off+4]
				px[0], px[1], px[2], px[3] = over(c, cov, px[0], px[1], px[2], px[3])
				continue
			}
			d := color.RGBAModel.Convert(s.Dst.At(x, y)).(color.RGBA)
			d.R, d.G, d.B, d.A = over(c, cov, d.R, d.G, d.B, d.A)
			s.Dst.Set(x, y, d)
		}
	})
}

// DrawImage implements the Surface interface.
func (s *ImageSurface) DrawImage(img image.Image, at image.Point) {
	draw.Copy(s.Dst, at, img, img.Bounds(), draw.Over, nil)
}

// over composites the premultiplied colour c, scaled by coverage cov,
// over the premultiplied destination pixel.
func over(c color.RGBA, cov float32, r, g, b, a uint8) (uint8, uint8, uint8, uint8) {
	if cov >= 1 && c.A == 0xff {
		return c.R, c.G, c.B, c.A
	}
	keep := 1 - float32(c.A)*cov/255
	mix := func(src, dst uint8) uint8 {
		v := float32(src)*cov + float32(dst)*keep + 0.5
		if v >= 255 {
			return 255
		}
		return uint8(v)
	}
	return mix(c.R, r), mix(c.G, g), mix(c.B, b), mix(c.A, a)
}
