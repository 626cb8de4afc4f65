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

package testcases

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"seehuhn.de/go/card"
)

// Content produces the source renderer for a card.
type Content interface {
	// Renderer returns a renderer which fills the given content area.
	Renderer(area image.Rectangle) card.SourceRenderer
}

// Fill covers the whole buffer with one colour, ignoring the content area.
type Fill card.Color

func (f Fill) Renderer(image.Rectangle) card.SourceRenderer {
	return func(dst draw.Image) {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(card.Color(f)), image.Point{}, draw.Src)
	}
}

// Checker is a checkerboard with square cells.
type Checker struct {
	Cell int
	A, B card.Color
}

func (c Checker) Renderer(area image.Rectangle) card.SourceRenderer {
	img := image.NewRGBA(image.Rect(0, 0, 4*c.Cell, 4*c.Cell))
	for y := range 4 * c.Cell {
		for x := range 4 * c.Cell {
			col := c.A
			if (x/c.Cell+y/c.Cell)%2 == 1 {
				col = c.B
			}
			img.Set(x, y, col)
		}
	}
	return func(dst draw.Image) {
		b := dst.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y += img.Rect.Dy() {
			for x := b.Min.X; x < b.Max.X; x += img.Rect.Dx() {
				draw.Draw(dst, image.Rect(x, y, x+img.Rect.Dx(), y+img.Rect.Dy()), img, image.Point{}, draw.Src)
			}
		}
	}
}

// Photo is a synthetic image, shown with the given scale type.
type Photo struct {
	Width, Height int
	Scale         card.ScaleType
}

func (p Photo) Renderer(area image.Rectangle) card.SourceRenderer {
	img := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	for y := range p.Height {
		for x := range p.Width {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(255 * x / max(1, p.Width-1)),
				G: uint8(255 * y / max(1, p.Height-1)),
				B: 0x80,
				A: 0xff,
			})
		}
	}
	return card.ImageSource(img, area, p.Scale)
}
