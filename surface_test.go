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
	"testing"

	"github.com/stretchr/testify/assert"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/card/raster"
)

func TestFillPathSingular(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	s := NewImageSurface(img)
	g := &LinearGradient{End: vec.Vec2{X: 10}, Stops: []Stop{{0, Black}, {1, White}}}
	assert.NotPanics(t, func() {
		s.FillPath(rectPath(0, 0, 10, 10), matrix.Matrix{1, 2, 2, 4, 0, 0}, raster.NonZero, g)
	})
	for _, v := range img.Pix {
		assert.Zero(t, v)
	}
}

func TestOver(t *testing.T) {
	half := color.RGBA{R: 0x80, A: 0x80}

	r, g, b, a := over(half, 1, 0, 0, 0xff, 0xff)
	assert.Equal(t, [4]uint8{0x80, 0, 0x7f, 0xff}, [4]uint8{r, g, b, a})

	r, _, _, a = over(color.RGBA{R: 0xff, A: 0xff}, 0.5, 0, 0, 0, 0)
	assert.Equal(t, uint8(0x80), r)
	assert.Equal(t, uint8(0x80), a)

	r, g, b, a = over(color.RGBA{G: 0xff, A: 0xff}, 1, 0x10, 0x20, 0x30, 0x40)
	assert.Equal(t, [4]uint8{0, 0xff, 0, 0xff}, [4]uint8{r, g, b, a})
}

func TestImageSurfaceGradient(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 10))
	s := NewImageSurface(img)
	g := &LinearGradient{
		Start: vec.Vec2{X: 0, Y: 0},
		End:   vec.Vec2{X: 20, Y: 0},
		Stops: []Stop{{0, Black}, {1, Transparent}},
	}
	// The path is drawn shifted by 20 pixels; the gradient moves with it.
	ctm := matrix.Matrix{1, 0, 0, 1, 20, 0}
	s.FillPath(rectPath(0, 0, 20, 10), ctm, raster.NonZero, g)

	assert.Zero(t, img.RGBAAt(10, 5).A)
	assert.Greater(t, img.RGBAAt(20, 5).A, uint8(0xf0))
	assert.Less(t, img.RGBAAt(39, 5).A, uint8(0x10))
	assert.Greater(t, img.RGBAAt(25, 5).A, img.RGBAAt(30, 5).A)
}

func TestImageSurfaceGenericImage(t *testing.T) {
	// images other than *image.RGBA go through At and Set
	img := image.NewNRGBA(image.Rect(-5, -5, 5, 5))
	s := NewImageSurface(img)
	s.FillPath(rectPath(-2, -2, 2, 2), matrix.Identity, raster.NonZero, SolidPaint(0xff00ff00))

	assert.Equal(t, color.NRGBA{G: 0xff, A: 0xff}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(-4, -4))
}

func TestImageSurfaceDrawImage(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	dst.SetRGBA(4, 4, color.RGBA{B: 0xff, A: 0xff})

	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	src.SetRGBA(0, 0, color.RGBA{R: 0xff, A: 0xff})
	NewImageSurface(dst).DrawImage(src, image.Pt(3, 3))

	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, dst.RGBAAt(3, 3))
	// transparent source pixels keep the destination
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, dst.RGBAAt(4, 4))
}
