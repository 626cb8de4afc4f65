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
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func TestParseColor(t *testing.T) {
	for in, want := range map[string]Color{
		"#37000000":  ShadowStart,
		"#ffffff":    White,
		"#FF3366":    0xffff3366,
		" #00000000": Transparent,
	} {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "ffffff", "#fff", "#12345g", "#1234567890"} {
		_, err := ParseColor(in)
		assert.Error(t, err, in)
	}
}

func TestColor(t *testing.T) {
	c := ARGB(0x80, 0xff, 0x40, 0x00)
	assert.Equal(t, Color(0x80ff4000), c)
	assert.Equal(t, uint8(0x80), c.Alpha())
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0x40, A: 0x80}, c.NRGBA())
	assert.Equal(t, color.RGBA{R: 0x80, G: 0x20, A: 0x80}, c.premultiplied())
	assert.Equal(t, "#80ff4000", c.String())
}

func TestSolidPaint(t *testing.T) {
	p := SolidPaint(0xff102030)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, p.ColorAt(vec.Vec2{X: 1e6, Y: -4}))
}

func TestGradientStops(t *testing.T) {
	stops := []Stop{
		{Offset: 0, Color: 0xff000000},
		{Offset: 0.5, Color: 0xff000000},
		{Offset: 1, Color: 0x00000000},
	}
	assert.Equal(t, color.RGBA{A: 0xff}, lookup(stops, -1))
	assert.Equal(t, color.RGBA{A: 0xff}, lookup(stops, 0.25))
	assert.Equal(t, color.RGBA{A: 0x80}, lookup(stops, 0.75))
	assert.Equal(t, color.RGBA{}, lookup(stops, 1))
	assert.Equal(t, color.RGBA{}, lookup(stops, 7))
	assert.Equal(t, color.RGBA{}, lookup(nil, 0.5))
}

func TestGradientPremultiplied(t *testing.T) {
	// fading white to transparent black must not pass through grey
	stops := []Stop{{0, White}, {1, Transparent}}
	c := lookup(stops, 0.5)
	assert.Equal(t, c.R, c.A)
	assert.Equal(t, c.G, c.A)
}

func TestRadialGradient(t *testing.T) {
	g := &RadialGradient{
		Center: vec.Vec2{X: 10, Y: 10},
		Radius: 10,
		Stops:  []Stop{{0, Black}, {1, Transparent}},
	}
	assert.Equal(t, color.RGBA{A: 0xff}, g.ColorAt(vec.Vec2{X: 10, Y: 10}))
	assert.Equal(t, color.RGBA{A: 0x80}, g.ColorAt(vec.Vec2{X: 10, Y: 15}))
	assert.Equal(t, g.ColorAt(vec.Vec2{X: 15, Y: 10}), g.ColorAt(vec.Vec2{X: 10, Y: 5}))
	assert.Equal(t, color.RGBA{}, g.ColorAt(vec.Vec2{X: 30, Y: 30}))

	g.Radius = 0
	assert.Equal(t, color.RGBA{}, g.ColorAt(vec.Vec2{X: 10, Y: 10}))
}

func TestLinearGradient(t *testing.T) {
	g := &LinearGradient{
		Start: vec.Vec2{X: 0, Y: -2},
		End:   vec.Vec2{X: 0, Y: -28},
		Stops: []Stop{{0, Black}, {1, Transparent}},
	}
	// constant along lines perpendicular to the gradient
	assert.Equal(t, g.ColorAt(vec.Vec2{X: 0, Y: -15}), g.ColorAt(vec.Vec2{X: 100, Y: -15}))
	assert.Equal(t, color.RGBA{A: 0x80}, g.ColorAt(vec.Vec2{X: 3, Y: -15}))
	// clamped beyond both ends
	assert.Equal(t, color.RGBA{A: 0xff}, g.ColorAt(vec.Vec2{X: 0, Y: 40}))
	assert.Equal(t, color.RGBA{}, g.ColorAt(vec.Vec2{X: 0, Y: -40}))

	g.End = g.Start
	assert.Equal(t, color.RGBA{A: 0xff}, g.ColorAt(vec.Vec2{X: 0, Y: -40}))
}
