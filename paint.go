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
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/vec"
)

// Color is a non-premultiplied colour in 0xAARRGGBB form.
type Color uint32

// Frequently used colours.
const (
	Transparent Color = 0x00000000
	Black       Color = 0xff000000
	White       Color = 0xffffffff
)

// ARGB returns a colour from its components.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha component.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// NRGBA converts c to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: uint8(c >> 24)}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// premultiplied returns c with premultiplied 8-bit components.
func (c Color) premultiplied() color.RGBA {
	return color.RGBAModel.Convert(c.NRGBA()).(color.RGBA)
}

func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// ParseColor parses a colour in "#AARRGGBB" or "#RRGGBB" notation.
// Colours without an alpha component are opaque.
func ParseColor(s string) (Color, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return 0, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	if len(hex) == 6 {
		v |= 0xff000000
	}
	return Color(v), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = v
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// Paint determines the colour of every point inside a filled path.
type Paint interface {
	// ColorAt returns the premultiplied colour at p, given in the
	// coordinate system of the path being filled.
	ColorAt(p vec.Vec2) color.RGBA
}

// SolidPaint fills with a single colour.
type SolidPaint Color

func (s SolidPaint) ColorAt(vec.Vec2) color.RGBA {
	return Color(s).premultiplied()
}

// Stop is a colour stop of a gradient.
// Offset runs from 0 at the start of the gradient to 1 at its end.
type Stop struct {
	Offset float64
	Color  Color
}

// RadialGradient is a circular gradient.  Points at distance d from Center
// take the colour at offset d/Radius.  Points outside the circle keep the
// colour of the last stop.
type RadialGradient struct {
	Center vec.Vec2
	Radius float64
	Stops  []Stop
}

func (g *RadialGradient) ColorAt(p vec.Vec2) color.RGBA {
	if g.Radius <= 0 {
		return lookup(g.Stops, 1)
	}
	return lookup(g.Stops, p.Sub(g.Center).Length()/g.Radius)
}

// LinearGradient varies along the line from Start to End and is constant
// perpendicular to it.  Points beyond either end keep the colour of the
// nearest stop.
type LinearGradient struct {
	Start, End vec.Vec2
	Stops      []Stop
}

func (g *LinearGradient) ColorAt(p vec.Vec2) color.RGBA {
	d := g.End.Sub(g.Start)
	l2 := d.X*d.X + d.Y*d.Y
	if l2 == 0 {
		return lookup(g.Stops, 0)
	}
	q := p.Sub(g.Start)
	return lookup(g.Stops, (q.X*d.X+q.Y*d.Y)/l2)
}

// lookup returns the colour at offset t.  The stops must be sorted by
// offset.  Interpolation is done on premultiplied values, so that fading
// to a transparent stop does not darken the colour.
func lookup(stops []Stop, t float64) color.RGBA {
	switch {
	case len(stops) == 0:
		return color.RGBA{}
	case math.IsNaN(t) || t <= stops[0].Offset:
		return stops[0].Color.premultiplied()
	case t >= stops[len(stops)-1].Offset:
		return stops[len(stops)-1].Color.premultiplied()
	}

	i := 1
	for stops[i].Offset < t {
		i++
	}
	s0, s1 := stops[i-1], stops[i]
	if s1.Offset <= s0.Offset {
		return s1.Color.premultiplied()
	}
	f := (t - s0.Offset) / (s1.Offset - s0.Offset)
	c0 := s0.Color.premultiplied()
	c1 := s1.Color.premultiplied()
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + f*(float64(b)-float64(a))))
	}
	return color.RGBA{
		R: mix(c0.R, c1.R),
		G: mix(c0.G, c1.G),
		B: mix(c0.B, c1.B),
		A: mix(c0.A, c1.A),
	}
}
