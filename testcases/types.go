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

// Package testcases lists card rendering scenarios which are shared by the
// tests and by the export command.
package testcases

import (
	"image"

	"seehuhn.de/go/card"
)

// Scenario defines a single card rendering.
type Scenario struct {
	Name    string       // lowercase a-z, 0-9 and _ only
	Width   int          // canvas width in pixels, equal to the card width
	Height  int          // canvas height in pixels, equal to the card height
	Options card.Options // the card style
	Content Content      // what is shown on the card (nil for nothing)
}

// Render draws the scenario onto a transparent canvas.
func (s Scenario) Render() (*image.RGBA, error) {
	c, err := card.NewCard(s.Options)
	if err != nil {
		return nil, err
	}
	c.SetBounds(0, 0, s.Width, s.Height)

	var src card.SourceRenderer
	if s.Content != nil {
		src = s.Content.Renderer(c.ContentBounds())
	}

	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	if err := c.Render(card.NewImageSurface(img), src); err != nil {
		return nil, err
	}
	return img, nil
}

// with returns the default options, modified by f.
func with(f func(o *card.Options)) card.Options {
	o := card.DefaultOptions()
	if f != nil {
		f(&o)
	}
	return o
}
