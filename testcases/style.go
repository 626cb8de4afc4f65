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

import "seehuhn.de/go/card"

var white = Fill(card.White)

var styleCases = []Scenario{
	{
		Name:    "default",
		Width:   200,
		Height:  200,
		Options: card.DefaultOptions(),
		Content: white,
	},
	{
		Name:   "no_shadow",
		Width:  200,
		Height: 200,
		Options: with(func(o *card.Options) {
			o.ShadowSize = 0
		}),
		Content: white,
	},
	{
		Name:   "max_shadow",
		Width:  200,
		Height: 200,
		Options: with(func(o *card.Options) {
			o.ShadowSize = 20
		}),
		Content: white,
	},
	{
		Name:   "clamped_shadow",
		Width:  200,
		Height: 200,
		Options: with(func(o *card.Options) {
			o.ShadowSize = 50
			o.MaxShadowSize = 10
		}),
		Content: white,
	},
	{
		Name:   "square_corners",
		Width:  200,
		Height: 160,
		Options: with(func(o *card.Options) {
			o.CornerRadius = 0
		}),
		Content: white,
	},
	{
		Name:   "large_radius",
		Width:  240,
		Height: 240,
		Options: with(func(o *card.Options) {
			o.CornerRadius = 40
		}),
		Content: white,
	},
	{
		Name:   "flat_background",
		Width:  200,
		Height: 150,
		Options: with(func(o *card.Options) {
			o.UseFlatBackground = true
			o.BackgroundColor = 0xff3f51b5
		}),
	},
	{
		Name:   "coloured_shadow",
		Width:  200,
		Height: 150,
		Options: with(func(o *card.Options) {
			o.ShadowStartColor = 0x60b00020
			o.ShadowEndColor = 0x00b00020
		}),
		Content: white,
	},
}
