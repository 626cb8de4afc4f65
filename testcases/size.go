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

var sizeCases = []Scenario{
	{
		Name:    "wide",
		Width:   400,
		Height:  120,
		Options: card.DefaultOptions(),
		Content: white,
	},
	{
		Name:    "tall",
		Width:   120,
		Height:  400,
		Options: card.DefaultOptions(),
		Content: white,
	},
	{
		// The background is exactly as wide as the two corners together:
		// no horizontal edges are drawn.
		Name:    "corners_touch",
		Width:   2*21 + 2*(15+1+4),
		Height:  200,
		Options: card.DefaultOptions(),
		Content: white,
	},
	{
		// The outer bounds are smaller than twice the reserved shadow
		// room, so the background bounds are inverted.
		Name:    "tiny",
		Width:   30,
		Height:  30,
		Options: card.DefaultOptions(),
		Content: white,
	},
	{
		Name:    "large",
		Width:   1200,
		Height:  800,
		Options: card.DefaultOptions(),
		Content: white,
	},
}
