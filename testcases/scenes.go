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

var contentCases = []Scenario{
	{
		Name:    "checker",
		Width:   220,
		Height:  180,
		Options: card.DefaultOptions(),
		Content: Checker{Cell: 8, A: 0xff202020, B: 0xffe0e0e0},
	},
	{
		Name:    "translucent",
		Width:   200,
		Height:  200,
		Options: card.DefaultOptions(),
		Content: Fill(0x80ff8000),
	},
	{
		Name:    "photo_fit_center",
		Width:   260,
		Height:  200,
		Options: card.DefaultOptions(),
		Content: Photo{Width: 160, Height: 90, Scale: card.FitCenter},
	},
	{
		Name:    "photo_center_crop",
		Width:   260,
		Height:  200,
		Options: card.DefaultOptions(),
		Content: Photo{Width: 160, Height: 90, Scale: card.CenterCrop},
	},
	{
		Name:    "photo_fit_xy",
		Width:   260,
		Height:  200,
		Options: card.DefaultOptions(),
		Content: Photo{Width: 160, Height: 90, Scale: card.FitXY},
	},
	{
		Name:   "photo_on_flat_background",
		Width:  260,
		Height: 200,
		Options: with(func(o *card.Options) {
			o.UseFlatBackground = true
		}),
		Content: Photo{Width: 90, Height: 160, Scale: card.FitCenter},
	},
}
