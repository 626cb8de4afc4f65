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

package card_test

import (
	"image"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/card"
	"seehuhn.de/go/card/testcases"
)

func TestScenarios(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			t.Run(name, func(t *testing.T) {
				img, err := sc.Render()
				require.NoError(t, err)
				require.Equal(t, image.Rect(0, 0, sc.Width, sc.Height), img.Bounds())

				c, err := card.NewCard(sc.Options)
				require.NoError(t, err)
				c.SetBounds(0, 0, sc.Width, sc.Height)
				m := c.Mask()
				if m.Empty() {
					// shadow only, see TestScenarioTinyIsShadowOnly
					return
				}

				// the shadow stays inside the outer bounds
				ok := assert.Zero(t, img.RGBAAt(0, 0).A, "top-left pixel")
				ok = assert.Zero(t, img.RGBAAt(sc.Width-1, sc.Height-1).A, "bottom-right pixel") && ok

				if sc.Content != nil {
					// the centre of the card shows the content
					cx := int((m.Left + m.Right) / 2)
					cy := int((m.Top + m.Bottom) / 2)
					ok = assert.NotZero(t, img.RGBAAt(cx, cy).A, "card centre") && ok
				}

				if !ok {
					writeDebug(t, name, img)
				}
			})
		}
	}
}

func TestScenarioTinyIsShadowOnly(t *testing.T) {
	var tiny testcases.Scenario
	for _, sc := range testcases.All["size"] {
		if sc.Name == "tiny" {
			tiny = sc
		}
	}
	require.Equal(t, "tiny", tiny.Name)

	c, err := card.NewCard(tiny.Options)
	require.NoError(t, err)
	c.SetBounds(0, 0, tiny.Width, tiny.Height)
	assert.True(t, c.Mask().Empty())
	assert.Equal(t, image.Rectangle{}, c.ContentBounds())

	img, err := tiny.Render()
	require.NoError(t, err)
	hasShadow := false
	for y := range tiny.Height {
		for x := range tiny.Width {
			a := img.RGBAAt(x, y).A
			assert.LessOrEqual(t, a, uint8(0x60), "pixel (%d, %d)", x, y)
			if a > 0 {
				hasShadow = true
			}
		}
	}
	assert.True(t, hasShadow)
}

func writeDebug(t *testing.T, name string, img image.Image) {
	t.Helper()
	if err := os.MkdirAll("debug", 0o755); err != nil {
		t.Log(err)
		return
	}
	fname := filepath.Join("debug", name+".png")
	f, err := os.Create(fname)
	if err != nil {
		t.Log(err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Log(err)
		return
	}
	t.Logf("wrote %s", fname)
}
