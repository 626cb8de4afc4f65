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
	"github.com/stretchr/testify/require"
)

func TestCacheLifecycle(t *testing.T) {
	var c RenderCache
	assert.Equal(t, Invalid, c.State())
	assert.Nil(t, c.Image())

	calls := 0
	var seen CacheState
	fill := func(dst *image.RGBA) {
		calls++
		seen = c.State()
		dst.SetRGBA(1, 1, color.RGBA{A: 0xff})
	}

	rebuilt, err := c.Ensure(10, 8, fill)
	require.NoError(t, err)
	assert.True(t, rebuilt)
	assert.Equal(t, Building, seen)
	assert.Equal(t, Valid, c.State())
	assert.Equal(t, image.Rect(0, 0, 10, 8), c.Image().Bounds())

	rebuilt, err = c.Ensure(10, 8, fill)
	require.NoError(t, err)
	assert.False(t, rebuilt)
	assert.Equal(t, 1, calls)
}

func TestNewRenderCache(t *testing.T) {
	c := NewRenderCache()
	assert.Equal(t, Invalid, c.State())
	require.NotNil(t, c.Image())
	assert.Equal(t, image.Rect(0, 0, 1, 1), c.Image().Bounds())

	// the placeholder is never shown
	rec := &recorder{}
	c.Blit(rec, image.Point{})
	assert.Zero(t, rec.calls())

	placeholder := c.Image()
	rebuilt, err := c.Ensure(1, 1, func(*image.RGBA) {})
	require.NoError(t, err)
	assert.True(t, rebuilt)
	assert.Same(t, placeholder, c.Image())

	_, err = c.Ensure(4, 3, func(*image.RGBA) {})
	require.NoError(t, err)
	assert.NotSame(t, placeholder, c.Image())
}

func TestCacheClearsInPlace(t *testing.T) {
	var c RenderCache
	_, err := c.Ensure(10, 8, func(dst *image.RGBA) {
		dst.SetRGBA(1, 1, color.RGBA{A: 0xff})
	})
	require.NoError(t, err)
	buf := c.Image()

	c.Invalidate()
	assert.Equal(t, Invalid, c.State())
	rebuilt, err := c.Ensure(10, 8, func(dst *image.RGBA) {
		assert.Same(t, buf, dst)
		assert.Equal(t, color.RGBA{}, dst.RGBAAt(1, 1), "buffer not cleared")
	})
	require.NoError(t, err)
	assert.True(t, rebuilt)
	assert.Same(t, buf, c.Image())
}

func TestCacheReallocatesOnResize(t *testing.T) {
	var c RenderCache
	noop := func(*image.RGBA) {}
	_, err := c.Ensure(10, 8, noop)
	require.NoError(t, err)
	buf := c.Image()

	// a size change rebuilds even without Invalidate
	rebuilt, err := c.Ensure(12, 8, noop)
	require.NoError(t, err)
	assert.True(t, rebuilt)
	assert.NotSame(t, buf, c.Image())
	assert.Equal(t, image.Rect(0, 0, 12, 8), c.Image().Bounds())
}

func TestCacheZeroSize(t *testing.T) {
	var c RenderCache
	for _, size := range []image.Point{{0, 5}, {5, 0}, {0, 0}} {
		rebuilt, err := c.Ensure(size.X, size.Y, func(*image.RGBA) {
			t.Error("fill called")
		})
		assert.NoError(t, err)
		assert.False(t, rebuilt)
	}
	assert.Nil(t, c.Image())
}

func TestCacheTooLarge(t *testing.T) {
	var c RenderCache
	_, err := c.Ensure(1<<14, 1<<13, func(*image.RGBA) {
		t.Error("fill called")
	})
	assert.ErrorIs(t, err, ErrBufferTooLarge)
	assert.Equal(t, Invalid, c.State())

	rec := &recorder{}
	c.Blit(rec, image.Point{})
	assert.Zero(t, rec.calls())
}

func TestCacheBlit(t *testing.T) {
	var c RenderCache
	rec := &recorder{}
	c.Blit(rec, image.Point{})
	assert.Zero(t, rec.calls(), "blit of an invalid cache")

	_, err := c.Ensure(4, 4, func(*image.RGBA) {})
	require.NoError(t, err)
	c.Blit(rec, image.Pt(3, 5))
	assert.Equal(t, []image.Point{{3, 5}}, rec.images)

	c.Invalidate()
	c.Blit(rec, image.Pt(3, 5))
	assert.Len(t, rec.images, 1)
}

func TestCacheStateString(t *testing.T) {
	assert.Equal(t, "invalid", Invalid.String())
	assert.Equal(t, "building", Building.String())
	assert.Equal(t, "valid", Valid.String())
	assert.Equal(t, "CacheState(7)", CacheState(7).String())
}
