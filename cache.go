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
	"errors"
	"fmt"
	"image"
)

// MaxBufferPixels is the largest number of pixels a render cache may hold.
const MaxBufferPixels = 1 << 26

// ErrBufferTooLarge is returned when a cache buffer of the requested size
// would exceed MaxBufferPixels.
var ErrBufferTooLarge = errors.New("buffer too large")

// CacheState describes the content of a RenderCache.
type CacheState int

const (
	// Invalid means that the buffer must be rebuilt before it is used.
	Invalid CacheState = iota

	// Building means that the buffer is being filled.
	Building

	// Valid means that the buffer holds the masked content and can be
	// blitted.
	Valid
)

func (s CacheState) String() string {
	switch s {
	case Invalid:
		return "invalid"
	case Building:
		return "building"
	case Valid:
		return "valid"
	default:
		return fmt.Sprintf("CacheState(%d)", int(s))
	}
}

// RenderCache keeps the masked content of a card between frames.
// The zero value is an empty, invalid cache without a buffer.
type RenderCache struct {
	buf   *image.RGBA
	state CacheState
}

// NewRenderCache returns an invalid cache holding a 1x1 placeholder
// buffer.  The buffer is replaced on the first call to Ensure with a
// different size.
func NewRenderCache() *RenderCache {
	return &RenderCache{
		buf:   image.NewRGBA(image.Rect(0, 0, 1, 1)),
		state: Invalid,
	}
}

// State returns the current state of the cache.
func (c *RenderCache) State() CacheState {
	return c.state
}

// Invalidate marks the content as stale.  The next call to Ensure rebuilds
// it.
func (c *RenderCache) Invalidate() {
	c.state = Invalid
}

// Image returns the buffer of the cache, or nil if no buffer has been
// allocated yet.
func (c *RenderCache) Image() *image.RGBA {
	return c.buf
}

// Ensure makes sure that the cache holds valid content of the given size.
// If the cache is invalid, the buffer is cleared (or replaced, if the size
// has changed) and fill is called to draw the new content.  The return
// value reports whether fill was called.
//
// Ensure does nothing if width or height is zero.
func (c *RenderCache) Ensure(width, height int, fill func(dst *image.RGBA)) (rebuilt bool, err error) {
	if width <= 0 || height <= 0 {
		return false, nil
	}
	if c.state == Valid && c.buf != nil && c.buf.Rect.Dx() == width && c.buf.Rect.Dy() == height {
		return false, nil
	}

	if c.buf != nil && c.buf.Rect.Dx() == width && c.buf.Rect.Dy() == height {
		clear(c.buf.Pix)
	} else {
		if int64(width)*int64(height) > MaxBufferPixels {
			c.state = Invalid
			return false, fmt.Errorf("render cache %dx%d: %w", width, height, ErrBufferTooLarge)
		}
		c.buf = image.NewRGBA(image.Rect(0, 0, width, height))
	}

	c.state = Building
	fill(c.buf)
	c.state = Valid
	return true, nil
}

// Blit draws the cached content onto s, with the top-left corner at
// origin.  Nothing is drawn unless the cache is valid.
func (c *RenderCache) Blit(s Surface, origin image.Point) {
	if c.state != Valid || c.buf == nil {
		return
	}
	s.DrawImage(c.buf, origin)
}
