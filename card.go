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

// Package card draws rectangular content as a card: the content is clipped
// to a rectangle with rounded corners, and a soft drop shadow is drawn
// around it.
//
// A frame consists of three layers, drawn in this order:
//
//  1. the shadow, built from one corner path which is replayed at all four
//     corners, and from straight gradient strips along the edges;
//  2. optionally, a flat background in the shape of the card;
//  3. the content, clipped to the card's outline.
//
// The clipped content is kept in a RenderCache and is only redrawn when the
// size of the card or its style changes, or when InvalidateContent is
// called.
//
// Card, Surface implementations and the other types in this package are
// not safe for concurrent use.
package card

import (
	"fmt"
	"image"
	"log/slog"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/card/raster"
)

// Card is a rectangular element with rounded corners and a drop shadow.
type Card struct {
	opts   Options
	style  ShadowStyle
	geom   Geometry
	shadow *ShadowGeometry
	cache  *RenderCache
	comp   MaskCompositor
	log    *slog.Logger
}

// NewCard returns a card with the given style.  The card has empty bounds
// until SetBounds is called.
func NewCard(opts Options) (*Card, error) {
	style, err := opts.style()
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Card{
		opts:  opts,
		style: style,
		cache: NewRenderCache(),
		log:   logger,
	}
	c.restyle()
	return c, nil
}

// Configure changes the shadow size and the maximal shadow size.  A shadow
// size above the maximum is reduced to the maximum.  Negative values
// return an error wrapping ErrInvalidShadowSize and leave the card
// unchanged.
func (c *Card) Configure(shadowSize, maxShadowSize float64) error {
	if err := c.style.Configure(shadowSize, maxShadowSize); err != nil {
		return err
	}
	c.opts.ShadowSize = c.style.RawShadowSize
	c.opts.MaxShadowSize = c.style.RawMaxShadowSize
	c.log.Debug("card configured",
		"shadow", c.style.RawShadowSize,
		"maxShadow", c.style.RawMaxShadowSize)
	c.restyle()
	return nil
}

// SetCornerRadius changes the corner radius.  The radius is rounded to
// whole pixels.
func (c *Card) SetCornerRadius(radius float64) error {
	if err := c.style.SetCornerRadius(radius); err != nil {
		return err
	}
	c.opts.CornerRadius = c.style.CornerRadius
	c.log.Debug("corner radius changed", "radius", c.style.CornerRadius)
	c.restyle()
	return nil
}

// restyle rebuilds everything which depends on the style.
func (c *Card) restyle() {
	c.geom.SetMaxShadowSize(c.style.MaxShadowSize())
	c.shadow = BuildShadow(c.style.CornerRadius, c.style.ShadowSize(),
		c.opts.ShadowStartColor, c.opts.ShadowEndColor)
	c.cache.Invalidate()
}

// SetBounds sets the outer bounds of the card, in the coordinates of its
// parent.  The return value reports whether the bounds have changed.  Only
// a change invalidates the cached content.
func (c *Card) SetBounds(left, top, right, bottom int) bool {
	if !c.geom.SetBounds(image.Rect(left, top, right, bottom)) {
		return false
	}
	c.cache.Invalidate()
	c.log.Debug("card bounds changed",
		"bounds", c.geom.Bounds,
		"background", c.geom.Background)
	return true
}

// InvalidateContent discards the cached content, so that the source is
// drawn again during the next call to Render.
func (c *Card) InvalidateContent() {
	c.cache.Invalidate()
}

// Geometry returns the current outer and background bounds.
func (c *Card) Geometry() Geometry {
	return c.geom
}

// Style returns the current shadow parameters.
func (c *Card) Style() ShadowStyle {
	return c.style
}

// Shadow returns the shadow primitives for the current style.
func (c *Card) Shadow() *ShadowGeometry {
	return c.shadow
}

// Mask returns the outline of the visible part of the card, in
// element-local coordinates.
func (c *Card) Mask() MaskShape {
	return maskShape(c.geom.Background, c.style.CornerRadius, c.style.Offset())
}

// ContentBounds returns the integer rectangle enclosing Mask(), for use
// with ImageSource.
func (c *Card) ContentBounds() image.Rectangle {
	m := c.Mask()
	if m.Empty() {
		return image.Rectangle{}
	}
	dy := int(c.style.Offset())
	r := c.geom.Background.Add(image.Pt(0, dy))
	if float64(dy) != c.style.Offset() {
		r.Max.Y++
	}
	return r
}

// CacheState returns the state of the cached content.
func (c *Card) CacheState() CacheState {
	return c.cache.State()
}

// Render draws one frame of the card onto s.  The surface uses
// element-local coordinates: (0, 0) is the top-left corner of the card's
// outer bounds.
//
// If the card has zero width or height, nothing is drawn.  If the cache
// buffer cannot be allocated, nothing is drawn and the error is returned.
func (c *Card) Render(s Surface, src SourceRenderer) error {
	w, h := c.geom.Size()
	if w == 0 || h == 0 {
		c.log.Debug("empty card skipped", "width", w, "height", h)
		return nil
	}

	realloc := c.cache.Image() == nil || c.cache.Image().Rect.Size() != image.Pt(w, h)
	mask := c.Mask()
	rebuilt, err := c.cache.Ensure(w, h, func(dst *image.RGBA) {
		c.comp.Composite(dst, mask, src)
	})
	if err != nil {
		return fmt.Errorf("render card: %w", err)
	}
	if rebuilt {
		c.log.Debug("card content cached",
			"width", w, "height", h, "reallocated", realloc)
	}

	PaintShadow(s, c.geom.Background, c.style, c.shadow)
	if c.opts.UseFlatBackground {
		s.FillPath(mask.Path(), matrix.Identity, raster.NonZero, SolidPaint(c.opts.BackgroundColor))
	}
	c.cache.Blit(s, image.Point{})
	return nil
}
