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
	"math"
)

// InsetShadow is the constant extra shadow, in pixels, which is added to
// both the effective shadow size and the effective maximal shadow size.
const InsetShadow = 1

var (
	// ErrInvalidShadowSize is wrapped by the errors returned for negative
	// or non-finite shadow sizes.
	ErrInvalidShadowSize = errors.New("invalid shadow size")

	// ErrInvalidCornerRadius is wrapped by the errors returned for negative
	// or non-finite corner radii.
	ErrInvalidCornerRadius = errors.New("invalid corner radius")
)

// ConfigError reports a style parameter which cannot be used.
type ConfigError struct {
	Field string
	Value float64
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("card: %s %g: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ShadowStyle holds the shadow parameters of a card, together with the
// values derived from them.
//
// The zero value is a card without rounded corners, with the minimal
// shadow.  Use NewShadowStyle or Configure to set the parameters.
type ShadowStyle struct {
	// RawShadowSize is the configured shadow size, at most RawMaxShadowSize.
	RawShadowSize float64

	// RawMaxShadowSize is the configured maximal shadow size.  It
	// determines how much room is reserved around the card.
	RawMaxShadowSize float64

	// CornerRadius is the corner radius, rounded to whole pixels.
	CornerRadius float64
}

// NewShadowStyle returns a validated shadow style.
func NewShadowStyle(shadowSize, maxShadowSize, cornerRadius float64) (ShadowStyle, error) {
	var s ShadowStyle
	if err := s.SetCornerRadius(cornerRadius); err != nil {
		return ShadowStyle{}, err
	}
	if err := s.Configure(shadowSize, maxShadowSize); err != nil {
		return ShadowStyle{}, err
	}
	return s, nil
}

// Configure sets the shadow size and the maximal shadow size.
// Negative or non-finite values are rejected and leave s unchanged.
// A shadow size above the maximum is reduced to the maximum.
func (s *ShadowStyle) Configure(shadowSize, maxShadowSize float64) error {
	if !isSize(shadowSize) {
		return &ConfigError{Field: "shadow size", Value: shadowSize, Err: ErrInvalidShadowSize}
	}
	if !isSize(maxShadowSize) {
		return &ConfigError{Field: "max shadow size", Value: maxShadowSize, Err: ErrInvalidShadowSize}
	}
	s.RawShadowSize = min(shadowSize, maxShadowSize)
	s.RawMaxShadowSize = maxShadowSize
	return nil
}

// SetCornerRadius sets the corner radius, rounded to the nearest integer.
func (s *ShadowStyle) SetCornerRadius(radius float64) error {
	if !isSize(radius) {
		return &ConfigError{Field: "corner radius", Value: radius, Err: ErrInvalidCornerRadius}
	}
	s.CornerRadius = math.Floor(radius + 0.5)
	return nil
}

// isSize reports whether v is finite and not negative.
func isSize(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

// ShadowSize returns the effective shadow size: the distance by which
// the shadow reaches past the card's outline.
func (s ShadowStyle) ShadowSize() float64 {
	return math.Floor(s.RawShadowSize*1.5 + InsetShadow + 0.5)
}

// MaxShadowSize returns the effective maximal shadow size.
func (s ShadowStyle) MaxShadowSize() float64 {
	return s.RawMaxShadowSize + InsetShadow
}

// Offset returns the vertical distance by which the visible card and its
// shadow are moved down, to suggest a light source above the card.
func (s ShadowStyle) Offset() float64 {
	return s.RawShadowSize / 2
}

// pivotInset returns the distance between a corner of the background
// bounds and the centre of the corresponding corner arc.
func (s ShadowStyle) pivotInset() float64 {
	return s.CornerRadius + InsetShadow + s.RawShadowSize/2
}
