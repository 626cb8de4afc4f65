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
	"io"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Options describes the appearance of a card.
type Options struct {
	// ShadowSize is the shadow size in pixels.  Larger values suggest a
	// card floating higher above its background.
	ShadowSize float64 `yaml:"shadow_size"`

	// MaxShadowSize is the largest shadow size the card may ever use.  It
	// decides the room reserved around the card, so that changing the
	// shadow size does not change the layout.
	MaxShadowSize float64 `yaml:"max_shadow_size"`

	// CornerRadius is the radius of the rounded corners, in pixels.
	CornerRadius float64 `yaml:"corner_radius"`

	// UseFlatBackground fills the card with BackgroundColor before the
	// content is drawn.
	UseFlatBackground bool `yaml:"use_flat_background"`

	// BackgroundColor is the colour of the flat background.
	BackgroundColor Color `yaml:"background_color"`

	// ShadowStartColor is the shadow colour next to the card.
	ShadowStartColor Color `yaml:"shadow_start_color"`

	// ShadowEndColor is the shadow colour at its outer rim.
	ShadowEndColor Color `yaml:"shadow_end_color"`

	// ScaleType is used by ImageSource when the card shows an image.
	ScaleType ScaleType `yaml:"scale_type"`

	// Logger receives debug messages.  If this is nil, nothing is logged.
	Logger *slog.Logger `yaml:"-"`
}

// DefaultOptions returns the default card style.
func DefaultOptions() Options {
	return Options{
		ShadowSize:       8,
		MaxShadowSize:    20,
		CornerRadius:     15,
		BackgroundColor:  White,
		ShadowStartColor: ShadowStart,
		ShadowEndColor:   ShadowEnd,
		ScaleType:        FitCenter,
	}
}

// DecodeOptions reads options in YAML format from r.  Fields which are not
// present keep their default values.  Unknown fields are an error.
func DecodeOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(&opts)
	if err != nil && !errors.Is(err, io.EOF) {
		return Options{}, err
	}
	return opts, nil
}

// LoadOptions reads options from a YAML file.  If the file does not exist,
// the default options are returned.
func LoadOptions(path string) (Options, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultOptions(), nil
	} else if err != nil {
		return Options{}, fmt.Errorf("load options: %w", err)
	}
	defer f.Close()

	opts, err := DecodeOptions(f)
	if err != nil {
		return Options{}, fmt.Errorf("load options %s: %w", path, err)
	}
	return opts, nil
}

// Validate checks the numeric options.  The returned error wraps
// ErrInvalidShadowSize or ErrInvalidCornerRadius.
func (o *Options) Validate() error {
	_, err := o.style()
	return err
}

func (o *Options) style() (ShadowStyle, error) {
	return NewShadowStyle(o.ShadowSize, o.MaxShadowSize, o.CornerRadius)
}
