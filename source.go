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
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"gopkg.in/yaml.v3"
)

// ScaleType selects how an image is fitted into the content area of a card.
type ScaleType int

const (
	// FitCenter scales the image, keeping its aspect ratio, so that it fits
	// inside the content area, and centres it.
	FitCenter ScaleType = iota

	// CenterCrop scales the image, keeping its aspect ratio, so that it
	// covers the content area, and centres it.  The overhanging parts are
	// cut off.
	CenterCrop

	// FitXY stretches the image to the content area.
	FitXY
)

var scaleTypeNames = map[ScaleType]string{
	FitCenter:  "fit_center",
	CenterCrop: "center_crop",
	FitXY:      "fit_xy",
}

func (s ScaleType) String() string {
	if name, ok := scaleTypeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ScaleType(%d)", int(s))
}

// ParseScaleType converts a scale type name, as returned by
// ScaleType.String, back to the scale type.
func ParseScaleType(name string) (ScaleType, error) {
	for s, n := range scaleTypeNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown scale type %q", name)
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (s *ScaleType) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	v, err := ParseScaleType(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*s = v
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (s ScaleType) MarshalYAML() (any, error) {
	return s.String(), nil
}

// ImageSource returns a SourceRenderer which draws img into the area
// bounds, scaled according to scale.
func ImageSource(img image.Image, bounds image.Rectangle, scale ScaleType) SourceRenderer {
	return func(dst draw.Image) {
		srcRect := img.Bounds()
		if srcRect.Empty() || bounds.Empty() {
			return
		}
		dstRect := bounds
		switch scale {
		case FitCenter:
			dstRect = fitRect(srcRect.Size(), bounds)
		case CenterCrop:
			srcRect = cropRect(srcRect, bounds.Size())
		}
		draw.CatmullRom.Scale(dst, dstRect, img, srcRect, draw.Over, nil)
	}
}

// fitRect returns the largest rectangle with the aspect ratio of size
// which fits inside area, centred in area.
func fitRect(size image.Point, area image.Rectangle) image.Rectangle {
	aw, ah := area.Dx(), area.Dy()
	w, h := aw, ah
	if size.X*ah > size.Y*aw {
		h = max(1, (size.Y*aw+size.X/2)/size.X)
	} else {
		w = max(1, (size.X*ah+size.Y/2)/size.Y)
	}
	x0 := area.Min.X + (aw-w)/2
	y0 := area.Min.Y + (ah-h)/2
	return image.Rect(x0, y0, x0+w, y0+h)
}

// cropRect returns the largest part of src, centred in src, which has the
// aspect ratio of size.
func cropRect(src image.Rectangle, size image.Point) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	w, h := sw, sh
	if sw*size.Y > sh*size.X {
		w = max(1, (sh*size.X+size.Y/2)/size.Y)
	} else {
		h = max(1, (sw*size.Y+size.X/2)/size.X)
	}
	x0 := src.Min.X + (sw-w)/2
	y0 := src.Min.Y + (sh-h)/2
	return image.Rect(x0, y0, x0+w, y0+h)
}
