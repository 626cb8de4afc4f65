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

// Command cardrender draws an image as a card with rounded corners and a
// drop shadow, and writes the result as a PNG file.
//
// Usage:
//
//	cardrender [-config card.yaml] -in photo.jpg [-w 400] [-h 300] -out card.png
//
// The style is read from the YAML config file; a missing file means the
// default style.  JPEG, PNG, GIF, BMP, TIFF and WebP input is supported.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/card"
)

func main() {
	config := flag.String("config", "card.yaml", "YAML file with the card style")
	in := flag.String("in", "", "input image")
	out := flag.String("out", "card.png", "output PNG file")
	width := flag.Int("w", 400, "width of the output, including the shadow")
	height := flag.Int("h", 300, "height of the output, including the shadow")
	background := flag.String("bg", "", "canvas colour, e.g. #ffeeeeee (default transparent)")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	err := run(*config, *in, *out, *width, *height, *background, logger)
	if err != nil {
		logger.Error("cardrender failed", "error", err)
		os.Exit(1)
	}
}

func run(config, in, out string, width, height int, background string, logger *slog.Logger) error {
	if in == "" {
		return errors.New("missing input image (-in)")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid output size %dx%d", width, height)
	}

	opts, err := card.LoadOptions(config)
	if err != nil {
		return err
	}
	opts.Logger = logger

	src, err := decodeImage(in, logger)
	if err != nil {
		return err
	}

	c, err := card.NewCard(opts)
	if err != nil {
		return err
	}
	c.SetBounds(0, 0, width, height)

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	if background != "" {
		col, err := card.ParseColor(background)
		if err != nil {
			return err
		}
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
	}

	content := card.ImageSource(src, c.ContentBounds(), opts.ScaleType)
	if err := c.Render(card.NewImageSurface(canvas), content); err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, canvas); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("card written", "file", out, "width", width, "height", height)
	return nil
}

func decodeImage(fname string, logger *slog.Logger) (image.Image, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", fname, err)
	}
	logger.Debug("input decoded", "file", fname, "format", format, "size", img.Bounds().Size())
	return img, nil
}
