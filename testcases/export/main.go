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

// Command export renders every scenario to a PNG file, for visual
// inspection, and writes the scenario styles to an index file.
// Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/card"
	"seehuhn.de/go/card/testcases"
)

type indexEntry struct {
	Name    string       `yaml:"name"`
	Width   int          `yaml:"width"`
	Height  int          `yaml:"height"`
	Options card.Options `yaml:"options"`
}

func main() {
	outDir := flag.String("out", filepath.Join("testdata", "scenarios"), "output directory")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(*outDir, logger); err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
}

func run(outDir string, logger *slog.Logger) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	var index []indexEntry
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			img, err := sc.Render()
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			fname := filepath.Join(outDir, name+".png")
			if err := writePNG(fname, img); err != nil {
				return err
			}
			logger.Info("scenario written", "file", fname)

			index = append(index, indexEntry{
				Name:    name,
				Width:   sc.Width,
				Height:  sc.Height,
				Options: sc.Options,
			})
		}
	}

	data, err := yaml.Marshal(index)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, "index.yaml"), data, 0o644)
}

func writePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", fname, err)
	}
	return f.Close()
}
