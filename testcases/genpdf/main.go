// seehuhn.de/go/contour - isocontours of sampled scalar fields
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

// Command genpdf writes one PDF per test case, showing the contour lines of
// the field in black on a white page. If Ghostscript is installed, the PDFs
// are also rendered to PNG images, which the tests of the raster package
// use as reference output.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/pdfout"
	"seehuhn.de/go/contour/testcases"
)

const refDir = "raster/testdata/reference"

// scale is the size of a field sample in PDF points
const scale = 8

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	_, gsErr := exec.LookPath("gs")

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.Rows == 0 || tc.Cols == 0 {
				continue // nothing to draw on an empty page
			}
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			set := contour.Generate(tc.Field(), tc.Threshold)
			opts := &pdfout.Options{
				Scale:     scale,
				Thickness: 1,
			}
			if err := pdfout.Write(pdfPath, set, tc.Rows, tc.Cols, opts); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if gsErr != nil {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
