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

// Package pdfout writes contour sets as vector graphics to PDF files.
package pdfout

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/contour"
)

// Options controls the appearance of the PDF page.
// A nil *Options selects the defaults.
type Options struct {
	// Scale is the size of one field sample in PDF points. Zero means 1.
	Scale float64

	// Thickness is the line width in PDF points. Zero means 1.
	Thickness float64

	// Cap is the line cap style.
	Cap graphics.LineCapStyle

	// Field, if set, is painted below the contours, one grey square per
	// sample.
	Field *contour.Field
}

// Write creates a single page PDF file showing the contour set of a
// rows×cols field as black lines on a white page.
func Write(fname string, set contour.Set, rows, cols int, opts *Options) error {
	scale, thickness := 1.0, 1.0
	capStyle := graphics.LineCapButt
	var field *contour.Field
	if opts != nil {
		if opts.Scale > 0 {
			scale = opts.Scale
		}
		if opts.Thickness > 0 {
			thickness = opts.Thickness
		}
		capStyle = opts.Cap
		field = opts.Field
	}

	width := float64(cols) * scale
	height := float64(rows) * scale
	paper := &pdf.Rectangle{URx: width, URy: height}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, width, height)
	page.Fill()

	// PDF origin is bottom-left, field rows grow downwards.
	// Sample (row, col) is centered in the square starting at
	// (col·scale, row·scale).
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})
	page.Transform(matrix.Matrix{scale, 0, 0, scale, scale / 2, scale / 2})

	if field != nil {
		for row := range field.Rows() {
			for col := range field.Cols() {
				v := min(max(field.At(row, col), 0), 1)
				page.SetFillColor(color.DeviceGray(v))
				page.Rectangle(float64(col)-0.5, float64(row)-0.5, 1, 1)
				page.Fill()
			}
		}
	}

	if len(set) > 0 {
		page.SetStrokeColor(color.DeviceGray(0))
		page.SetLineWidth(thickness / scale)
		page.SetLineCap(capStyle)

		p := set.Path()
		i := 0
		for _, cmd := range p.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(p.Coords[i].X, p.Coords[i].Y)
				i++
			case path.CmdLineTo:
				page.LineTo(p.Coords[i].X, p.Coords[i].Y)
				i++
			}
		}
		page.Stroke()
	}

	return page.Close()
}
