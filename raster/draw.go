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

package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/contour"
)

// Options controls how a contour set is drawn.
// A nil *Options is equivalent to the zero value.
type Options struct {
	// Scale is the number of output pixels per field sample.
	// Zero means 1.
	Scale float64

	// Thickness is the line width in output pixels. Zero means 1.
	Thickness float64

	// Cap is the style of the segment endpoints.
	Cap graphics.LineCapStyle

	// Background, if set, is scaled to the canvas and drawn below the
	// contours by Render. Otherwise the canvas is white.
	Background image.Image
}

func (o *Options) scale() float64 {
	if o == nil || o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

func (o *Options) thickness() float64 {
	if o == nil || o.Thickness <= 0 {
		return 1
	}
	return o.Thickness
}

func (o *Options) lineCap() graphics.LineCapStyle {
	if o == nil {
		return graphics.LineCapButt
	}
	return o.Cap
}

// CanvasSize returns the size of the canvas used by Render for a field
// with the given dimensions.
func CanvasSize(rows, cols int, opts *Options) (width, height int) {
	s := opts.scale()
	return int(math.Round(float64(cols) * s)), int(math.Round(float64(rows) * s))
}

// FieldToPixels returns the transformation from field-index coordinates
// to pixel coordinates of a canvas whose origin is at (x0, y0). Field
// sample (row, col) maps to the center of the scale×scale block of
// pixels starting at (x0+col·scale, y0+row·scale).
func FieldToPixels(scale float64, x0, y0 int) matrix.Matrix {
	return matrix.Matrix{scale, 0, 0, scale, float64(x0) + scale/2, float64(y0) + scale/2}
}

// Render draws the contour set of a rows×cols field as black lines onto a
// new canvas. The canvas is white unless opts.Background is set.
func Render(set contour.Set, rows, cols int, opts *Options) *image.Gray {
	w, h := CanvasSize(rows, cols, opts)
	dst := image.NewGray(image.Rect(0, 0, w, h))

	if opts != nil && opts.Background != nil {
		bg := opts.Background
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), bg, bg.Bounds(), draw.Src, nil)
	} else {
		draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	}

	Draw(dst, set, opts)
	return dst
}

// Draw darkens dst along the segments of set. Field coordinates are
// mapped to dst using FieldToPixels with the origin of dst.Bounds().
// Pixels are multiplied by one minus the coverage, so that fully covered
// pixels become black.
func Draw(dst *image.Gray, set contour.Set, opts *Options) {
	b := dst.Bounds()
	scale := opts.scale()

	r := NewRasterizer(rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	})
	r.CTM = FieldToPixels(scale, b.Min.X, b.Min.Y)
	r.Width = opts.thickness() / scale
	r.Cap = opts.lineCap()

	r.Stroke(set, func(y, xMin int, coverage []float32) {
		row := dst.Pix[dst.PixOffset(xMin, y):]
		for i, c := range coverage {
			row[i] = uint8(float32(row[i])*(1-c) + 0.5)
		}
	})
}
