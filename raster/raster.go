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

// Package raster draws contour sets into greyscale images.
//
// A [Rasterizer] strokes the segments of a [contour.Set] and reports
// anti-aliased pixel coverage row by row. [Render] and [Draw] use it to
// paint black contour lines onto a white (or greyscale) canvas.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/contour"
)

// edge is a polygon edge in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

// xAt returns the x coordinate of the edge at height y.
func (e *edge) xAt(y float64) float64 { return e.x0 + e.dxdy*(y-e.y0) }

// Rasterizer converts contour segments into pixel coverage, the fraction
// of each pixel's area covered by the stroked segments. Internal buffers
// grow as needed and are reused between calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps field coordinates to device pixels. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness controls the accuracy of round caps in device pixels.
	// Must be positive.
	Flatness float64

	// Width is the line width in field units.
	Width float64

	// Cap sets the style of segment endpoints.
	Cap graphics.LineCapStyle

	outline []vec.Vec2 // outline vertices of all segments, contiguous
	offsets []int      // start of each polygon in outline

	edges  []edge
	active []int // indices into edges crossing the current scanline
	cover  []float32
	area   []float32

	bboxEmpty          bool
	bboxXMin, bboxXMax float64
	bboxYMin, bboxYMax float64
}

// NewRasterizer returns a Rasterizer with the given clip rectangle, an
// identity CTM, unit line width and butt caps.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
		Width:    1,
		Cap:      graphics.LineCapButt,
	}
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffers are kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
}

// Stroke strokes every segment of set with the current Width and Cap.
// Overlapping segments are painted once. The emit callback receives
// coverage row by row, in increasing y; its slice argument is valid only
// during the call.
func (r *Rasterizer) Stroke(set contour.Set, emit func(y, xMin int, coverage []float32)) {
	r.outline = r.outline[:0]
	r.offsets = r.offsets[:0]

	d := r.Width / 2
	if d <= 0 {
		return
	}
	for _, seg := range set {
		r.addSegment(seg.A, seg.B, d)
	}

	xMin, xMax, yMin, yMax, ok := r.collectEdges()
	if !ok {
		return
	}
	r.scan(xMin, xMax, yMin, yMax, emit)
}

// collectEdges converts the outline polygons into device-space edges.
// It returns the bounding box of all edges, clamped to the clip rectangle.
func (r *Rasterizer) collectEdges() (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true

	for i, start := range r.offsets {
		end := len(r.outline)
		if i+1 < len(r.offsets) {
			end = r.offsets[i+1]
		}
		poly := r.outline[start:end]
		if len(poly) < 3 {
			continue
		}
		prev := poly[len(poly)-1]
		for _, p := range poly {
			r.addEdge(prev, p)
			prev = p
		}
	}
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bboxXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bboxXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bboxYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bboxYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge transforms the edge p0→p1 to device space and records it.
// Horizontal edges do not contribute coverage and are dropped.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = min(x0, x1), max(x0, x1)
		r.bboxYMin, r.bboxYMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bboxXMin = min(r.bboxXMin, x0, x1)
	r.bboxXMax = max(r.bboxXMax, x0, x1)
	r.bboxYMin = min(r.bboxYMin, y0, y1)
	r.bboxYMax = max(r.bboxYMax, y0, y1)
}

// scan walks the scanlines of the bounding box with an active edge list,
// integrates the coverage of each row and emits the non-zero part.
func (r *Rasterizer) scan(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yTop, yBot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].top() < yBot {
			r.active = append(r.active, next)
			next++
		}
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			return r.edges[i].bottom() <= yTop
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			accumulate(&r.edges[i], y, r.cover, r.area, xMin, xMax)
		}
		integrateNonZero(r.cover, r.area)

		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// transformLinear applies the 2×2 linear part of the CTM to v.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

const (
	// defaultFlatness is the default round cap tolerance in device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the length below which a segment is treated
	// as a single point.
	zeroLengthThreshold = 1e-10
)
