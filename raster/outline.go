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
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// addSegment appends the outline polygon of the segment a→b, stroked with
// half-width d, to r.outline.
//
// All polygons share the same orientation: along the +N side from a to b,
// around the end cap, back along the -N side and around the start cap.
// This way the nonzero rule paints overlapping segments only once.
func (r *Rasterizer) addSegment(a, b vec.Vec2, d float64) {
	start := len(r.outline)

	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		// A point has no direction, so only a round cap leaves a mark.
		if r.Cap == graphics.LineCapRound {
			r.addArc(a, d, vec.Vec2{X: 1, Y: 0}, -2*math.Pi, true)
			r.offsets = append(r.offsets, start)
		}
		return
	}

	t := delta.Mul(1 / length)     // unit tangent
	n := vec.Vec2{X: -t.Y, Y: t.X} // unit normal (90° CCW)

	r.outline = append(r.outline, a.Add(n.Mul(d)), b.Add(n.Mul(d)))
	r.addCap(b, t, d)
	r.outline = append(r.outline, b.Sub(n.Mul(d)), a.Sub(n.Mul(d)))
	r.addCap(a, t.Mul(-1), d)

	r.offsets = append(r.offsets, start)
}

// addCap adds the cap at P, where T points away from the segment.
// The outline already ends at P+N·d and continues at P-N·d.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.outline = append(r.outline, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		// half circle from +N through T to -N
		r.addArc(P, d, N, -math.Pi, false)
	}
}

// addArc appends the vertices of a circular arc around center.
// startDir is the unit vector from the center to the start of the arc,
// sweep the signed angle in radians. If includeStart is false, the start
// point is assumed to be in the outline already.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	// Choose the number of chords from the device-space radius, so that
	// the sagitta r·(1-cos(θ/2)) of each chord stays below Flatness.
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length())

	n := 1
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	first := 1
	if includeStart {
		first = 0
	}
	dt := sweep / float64(n)
	for i := first; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}
