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

import "math"

// Coverage accumulation:
//
// Every pixel of a scanline holds two values. cover is the signed vertical
// extent of the edges crossing the pixel column, area is the same extent
// weighted by the fraction of the pixel to the right of the crossing.
// Scanning from left to right, the coverage of a pixel is the running sum
// of cover over all pixels to its left, plus its own area.

// accumulate adds the part of e inside scanline y to the cover and area
// buffers. The buffers are indexed by x-xMin. Contributions left of xMin
// are folded into the first pixel, contributions right of xMax dropped.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), e.top())
	yBot := min(float64(y+1), e.bottom())
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop, xBot := e.xAt(yTop), e.xAt(yBot)
	pixLeft := int(math.Floor(min(xTop, xBot)))
	pixRight := int(math.Floor(max(xTop, xBot)))

	if pixLeft == pixRight {
		xFrac := (xTop+xBot)/2 - float64(pixLeft)
		deposit(cover, area, xMin, xMax, pixLeft, sign*float32(yBot-yTop), xFrac)
		return
	}

	// split the edge at the pixel column boundaries
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		xFrac := e.xAt((lo+hi)/2) - float64(pix)
		deposit(cover, area, xMin, xMax, pix, sign*float32(hi-lo), xFrac)
	}
}

// deposit records a crossing of signed height c at horizontal position
// pix+xFrac.
func deposit(cover, area []float32, xMin, xMax, pix int, c float32, xFrac float64) {
	switch {
	case pix < xMin:
		cover[0] += c
		area[0] += c
	case pix < xMax:
		i := pix - xMin
		cover[i] += c
		area[i] += c * float32(1-xFrac)
	}
}

// integrateNonZero turns accumulated cover/area values into coverage
// using the nonzero winding rule. The result replaces cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero entries, together with its offset. It returns nil if all
// entries are zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}
