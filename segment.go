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

package contour

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Segment is a straight line segment from A to B.
//
// Segments produced by a Generator use field-index coordinates: X runs
// along the columns and Y along the rows of the field.
type Segment struct {
	A, B vec.Vec2
}

// Translate returns the segment shifted by d.
func (s Segment) Translate(d vec.Vec2) Segment {
	return Segment{A: s.A.Add(d), B: s.B.Add(d)}
}

// Set is an ordered list of contour segments.
//
// Sets returned by a Generator are ordered by cell row, then by cell
// column, then by the order of the segments in the case table.
type Set []Segment

// Path returns the segments as a path, with one MoveTo/LineTo pair per
// segment.
func (s Set) Path() *path.Data {
	p := &path.Data{}
	for _, seg := range s {
		p = p.MoveTo(seg.A).LineTo(seg.B)
	}
	return p
}

// Bounds returns the smallest rectangle containing all segment endpoints.
// The zero rectangle is returned for an empty set.
func (s Set) Bounds() rect.Rect {
	if len(s) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{LLx: s[0].A.X, LLy: s[0].A.Y, URx: s[0].A.X, URy: s[0].A.Y}
	for _, seg := range s {
		for _, p := range [2]vec.Vec2{seg.A, seg.B} {
			b.LLx = min(b.LLx, p.X)
			b.LLy = min(b.LLy, p.Y)
			b.URx = max(b.URx, p.X)
			b.URy = max(b.URy, p.Y)
		}
	}
	return b
}
