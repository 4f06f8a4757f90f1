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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Edge midpoints of the unit cell. The cell spans [0,1]×[0,1] with y
// growing downwards, so "top" is the edge shared with the previous row.
var (
	midTop    = vec.Vec2{X: 0.5, Y: 0}
	midRight  = vec.Vec2{X: 1, Y: 0.5}
	midBottom = vec.Vec2{X: 0.5, Y: 1}
	midLeft   = vec.Vec2{X: 0, Y: 0.5}
)

// Table maps each of the 16 configuration codes to the unit-cell segments
// drawn for that configuration. Crossings are always placed at edge
// midpoints.
type Table struct {
	name  string
	cases [16][]Segment
}

// Standard is the default case table.
//
// Every single-segment entry separates the corners above the threshold
// from the remaining corners. The saddle codes 5 and 10 use a fixed
// two-segment split, without sampling the cell center.
var Standard = &Table{
	name: "standard",
	cases: [16][]Segment{
		0:  nil,
		1:  {{midBottom, midLeft}},
		2:  {{midRight, midBottom}},
		3:  {{midRight, midLeft}},
		4:  {{midRight, midTop}},
		5:  {{midTop, midLeft}, {midRight, midBottom}},
		6:  {{midTop, midBottom}},
		7:  {{midLeft, midTop}},
		8:  {{midLeft, midTop}},
		9:  {{midTop, midBottom}},
		10: {{midTop, midRight}, {midLeft, midBottom}},
		11: {{midRight, midTop}},
		12: {{midLeft, midRight}},
		13: {{midBottom, midRight}},
		14: {{midBottom, midLeft}},
		15: nil,
	},
}

// Flipped is the case table used by tools which place bit 0 at the
// top-left corner of the cell. Compared to Standard, the single-corner
// entries are mirrored about the horizontal axis of the cell. The straight
// and saddle entries are the same as in Standard.
var Flipped = &Table{
	name: "flipped",
	cases: [16][]Segment{
		0:  nil,
		1:  {{midTop, midLeft}},
		2:  {{midRight, midTop}},
		3:  {{midRight, midLeft}},
		4:  {{midRight, midBottom}},
		5:  {{midTop, midLeft}, {midRight, midBottom}},
		6:  {{midTop, midBottom}},
		7:  {{midLeft, midBottom}},
		8:  {{midLeft, midBottom}},
		9:  {{midTop, midBottom}},
		10: {{midTop, midRight}, {midLeft, midBottom}},
		11: {{midRight, midBottom}},
		12: {{midLeft, midRight}},
		13: {{midTop, midRight}},
		14: {{midTop, midLeft}},
		15: nil,
	},
}

// TableByName returns the case table with the given name,
// or nil if there is no such table.
func TableByName(name string) *Table {
	switch name {
	case Standard.name:
		return Standard
	case Flipped.name:
		return Flipped
	}
	return nil
}

// Name returns the name of the table.
func (t *Table) Name() string { return t.name }

// Lookup returns the unit-cell segments for the given code.
// The returned slice is a copy and may be modified by the caller.
func (t *Table) Lookup(code Code) []Segment {
	return slices.Clone(t.cases[code&0xF])
}

// Lookup returns the unit-cell segments of the Standard table.
func Lookup(code Code) []Segment {
	return Standard.Lookup(code)
}
