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
	"encoding/json"
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Result describes one contour extraction run in a form suitable for
// JSON encoding.
type Result struct {
	Name      string  `json:"name,omitempty"`
	Rows      int     `json:"rows"`
	Cols      int     `json:"cols"`
	Threshold float64 `json:"threshold"`
	Segments  Set     `json:"segments"`
}

// MarshalJSON encodes the set as a list of segments, each a pair of
// [x, y] points.
func (s Set) MarshalJSON() ([]byte, error) {
	out := make([][2][2]float64, len(s))
	for i, seg := range s {
		out[i] = [2][2]float64{{seg.A.X, seg.A.Y}, {seg.B.X, seg.B.Y}}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the format written by MarshalJSON.
func (s *Set) UnmarshalJSON(data []byte) error {
	var in [][][]float64
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	res := make(Set, len(in))
	for i, seg := range in {
		if len(seg) != 2 || len(seg[0]) != 2 || len(seg[1]) != 2 {
			return fmt.Errorf("segment %d: expected two [x, y] points", i)
		}
		res[i] = Segment{
			A: vec.Vec2{X: seg[0][0], Y: seg[0][1]},
			B: vec.Vec2{X: seg[1][0], Y: seg[1][1]},
		}
	}
	*s = res
	return nil
}
