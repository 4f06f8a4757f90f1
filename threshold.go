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

import "fmt"

// Policy describes how the binarization threshold is chosen.
// The zero value selects the automatic threshold.
type Policy struct {
	manual bool
	raw    float64
}

// Manual returns a policy using a caller-supplied threshold, given in raw
// sample units (for example 0-255 for 8-bit images).
func Manual(raw float64) Policy {
	return Policy{manual: true, raw: raw}
}

// Auto returns a policy using the mean of the field as the threshold.
func Auto() Policy {
	return Policy{}
}

// IsManual reports whether the policy uses a caller-supplied value.
func (p Policy) IsManual() bool { return p.manual }

func (p Policy) String() string {
	if p.manual {
		return fmt.Sprintf("manual(%g)", p.raw)
	}
	return "auto"
}

// Resolve returns the normalized threshold for the given field.
//
// A manual value is divided by f.RawMax(). The result is not clamped to
// [0,1]; values outside this range simply give an empty contour set.
func Resolve(f *Field, p Policy) float64 {
	var t float64
	mode := "automatic"
	if p.manual {
		t = p.raw / f.RawMax()
		mode = "manual"
	} else {
		t = f.Mean()
	}
	Logger().Debug("threshold resolved", "mode", mode, "threshold", t)
	return t
}
