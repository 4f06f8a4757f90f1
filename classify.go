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

// Code is the 4-bit configuration of a cell. A bit is set if the
// corresponding corner is strictly above the threshold.
type Code uint8

// Corner bits of a Code.
const (
	BottomLeft  Code = 1 << iota // field[row+1, col]
	BottomRight                  // field[row+1, col+1]
	TopRight                     // field[row, col+1]
	TopLeft                      // field[row, col]
)

// Saddle reports whether c is one of the two ambiguous configurations,
// where diagonally opposite corners agree.
func (c Code) Saddle() bool {
	return c == BottomLeft|TopRight || c == BottomRight|TopLeft
}

// Classify returns the configuration code of the cell whose top-left
// corner is at (row, col). The caller must ensure 0 <= row < f.Rows()-1
// and 0 <= col < f.Cols()-1.
func Classify(f *Field, threshold float64, row, col int) Code {
	top := f.data[row*f.cols+col : row*f.cols+col+2]
	bot := f.data[(row+1)*f.cols+col : (row+1)*f.cols+col+2]

	var c Code
	if bot[0] > threshold {
		c |= BottomLeft
	}
	if bot[1] > threshold {
		c |= BottomRight
	}
	if top[1] > threshold {
		c |= TopRight
	}
	if top[0] > threshold {
		c |= TopLeft
	}
	return c
}
