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
	"fmt"
	"slices"
)

// DefaultRawMax is the largest raw sample value of 8-bit greyscale data.
// Manual thresholds are divided by the field's raw maximum.
const DefaultRawMax = 255

// Field is an immutable rows×cols grid of normalized intensities.
// Values are normally in [0,1], but this is not enforced.
//
// A Field is safe for concurrent use, since it is never modified after
// construction.
type Field struct {
	rows, cols int
	rawMax     float64
	data       []float64 // row-major, len(data) == rows*cols
}

// FieldOption configures a Field during construction.
type FieldOption func(*Field)

// WithRawMax sets the raw value which corresponds to the normalized
// intensity 1.  Non-positive values are ignored.
func WithRawMax(rawMax float64) FieldOption {
	return func(f *Field) {
		if rawMax > 0 {
			f.rawMax = rawMax
		}
	}
}

// NewField returns a field with the given dimensions. The data slice holds
// the values in row-major order and is copied.
func NewField(rows, cols int, data []float64, opts ...FieldOption) (*Field, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%dx%d field: %w", rows, cols, ErrShape)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%dx%d field with %d values: %w",
			rows, cols, len(data), ErrShape)
	}
	f := &Field{
		rows:   rows,
		cols:   cols,
		rawMax: DefaultRawMax,
		data:   slices.Clone(data),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// FieldFromRows returns a field built from a slice of equally long rows.
func FieldFromRows(rows [][]float64, opts ...FieldOption) (*Field, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d values, expected %d: %w",
				i, len(row), cols, ErrNonRectangular)
		}
		data = append(data, row...)
	}
	return NewField(len(rows), cols, data, opts...)
}

// Rows returns the number of rows of the field.
func (f *Field) Rows() int { return f.rows }

// Cols returns the number of columns of the field.
func (f *Field) Cols() int { return f.cols }

// RawMax returns the raw sample value which corresponds to intensity 1.
func (f *Field) RawMax() float64 { return f.rawMax }

// At returns the value at the given row and column.
// The position must be inside the field.
func (f *Field) At(row, col int) float64 {
	return f.data[row*f.cols+col]
}

// Values returns a copy of the field values in row-major order.
func (f *Field) Values() []float64 {
	return slices.Clone(f.data)
}

// Mean returns the arithmetic mean of all values.
// The mean of an empty field is 0.
func (f *Field) Mean() float64 {
	if len(f.data) == 0 {
		return 0
	}
	var sum float64
	for _, v := range f.data {
		sum += v
	}
	return sum / float64(len(f.data))
}

// cells returns the number of 2×2 cells of the field.
func (f *Field) cells() (rows, cols int) {
	if f.rows < 2 || f.cols < 2 {
		return 0, 0
	}
	return f.rows - 1, f.cols - 1
}
