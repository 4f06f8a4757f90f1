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

// Package testcases holds named scalar fields used by tests, benchmarks
// and the reference tools.
package testcases

import "seehuhn.de/go/contour"

// TestCase is a scalar field together with a threshold.
type TestCase struct {
	Name      string    // lowercase a-z, 0-9 and _ only
	Rows      int       // number of field rows
	Cols      int       // number of field columns
	Values    []float64 // field values in row-major order
	Threshold float64   // normalized threshold
}

// Field returns the scalar field of the test case.
// It panics if Values does not match the dimensions.
func (tc TestCase) Field() *contour.Field {
	f, err := contour.NewField(tc.Rows, tc.Cols, tc.Values)
	if err != nil {
		panic(tc.Name + ": " + err.Error())
	}
	return f
}

// grid builds a rows×cols test case from a function of the sample position.
func grid(name string, rows, cols int, threshold float64, fn func(row, col int) float64) TestCase {
	values := make([]float64, 0, rows*cols)
	for row := range rows {
		for col := range cols {
			values = append(values, fn(row, col))
		}
	}
	return TestCase{
		Name:      name,
		Rows:      rows,
		Cols:      cols,
		Values:    values,
		Threshold: threshold,
	}
}
