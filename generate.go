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
	"sync"

	"seehuhn.de/go/geom/vec"
)

// Generator extracts threshold contours from scalar fields.
// The zero value is ready to use and generates sequentially using the
// Standard case table.
//
// A Generator holds no state between calls and is safe for concurrent use.
type Generator struct {
	// Table is the case table used to map cell codes to segments.
	// Nil means Standard.
	Table *Table

	// Workers is the number of goroutines used for generation.
	// Values less than 2 select sequential generation.
	Workers int
}

// Generate returns the contour segments of f at the given threshold,
// using the Standard table.
func Generate(f *Field, threshold float64) Set {
	var g Generator
	return g.Generate(f, threshold)
}

// Generate returns the contour segments of f at the given threshold.
//
// The output is ordered by cell row, then by cell column, then by table
// order, independent of the number of workers. Fields with fewer than two
// rows or columns have no cells and give an empty set.
func (g *Generator) Generate(f *Field, threshold float64) Set {
	table := g.Table
	if table == nil {
		table = Standard
	}

	cellRows, cellCols := f.cells()
	workers := min(g.Workers, cellRows)

	var out Set
	if workers < 2 {
		workers = 1
		for row := range cellRows {
			out = table.appendRow(out, f, threshold, row)
		}
	} else {
		out = table.generateParallel(f, threshold, cellRows, workers)
	}

	Logger().Debug("contours generated",
		"rows", f.rows, "cols", f.cols,
		"cells", cellRows*cellCols,
		"segments", len(out),
		"workers", workers,
		"table", table.name)
	return out
}

// appendRow appends the segments of all cells in the given cell row.
func (t *Table) appendRow(out Set, f *Field, threshold float64, row int) Set {
	for col := range f.cols - 1 {
		code := Classify(f, threshold, row, col)
		offset := vec.Vec2{X: float64(col), Y: float64(row)}
		for _, seg := range t.cases[code] {
			out = append(out, seg.Translate(offset))
		}
	}
	return out
}

// generateParallel splits the cell rows into contiguous chunks, one per
// worker. Each row is written to its own buffer, and the buffers are
// concatenated in row order.
func (t *Table) generateParallel(f *Field, threshold float64, cellRows, workers int) Set {
	rows := make([]Set, cellRows)
	chunk := (cellRows + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < cellRows; start += chunk {
		end := min(start+chunk, cellRows)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := start; row < end; row++ {
				rows[row] = t.appendRow(nil, f, threshold, row)
			}
		}()
	}
	wg.Wait()

	total := 0
	for _, r := range rows {
		total += len(r)
	}
	if total == 0 {
		return nil
	}
	out := make(Set, 0, total)
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}
