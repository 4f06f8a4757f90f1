package testcases

import "fmt"

var basicCases = []TestCase{
	{
		Name:      "vertical_edge",
		Rows:      2,
		Cols:      2,
		Values:    []float64{0.9, 0.1, 0.9, 0.1},
		Threshold: 0.5,
	},
	grid("uniform_high", 8, 8, 0.5, func(int, int) float64 { return 0.75 }),
	grid("uniform_low", 8, 8, 0.5, func(int, int) float64 { return 0.25 }),
	grid("at_threshold", 4, 4, 0.5, func(int, int) float64 { return 0.5 }),
	grid("single_row", 1, 9, 0.5, func(_, col int) float64 { return float64(col % 2) }),
	grid("single_col", 9, 1, 0.5, func(row, _ int) float64 { return float64(row % 2) }),
	{
		Name:      "empty",
		Threshold: 0.5,
	},
}

// codeCases has one 2×2 field for every configuration code.
var codeCases = func() []TestCase {
	var cases []TestCase
	for code := range 16 {
		cases = append(cases, codeCell(code))
	}
	return cases
}()

// codeCell returns a 2×2 field whose only cell has the given
// configuration code at threshold 0.5.
func codeCell(code int) TestCase {
	v := func(bit int) float64 {
		if code&(1<<bit) != 0 {
			return 1
		}
		return 0
	}
	return TestCase{
		Name: fmt.Sprintf("code_%02d", code),
		Rows: 2,
		Cols: 2,
		Values: []float64{
			v(3), v(2), // top-left, top-right
			v(0), v(1), // bottom-left, bottom-right
		},
		Threshold: 0.5,
	}
}

var saddleCases = []TestCase{
	grid("checker_3x3", 3, 3, 0.5, checker),
	grid("checker_8x8", 8, 8, 0.5, checker),
	grid("diagonal", 6, 6, 0.5, func(row, col int) float64 {
		if row == col {
			return 1
		}
		return 0
	}),
}

func checker(row, col int) float64 {
	return float64((row + col) % 2)
}
