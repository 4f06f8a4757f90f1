// Command export writes the contour sets of all test cases to JSON, for
// comparison with other marching squares implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/testcases"
)

func main() {
	var out struct {
		TestCases []contour.Result `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, contour.Result{
				Name:      category + "_" + tc.Name,
				Rows:      tc.Rows,
				Cols:      tc.Cols,
				Threshold: tc.Threshold,
				Segments:  contour.Generate(tc.Field(), tc.Threshold),
			})
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/contours.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}
