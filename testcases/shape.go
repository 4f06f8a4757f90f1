package testcases

import (
	"math"
	"math/rand/v2"
)

var shapeCases = []TestCase{
	grid("disc", 32, 32, 0.5, func(row, col int) float64 {
		return radial(row, col, 15.5, 15.5, 10)
	}),
	grid("ring", 48, 48, 0.5, func(row, col int) float64 {
		r := math.Hypot(float64(row)-23.5, float64(col)-23.5)
		return math.Exp(-(r - 14) * (r - 14) / 18)
	}),
	grid("ramp", 16, 24, 0.5, func(_, col int) float64 {
		return float64(col) / 23
	}),
	grid("stripes", 24, 24, 0.5, func(row, col int) float64 {
		return 0.5 + 0.5*math.Sin(float64(row+col)/2)
	}),
	grid("two_blobs", 40, 64, 0.4, func(row, col int) float64 {
		return max(radial(row, col, 19.5, 18, 12), radial(row, col, 19.5, 45, 9))
	}),
}

var largeCases = []TestCase{
	grid("waves", 256, 256, 0.5, func(row, col int) float64 {
		x, y := float64(col)/20, float64(row)/17
		return 0.5 + 0.25*(math.Sin(x)*math.Cos(y)+math.Sin(0.7*x+1.3*y))
	}),
	noise("noise", 200, 300, 42),
}

// radial returns 1 inside a disc of the given radius around (cy, cx) and
// falls off smoothly to 0 within two samples outside it.
func radial(row, col int, cy, cx, radius float64) float64 {
	d := math.Hypot(float64(row)-cy, float64(col)-cx) - radius
	return 1 - max(0, min(1, (d+1)/2))
}

// noise returns a field of uniformly distributed values, reproducible
// from the seed.
func noise(name string, rows, cols int, seed uint64) TestCase {
	rng := rand.New(rand.NewPCG(seed, seed))
	return grid(name, rows, cols, 0.5, func(int, int) float64 {
		return rng.Float64()
	})
}
