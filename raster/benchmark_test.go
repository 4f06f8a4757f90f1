package raster

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/testcases"
)

const benchWidth = 0.4

func benchSet(b *testing.B) (contour.Set, int, int) {
	b.Helper()
	for _, tc := range testcases.All["large"] {
		if tc.Name == "waves" {
			return contour.Generate(tc.Field(), tc.Threshold), tc.Rows, tc.Cols
		}
	}
	b.Fatal("missing test case large/waves")
	return nil, 0, 0
}

// BenchmarkStroke benchmarks our rasterizer stroking the contours of the
// waves test case.
func BenchmarkStroke(b *testing.B) {
	set, rows, cols := benchSet(b)

	for _, scale := range []int{1, 4} {
		b.Run(fmt.Sprintf("scale%d", scale), func(b *testing.B) {
			w, h := cols*scale, rows*scale
			clip := rect.Rect{URx: float64(w), URy: float64(h)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, w, h))

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.CTM = FieldToPixels(float64(scale), 0, 0)
				r.Width = benchWidth
				r.Stroke(set, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorStroke benchmarks x/image/vector drawing the same
// segments as quadrilaterals.
func BenchmarkVectorStroke(b *testing.B) {
	set, rows, cols := benchSet(b)

	for _, scale := range []int{1, 4} {
		b.Run(fmt.Sprintf("scale%d", scale), func(b *testing.B) {
			w, h := cols*scale, rows*scale
			r := vector.NewRasterizer(w, h)
			dst := image.NewAlpha(image.Rect(0, 0, w, h))
			src := image.NewUniform(color.Alpha{A: 255})
			m := FieldToPixels(float64(scale), 0, 0)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(w, h)
				for _, s := range set {
					d := s.B.Sub(s.A)
					n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(benchWidth / 2 / d.Length())
					r.MoveTo(apply(m, s.A.Add(n)))
					r.LineTo(apply(m, s.B.Add(n)))
					r.LineTo(apply(m, s.B.Sub(n)))
					r.LineTo(apply(m, s.A.Sub(n)))
					r.ClosePath()
				}
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func apply(m matrix.Matrix, p vec.Vec2) (float32, float32) {
	return float32(m[0]*p.X + m[2]*p.Y + m[4]), float32(m[1]*p.X + m[3]*p.Y + m[5])
}
