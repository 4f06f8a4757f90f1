package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/testcases"
)

// TestAgainstReference compares Render with PNG images rendered from the
// PDF output by Ghostscript. The reference images are created by
// "go run ./testcases/genpdf" in the module root.
func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.Rows == 0 || tc.Cols == 0 {
				continue
			}
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				refPath := filepath.Join("testdata", "reference", name+".png")
				ref, err := loadGray(refPath)
				if os.IsNotExist(err) {
					t.Skip("no reference image")
				}
				if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				set := contour.Generate(tc.Field(), tc.Threshold)
				actual := Render(set, tc.Rows, tc.Cols, &Options{Scale: 8, Thickness: 1})

				if ref.Bounds() != actual.Bounds() {
					t.Fatalf("size %v, reference %v", actual.Bounds(), ref.Bounds())
				}
				if err := compareImages(name, ref, actual); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

func loadGray(path string) (*image.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := range b.Dy() {
		for x := range b.Dx() {
			c := color.GrayModel.Convert(img.At(x+b.Min.X, y+b.Min.Y)).(color.Gray)
			gray.SetGray(x, y, c)
		}
	}
	return gray, nil
}

func compareImages(name string, expected, actual *image.Gray) error {
	const tolerance = 2
	const maxDiffPercent = 10

	total := len(expected.Pix)
	diffCount := 0
	hasDiff := false
	for i := range total {
		diff := int(expected.Pix[i]) - int(actual.Pix[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > 0 {
			hasDiff = true
			if diff > tolerance {
				diffCount++
			}
		}
	}

	maxAllowed := total * maxDiffPercent / 100
	if hasDiff {
		writeDiffImage(name, expected, actual)
	}
	if diffCount > maxAllowed {
		return fmt.Errorf("%d pixels differ by >%d (max allowed: %d)",
			diffCount, tolerance, maxAllowed)
	}
	return nil
}

// writeDiffImage writes the expected image to the red channel and the
// actual image to the green channel of debug/<name>.png.
func writeDiffImage(name string, expected, actual *image.Gray) {
	os.MkdirAll("debug", 0755)

	b := expected.Bounds()
	img := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, color.RGBA{
				R: expected.GrayAt(x, y).Y,
				G: actual.GrayAt(x, y).Y,
				A: 255,
			})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}
