package imagefield_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/imagefield"
)

func testImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	copy(img.Pix, []uint8{0, 51, 255, 255, 102, 0})
	return img
}

func TestFromImage(t *testing.T) {
	f, err := imagefield.FromImage(testImage())
	require.NoError(t, err)

	assert.Equal(t, 2, f.Rows())
	assert.Equal(t, 3, f.Cols())
	assert.Equal(t, float64(contour.DefaultRawMax), f.RawMax())
	assert.InDeltaSlice(t, []float64{0, 0.2, 1, 1, 0.4, 0}, f.Values(), 1e-12)
}

func TestFromImageOffset(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 12, 21))
	img.Set(10, 20, color.White)
	img.Set(11, 20, color.Black)

	f, err := imagefield.FromImage(img)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, f.Values())
}

func TestFromImageEmpty(t *testing.T) {
	_, err := imagefield.FromImage(image.NewGray(image.Rect(0, 0, 0, 5)))
	assert.ErrorIs(t, err, imagefield.ErrEmpty)
}

func TestToImage(t *testing.T) {
	img := testImage()
	f, err := imagefield.FromImage(img)
	require.NoError(t, err)
	assert.Equal(t, img, imagefield.ToImage(f))

	// out-of-range values are clamped
	g, err := contour.NewField(1, 2, []float64{-0.5, 1.5})
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 255}, imagefield.ToImage(g).Pix)
}

func TestDecode(t *testing.T) {
	for _, format := range []string{"png", "bmp"} {
		t.Run(format, func(t *testing.T) {
			buf := &bytes.Buffer{}
			switch format {
			case "png":
				require.NoError(t, png.Encode(buf, testImage()))
			case "bmp":
				require.NoError(t, bmp.Encode(buf, testImage()))
			}

			f, err := imagefield.Decode(buf)
			require.NoError(t, err)
			assert.InDeltaSlice(t, []float64{0, 0.2, 1, 1, 0.4, 0}, f.Values(), 1e-12)
		})
	}
}

func TestDecodeError(t *testing.T) {
	_, err := imagefield.Decode(strings.NewReader("not an image"))
	require.Error(t, err)
	assert.ErrorIs(t, err, image.ErrFormat)
	assert.Contains(t, err.Error(), "imagefield: decode")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "in.png")
	fd, err := os.Create(fname)
	require.NoError(t, err)
	require.NoError(t, png.Encode(fd, testImage()))
	require.NoError(t, fd.Close())

	f, err := imagefield.Load(fname)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Rows())

	_, err = imagefield.Load(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("garbage"), 0o644))
	_, err = imagefield.Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
}
