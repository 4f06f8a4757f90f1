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

// Package imagefield converts images into scalar fields.
//
// Images are converted to 8-bit greyscale using the luma weights of
// [color.GrayModel], and every pixel becomes one field sample with value
// grey/255. PNG, JPEG, GIF, BMP, TIFF and WebP input is supported.
package imagefield

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/contour"
)

// ErrEmpty is returned for images without pixels.
var ErrEmpty = errors.New("imagefield: empty image")

// Load reads an image file and converts it into a field.
func Load(fname string) (*contour.Field, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	f, err := Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return f, nil
}

// Decode decodes an image in any of the supported formats and converts
// it into a field.
func Decode(r io.Reader) (*contour.Field, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imagefield: decode: %w", err)
	}
	b := img.Bounds()
	contour.Logger().Debug("image decoded",
		"format", format, "width", b.Dx(), "height", b.Dy())
	return FromImage(img)
}

// Gray returns a greyscale copy of img, with bounds starting at (0, 0).
func Gray(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray
}

// FromImage converts img into a field with one sample per pixel.
// Row 0 of the field is the top row of the image.
func FromImage(img image.Image) (*contour.Field, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmpty
	}

	gray, ok := img.(*image.Gray)
	if !ok || gray.Rect.Min != (image.Point{}) {
		gray = Gray(img)
	}

	rows, cols := b.Dy(), b.Dx()
	data := make([]float64, 0, rows*cols)
	for y := range rows {
		for _, v := range gray.Pix[y*gray.Stride : y*gray.Stride+cols] {
			data = append(data, float64(v)/contour.DefaultRawMax)
		}
	}
	return contour.NewField(rows, cols, data, contour.WithRawMax(contour.DefaultRawMax))
}

// ToImage converts a field back into a greyscale image, one pixel per
// sample. Values outside [0,1] are clamped.
func ToImage(f *contour.Field) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.Cols(), f.Rows()))
	for row := range f.Rows() {
		line := img.Pix[row*img.Stride:]
		for col := range f.Cols() {
			v := min(max(f.At(row, col), 0), 1)
			line[col] = uint8(v*contour.DefaultRawMax + 0.5)
		}
	}
	return img
}
