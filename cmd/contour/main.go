// Command contour draws the threshold contours of an image.
//
// Usage:
//
//	contour [flags] input [output]
//
// The input image is converted to greyscale and thresholded, either at a
// given raw value (0-255) or at the mean intensity. The contour lines are
// drawn in black on a white canvas of the input size and written to the
// output file (output.png by default). Run "contour --help" for the list
// of flags. All flags can also be set in a configuration file, or in the
// environment as CONTOUR_<FLAG>.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/imagefield"
	"seehuhn.de/go/contour/pdfout"
	"seehuhn.de/go/contour/raster"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "contour:", err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	contour.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "contour:", err)
		os.Exit(1)
	}
}

// run extracts the contours of cfg.Input and writes all requested outputs.
func run(cfg *Config, stdout io.Writer) error {
	field, err := imagefield.Load(cfg.Input)
	if err != nil {
		return err
	}

	threshold := contour.Resolve(field, cfg.policy)
	mode := "Automatic"
	if cfg.policy.IsManual() {
		mode = "Manual"
	}
	fmt.Fprintf(stdout, "%s threshold set to: %.3f\n", mode, threshold)

	gen := &contour.Generator{Table: cfg.table, Workers: cfg.Workers}
	set := gen.Generate(field, threshold)

	opts := &raster.Options{
		Scale:     cfg.Scale,
		Thickness: cfg.Thickness,
		Cap:       cfg.lineCap,
	}
	if cfg.Overlay {
		opts.Background = imagefield.ToImage(field)
	}
	img := raster.Render(set, field.Rows(), field.Cols(), opts)
	if err := writeImage(cfg.Output, img); err != nil {
		return err
	}

	if cfg.PDF != "" {
		pdfOpts := &pdfout.Options{
			Scale:     cfg.Scale,
			Thickness: cfg.Thickness,
			Cap:       cfg.lineCap,
		}
		if cfg.Overlay {
			pdfOpts.Field = field
		}
		err := pdfout.Write(cfg.PDF, set, field.Rows(), field.Cols(), pdfOpts)
		if err != nil {
			return fmt.Errorf("%s: %w", cfg.PDF, err)
		}
	}

	if cfg.JSON != "" {
		res := &contour.Result{
			Name:      filepath.Base(cfg.Input),
			Rows:      field.Rows(),
			Cols:      field.Cols(),
			Threshold: threshold,
			Segments:  set,
		}
		if err := writeJSON(cfg.JSON, res); err != nil {
			return err
		}
	}

	fmt.Fprintf(stdout, "Result saved to %s\n", cfg.Output)
	return nil
}

// writeImage encodes img in the format given by the file name extension.
// Unknown extensions are written as PNG.
func writeImage(fname string, img image.Image) (err error) {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()

	switch strings.ToLower(filepath.Ext(fname)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(fd, img, &jpeg.Options{Quality: 95})
	case ".bmp":
		err = bmp.Encode(fd, img)
	case ".tif", ".tiff":
		err = tiff.Encode(fd, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = png.Encode(fd, img)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}

func writeJSON(fname string, res *contour.Result) (err error) {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(fd)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
