package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/contour"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONTOUR_CONFIG", "CONTOUR_THRESHOLD", "CONTOUR_THICKNESS",
		"CONTOUR_CAP", "CONTOUR_SCALE", "CONTOUR_WORKERS", "CONTOUR_TABLE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestConfigDefaults(t *testing.T) {
	clearEnv(t)
	c, err := loadConfig([]string{"in.png"})
	require.NoError(t, err)

	assert.Equal(t, "in.png", c.Input)
	assert.Equal(t, defaultOutput, c.Output)
	assert.False(t, c.policy.IsManual())
	assert.Equal(t, 1.0, c.Thickness)
	assert.Equal(t, 1.0, c.Scale)
	assert.Equal(t, 1, c.Workers)
	assert.Equal(t, graphics.LineCapButt, c.lineCap)
	assert.Same(t, contour.Standard, c.table)
	assert.False(t, c.Overlay)
	assert.Empty(t, c.PDF)
	assert.Empty(t, c.JSON)
}

func TestConfigFlags(t *testing.T) {
	clearEnv(t)
	c, err := loadConfig([]string{
		"--threshold", "127", "--thickness", "2.5", "--cap", "Round",
		"--scale", "4", "--workers", "8", "--table", "flipped",
		"--overlay", "-v", "in.png", "out.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "out.jpg", c.Output)
	assert.Equal(t, contour.Manual(127), c.policy)
	assert.Equal(t, 2.5, c.Thickness)
	assert.Equal(t, graphics.LineCapRound, c.lineCap)
	assert.Equal(t, 4.0, c.Scale)
	assert.Equal(t, 8, c.Workers)
	assert.Same(t, contour.Flipped, c.table)
	assert.True(t, c.Overlay)
	assert.True(t, c.Verbose)
}

func TestConfigEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONTOUR_THRESHOLD", "64")
	t.Setenv("CONTOUR_CAP", "square")
	t.Setenv("CONTOUR_WORKERS", "3")

	c, err := loadConfig([]string{"in.png"})
	require.NoError(t, err)
	assert.Equal(t, contour.Manual(64), c.policy)
	assert.Equal(t, graphics.LineCapSquare, c.lineCap)
	assert.Equal(t, 3, c.Workers)

	// flags take precedence over the environment
	c, err = loadConfig([]string{"--workers", "5", "in.png"})
	require.NoError(t, err)
	assert.Equal(t, 5, c.Workers)
}

func TestConfigFile(t *testing.T) {
	clearEnv(t)
	fname := filepath.Join(t.TempDir(), "contour.toml")
	body := "threshold = \"200\"\nscale = 3.0\ncap = \"round\"\n"
	require.NoError(t, os.WriteFile(fname, []byte(body), 0o644))

	c, err := loadConfig([]string{"--config", fname, "in.png"})
	require.NoError(t, err)
	assert.Equal(t, contour.Manual(200), c.policy)
	assert.Equal(t, 3.0, c.Scale)
	assert.Equal(t, graphics.LineCapRound, c.lineCap)

	// the environment takes precedence over the file
	t.Setenv("CONTOUR_SCALE", "2")
	t.Setenv("CONTOUR_CONFIG", fname)
	c, err = loadConfig([]string{"in.png"})
	require.NoError(t, err)
	assert.Equal(t, 2.0, c.Scale)
	assert.Equal(t, contour.Manual(200), c.policy)

	_, err = loadConfig([]string{"--config", filepath.Join(t.TempDir(), "missing.toml"), "in.png"})
	assert.Error(t, err)
}

func TestConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		msg  string
	}{
		{"threshold", []string{"--threshold", "bright", "in.png"}, "invalid threshold"},
		{"thickness", []string{"--thickness", "0", "in.png"}, "thickness must be positive"},
		{"scale", []string{"--scale", "-1", "in.png"}, "scale must be positive"},
		{"cap", []string{"--cap", "pointy", "in.png"}, "unknown line cap"},
		{"table", []string{"--table", "mirrored", "in.png"}, "unknown case table"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			_, err := loadConfig(tc.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestConfigUsage(t *testing.T) {
	clearEnv(t)
	_, err := loadConfig(nil)
	assert.ErrorIs(t, err, errUsage)
	_, err = loadConfig([]string{"a.png", "b.png", "c.png"})
	assert.ErrorIs(t, err, errUsage)

	_, err = loadConfig([]string{"--help"})
	assert.ErrorIs(t, err, pflag.ErrHelp)
}

// writeInput writes a 2×2 image with a bright left column.
func writeInput(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	copy(img.Pix, []uint8{230, 25, 230, 25})

	fname := filepath.Join(dir, "in.png")
	fd, err := os.Create(fname)
	require.NoError(t, err)
	require.NoError(t, png.Encode(fd, img))
	require.NoError(t, fd.Close())
	return fname
}

func TestRun(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	in := writeInput(t, dir)
	out := filepath.Join(dir, "out.png")
	js := filepath.Join(dir, "out.json")

	c, err := loadConfig([]string{"--scale", "10", "--thickness", "2", "--json", js, in, out})
	require.NoError(t, err)

	stdout := &bytes.Buffer{}
	require.NoError(t, run(c, stdout))
	assert.Equal(t, "Automatic threshold set to: 0.500\nResult saved to "+out+"\n", stdout.String())

	fd, err := os.Open(out)
	require.NoError(t, err)
	defer fd.Close()
	img, err := png.Decode(fd)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 20), img.Bounds())

	data, err := os.ReadFile(js)
	require.NoError(t, err)
	var res contour.Result
	require.NoError(t, json.Unmarshal(data, &res))
	assert.Equal(t, "in.png", res.Name)
	assert.Equal(t, 2, res.Rows)
	assert.Len(t, res.Segments, 1)
}

func TestRunFormats(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	in := writeInput(t, dir)

	for _, ext := range []string{".png", ".jpg", ".bmp", ".tiff"} {
		t.Run(ext, func(t *testing.T) {
			out := filepath.Join(dir, "out"+ext)
			c, err := loadConfig([]string{"--threshold", "100", "--overlay", in, out})
			require.NoError(t, err)

			stdout := &bytes.Buffer{}
			require.NoError(t, run(c, stdout))
			assert.Contains(t, stdout.String(), "Manual threshold set to: 0.392")

			fd, err := os.Open(out)
			require.NoError(t, err)
			defer fd.Close()
			_, format, err := image.DecodeConfig(fd)
			require.NoError(t, err)
			assert.Contains(t, map[string]string{
				".png": "png", ".jpg": "jpeg", ".bmp": "bmp", ".tiff": "tiff",
			}[ext], format)
		})
	}
}

func TestRunMissingInput(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	c, err := loadConfig([]string{filepath.Join(dir, "missing.png"), filepath.Join(dir, "out.png")})
	require.NoError(t, err)
	assert.Error(t, run(c, &bytes.Buffer{}))
	assert.NoFileExists(t, filepath.Join(dir, "out.png"))
}
