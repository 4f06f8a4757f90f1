package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/contour"
)

// Config holds the settings of one run of the tool.
type Config struct {
	Input  string `mapstructure:"-"`
	Output string `mapstructure:"-"`

	Threshold string  `mapstructure:"threshold"`
	Thickness float64 `mapstructure:"thickness"`
	Cap       string  `mapstructure:"cap"`
	Scale     float64 `mapstructure:"scale"`
	Overlay   bool    `mapstructure:"overlay"`
	Workers   int     `mapstructure:"workers"`
	Table     string  `mapstructure:"table"`
	PDF       string  `mapstructure:"pdf"`
	JSON      string  `mapstructure:"json"`
	Verbose   bool    `mapstructure:"verbose"`

	policy  contour.Policy
	table   *contour.Table
	lineCap graphics.LineCapStyle
}

const defaultOutput = "output.png"

var errUsage = errors.New("usage: contour [flags] input [output]")

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("contour", pflag.ContinueOnError)
	fs.String("config", "", "read settings from this file (toml, yaml or json)")
	fs.String("threshold", "auto", "threshold in raw units 0-255, or \"auto\" for the mean intensity")
	fs.Float64("thickness", 1, "line width in output pixels")
	fs.String("cap", "butt", "line cap style: butt, round or square")
	fs.Float64("scale", 1, "output pixels per input pixel")
	fs.Bool("overlay", false, "draw the greyscale input below the contours")
	fs.Int("workers", 1, "number of goroutines used for contour generation")
	fs.String("table", contour.Standard.Name(), "case table: standard or flipped")
	fs.String("pdf", "", "also write the contours to this PDF file")
	fs.String("json", "", "also write the segment list to this JSON file")
	fs.BoolP("verbose", "v", false, "log debug information to stderr")
	return fs
}

// loadConfig combines command line flags, environment variables with
// prefix CONTOUR_, and an optional configuration file. Flags take
// precedence over the environment, which takes precedence over the file.
func loadConfig(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()

	cfgPath, _ := fs.GetString("config")
	if cfgPath == "" {
		cfgPath = os.Getenv("CONTOUR_CONFIG")
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("CONTOUR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	switch pos := fs.Args(); len(pos) {
	case 1:
		c.Input, c.Output = pos[0], defaultOutput
	case 2:
		c.Input, c.Output = pos[0], pos[1]
	default:
		return nil, errUsage
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// validate checks the settings and fills in the derived fields.
func (c *Config) validate() error {
	switch t := strings.TrimSpace(c.Threshold); t {
	case "", "auto":
		c.policy = contour.Auto()
	default:
		raw, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return fmt.Errorf("invalid threshold %q", c.Threshold)
		}
		c.policy = contour.Manual(raw)
	}

	if c.Thickness <= 0 {
		return fmt.Errorf("thickness must be positive, got %g", c.Thickness)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %g", c.Scale)
	}

	switch strings.ToLower(c.Cap) {
	case "butt":
		c.lineCap = graphics.LineCapButt
	case "round":
		c.lineCap = graphics.LineCapRound
	case "square":
		c.lineCap = graphics.LineCapSquare
	default:
		return fmt.Errorf("unknown line cap %q", c.Cap)
	}

	c.table = contour.TableByName(strings.ToLower(c.Table))
	if c.table == nil {
		return fmt.Errorf("unknown case table %q", c.Table)
	}
	return nil
}
