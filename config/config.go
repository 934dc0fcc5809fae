package config

import (
	"os"
	"unicode/utf8"

	"github.com/andareed/siftly-peaks/faults"
	"github.com/andareed/siftly-peaks/plotimage"
	"github.com/andareed/siftly-peaks/series"
	"github.com/andareed/siftly-peaks/session"
	"github.com/andareed/siftly-peaks/viewstate"
	"gopkg.in/yaml.v3"
)

// Config is the optional sfpeaks.yaml file.
type Config struct {
	Delimiter  string     `yaml:"delimiter"`
	Thresholds Thresholds `yaml:"thresholds"`
	View       View       `yaml:"view"`
	Export     Export     `yaml:"export"`
	Image      Image      `yaml:"image"`
}

// Thresholds hold the initial text of the threshold inputs; blank means unbounded.
type Thresholds struct {
	PeakMin   string `yaml:"peak_min"`
	TroughMax string `yaml:"trough_max"`
}

type View struct {
	FitMargin       float64 `yaml:"fit_margin"`        // fraction of the data span added on each side; 0 fits tightly
	MinSpanFraction float64 `yaml:"min_span_fraction"` // zoom boxes thinner than this share of the current view are rejected; 0 rejects only flat boxes
}

type Export struct {
	DefaultName   string `yaml:"default_name"`
	MissingMarker string `yaml:"missing_marker"` // CSV only
	Sheet         string `yaml:"sheet"`
}

type Image struct {
	DefaultName string `yaml:"default_name"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
}

func Default() *Config {
	cfg := &Config{
		View: View{
			FitMargin:       viewstate.DefaultFitMargin,
			MinSpanFraction: viewstate.DefaultMinSpanFraction,
		},
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads path and fills in defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, faults.IO("read config", err, path)
	}
	// keys absent from the file keep their defaults; present ones, zero included, win
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, faults.Wrap(faults.KindValidation, "parse config", err, path)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Delimiter == "" {
		c.Delimiter = series.DefaultDelimiter
	}
	if c.Export.DefaultName == "" {
		c.Export.DefaultName = "extrema.xlsx"
	}
	if c.Export.Sheet == "" {
		c.Export.Sheet = "Extrema"
	}
	if c.Image.DefaultName == "" {
		c.Image.DefaultName = "plot.png"
	}
	if c.Image.Width == 0 {
		c.Image.Width = plotimage.DefaultWidth
	}
	if c.Image.Height == 0 {
		c.Image.Height = plotimage.DefaultHeight
	}
}

func (c *Config) Validate() error {
	switch {
	case utf8.RuneCountInString(c.Delimiter) != 1:
		return faults.Newf(faults.KindValidation, "config", "delimiter must be a single character, got %q", c.Delimiter)
	case c.View.FitMargin < 0:
		return faults.Newf(faults.KindValidation, "config", "view.fit_margin must not be negative")
	case c.View.MinSpanFraction < 0 || c.View.MinSpanFraction >= 1:
		return faults.Newf(faults.KindValidation, "config", "view.min_span_fraction must be in [0, 1)")
	case c.Image.Width < 0 || c.Image.Height < 0:
		return faults.Newf(faults.KindValidation, "config", "image size must not be negative")
	}
	return nil
}

func (c *Config) SessionOptions() session.Options {
	return session.Options{
		Delimiter:       c.Delimiter,
		FitMargin:       c.View.FitMargin,
		MinSpanFraction: c.View.MinSpanFraction,
	}
}
