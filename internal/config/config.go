// Package config loads the vpath command line configuration.
//
// Configuration is read from a TOML file. Missing keys keep their defaults;
// unknown keys are rejected so that typos do not go unnoticed.
//
//	precision = 3
//	hit_radius = 4.0
//
//	[preview]
//	width = 512
//	height = 512
//	padding = 16.0
//	marker_size = 3.0
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the CLI configuration.
type Config struct {
	// Precision is the number of fractional digits written for coordinates.
	Precision int `toml:"precision"`
	// HitRadius is the distance within which hit tests report end points
	// and segments.
	HitRadius float64 `toml:"hit_radius"`
	Preview   Preview `toml:"preview"`
}

// Preview configures PNG previews.
type Preview struct {
	Width   int     `toml:"width"`
	Height  int     `toml:"height"`
	Padding float64 `toml:"padding"`
	// MarkerSize is the half width of the squares drawn at command end
	// points. Zero disables markers.
	MarkerSize float64 `toml:"marker_size"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Precision: 3,
		HitRadius: 4,
		Preview: Preview{
			Width:      512,
			Height:     512,
			Padding:    16,
			MarkerSize: 3,
		},
	}
}

// Load reads the configuration file at path on top of the defaults. An
// empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r on top of the defaults and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("unknown keys:\n%s", strict.String())
		}
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	var errs []error
	if c.Precision < 0 || c.Precision > 15 {
		errs = append(errs, fmt.Errorf("precision %d out of range [0, 15]", c.Precision))
	}
	if c.HitRadius < 0 {
		errs = append(errs, fmt.Errorf("hit_radius %v is negative", c.HitRadius))
	}
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
		errs = append(errs, fmt.Errorf("preview size %dx%d must be positive", c.Preview.Width, c.Preview.Height))
	}
	if c.Preview.Padding < 0 {
		errs = append(errs, fmt.Errorf("preview padding %v is negative", c.Preview.Padding))
	}
	if c.Preview.MarkerSize < 0 {
		errs = append(errs, fmt.Errorf("preview marker_size %v is negative", c.Preview.MarkerSize))
	}
	return errors.Join(errs...)
}
