// Package config loads the stitcher configuration: built-in defaults, an
// optional YAML file, then environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"pdf-stitcher/internal/layout"
	"pdf-stitcher/internal/region"
	"pdf-stitcher/internal/stitch"
)

// Config is the full runtime configuration.
type Config struct {
	Addr        string `yaml:"addr"`
	LogLevel    string `yaml:"logLevel"`
	MaxUploadMB int    `yaml:"maxUploadMB"`

	Region         region.Spec     `yaml:"region"`
	Mode           string          `yaml:"mode"`
	Cropped        bool            `yaml:"cropped"`
	FitToPage      bool            `yaml:"fitToPage"`
	FitPage        stitch.PageSize `yaml:"fitPage"`
	Layout         layout.Config   `yaml:"layout"`
	SkipUnreadable bool            `yaml:"skipUnreadable"`
}

// Default returns the built-in configuration: the default region copied
// straight from the source pages onto an A4 grid of five columns.
func Default() Config {
	return Config{
		Addr:        ":8085",
		LogLevel:    "info",
		MaxUploadMB: 64,
		Region:      region.DefaultSpec,
		Mode:        "auto",
		FitPage:     stitch.PageSize{Width: layout.A4Width, Height: layout.A4Height},
		Layout:      layout.Grid(region.DefaultSpec.Width, region.DefaultSpec.Height, 5),
	}
}

// Load reads path (if non-empty) over the defaults and applies
// STITCH_ADDR, STITCH_LOG_LEVEL and STITCH_MAX_UPLOAD_MB.
//
// A file without a layout section gets a layout derived from the rest of the
// file: one fitted page per output page when fitToPage is set, otherwise the
// default grid with cells the size of the region.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
		var keys map[string]interface{}
		if err := yaml.Unmarshal(data, &keys); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
		if _, ok := keys["layout"]; !ok {
			cfg.Layout = cfg.derivedLayout()
		}
	}

	if v, ok := os.LookupEnv("STITCH_ADDR"); ok {
		cfg.Addr = v
	}
	if v, ok := os.LookupEnv("STITCH_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("STITCH_MAX_UPLOAD_MB"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("STITCH_MAX_UPLOAD_MB: %w", err)
		}
		cfg.MaxUploadMB = n
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) derivedLayout() layout.Config {
	if c.FitToPage {
		return layout.OnePerPage(c.FitPage.Width, c.FitPage.Height)
	}
	l := c.Layout
	l.CellWidth = c.Region.Width
	l.CellHeight = c.Region.Height
	return l
}

// Validate checks every section.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.MaxUploadMB <= 0 {
		return errors.New("maxUploadMB must be positive")
	}
	if err := c.Region.Validate(); err != nil {
		return err
	}
	if _, err := region.ParseMode(c.Mode, c.Region); err != nil {
		return err
	}
	if c.FitToPage {
		if !c.Cropped {
			return errors.New("fitToPage requires cropped")
		}
		if c.FitPage.Width <= 0 || c.FitPage.Height <= 0 {
			return fmt.Errorf("fit page size %.2f x %.2f", c.FitPage.Width, c.FitPage.Height)
		}
	}
	return c.Layout.Validate()
}

// Logger returns a logrus logger at the configured level.
func (c Config) Logger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		l.SetLevel(lvl)
	}
	return l
}

// Extractor builds the region extractor described by c.
func (c Config) Extractor() (stitch.Extractor, error) {
	mode, err := region.ParseMode(c.Mode, c.Region)
	if err != nil {
		return stitch.Extractor{}, err
	}
	e := stitch.Extractor{Spec: c.Region, Mode: mode, Cropped: c.Cropped}
	if c.FitToPage {
		fit := c.FitPage
		e.FitToPage = &fit
	}
	return e, nil
}

// Options builds batch options for c.
func (c Config) Options(log logrus.FieldLogger) (stitch.Options, error) {
	e, err := c.Extractor()
	if err != nil {
		return stitch.Options{}, err
	}
	policy := stitch.AbortBatch
	if c.SkipUnreadable {
		policy = stitch.SkipUnreadable
	}
	return stitch.Options{Extractor: e, Layout: c.Layout, Policy: policy, Logger: log}, nil
}
