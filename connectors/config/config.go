package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the structure of config.yml used by the tool.
// Every field has a default so the file itself is optional.
type Config struct {
	Data struct {
		Input     string `yaml:"input"`
		OutputDir string `yaml:"output_dir"`
	} `yaml:"data"`
	Histogram struct {
		File string `yaml:"file"`
		Bins int    `yaml:"bins"`
	} `yaml:"histogram"`
	Web struct {
		Addr string `yaml:"addr"`
	} `yaml:"web"`
}

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	var c Config
	c.Data.Input = filepath.Join("data", "synthetic_revenue.csv")
	c.Data.OutputDir = "output"
	c.Histogram.File = "revenue_leakage_hist.png"
	c.Histogram.Bins = 15
	c.Web.Addr = ":8080"
	return &c
}

// Load parses the YAML configuration file at path. A missing file is not an
// error: defaults are returned. Fields left empty in the file keep defaults.
func Load(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if c.Data.Input == "" {
		c.Data.Input = Default().Data.Input
	}
	if c.Data.OutputDir == "" {
		c.Data.OutputDir = Default().Data.OutputDir
	}
	if c.Histogram.File == "" {
		c.Histogram.File = Default().Histogram.File
	}
	if c.Histogram.Bins <= 0 {
		c.Histogram.Bins = Default().Histogram.Bins
	}
	if c.Web.Addr == "" {
		c.Web.Addr = Default().Web.Addr
	}
	slog.Info(fmt.Sprintf("Loaded config: %s", path))
	return c, nil
}

// FromEnv loads the config file named by CONFIG_PATH, defaulting to ./config.yml.
func FromEnv() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yml"
	}
	return Load(path)
}

// HistogramPath is the full path of the histogram image under the output directory.
func (c *Config) HistogramPath() string {
	return filepath.Join(c.Data.OutputDir, c.Histogram.File)
}

// CustomerLeakagePath is the full path of the per-customer leakage CSV.
func (c *Config) CustomerLeakagePath() string {
	return filepath.Join(c.Data.OutputDir, "leakage_by_customer.csv")
}
