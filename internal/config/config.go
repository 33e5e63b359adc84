// Package config loads the server configuration from an optional YAML file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	yaml "github.com/goccy/go-yaml"
)

// Environment variables consulted by Load. They override the file.
const (
	EnvConfigPath = "COLOR_MCP_CONFIG"
	EnvLogLevel   = "COLOR_MCP_LOG_LEVEL"
	EnvMetrics    = "COLOR_MCP_METRICS_ADDR"
)

type Config struct {
	LogLevel         string    `yaml:"log_level"`
	MetricsAddr      string    `yaml:"metrics_addr"`
	MaxDocumentBytes int       `yaml:"max_document_bytes"`
	Swatch           SwatchCfg `yaml:"swatch"`
	OCR              OCRCfg    `yaml:"ocr"`
}

type SwatchCfg struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	CheckerSize int `yaml:"checker_size"`
}

type OCRCfg struct {
	Language string `yaml:"language"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:         "info",
		MaxDocumentBytes: 4 << 20,
		Swatch: SwatchCfg{
			Width:       64,
			Height:      64,
			CheckerSize: 8,
		},
		OCR: OCRCfg{
			Language: "eng",
		},
	}
}

// Parse reads a YAML config file on top of the defaults and validates it.
// Unknown keys are rejected.
func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f, yaml.DisallowUnknownField())
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not parse %s: %w", filename, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// Load returns the configuration for the server process.
//
// The file is taken from filename, or from COLOR_MCP_CONFIG when filename is
// empty; with neither set the defaults are used. COLOR_MCP_LOG_LEVEL and
// COLOR_MCP_METRICS_ADDR override the corresponding keys.
func Load(filename string) (*Config, error) {
	if filename == "" {
		filename = os.Getenv(EnvConfigPath)
	}

	cfg := Default()
	if filename != "" {
		var err error
		cfg, err = Parse(filename)
		if err != nil {
			return nil, err
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvMetrics); v != "" {
		cfg.MetricsAddr = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q is not one of debug, info, warn, error", c.LogLevel)
	}
	if c.MaxDocumentBytes <= 0 {
		return fmt.Errorf("max_document_bytes must be positive, got %d", c.MaxDocumentBytes)
	}
	if err := c.Swatch.Validate(); err != nil {
		return fmt.Errorf("swatch is invalid: %w", err)
	}
	if c.OCR.Language == "" {
		return fmt.Errorf("ocr.language must not be empty")
	}
	return nil
}

func (s *SwatchCfg) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("size %dx%d must be positive", s.Width, s.Height)
	}
	if s.Width > 4096 || s.Height > 4096 {
		return fmt.Errorf("size %dx%d exceeds 4096x4096", s.Width, s.Height)
	}
	if s.CheckerSize <= 0 {
		return fmt.Errorf("checker_size must be positive, got %d", s.CheckerSize)
	}
	return nil
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return strings.EqualFold(c.LogLevel, "debug")
}
