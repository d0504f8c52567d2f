// Package config loads pictograph CLI settings from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ankek/terraform-provider-pictograph/internal/renderer"
)

// DefaultPath is where the CLI looks for a config file.
const DefaultPath = "pictograph.yaml"

// Config holds all pictograph configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig controls where and how pictographs are written.
type OutputConfig struct {
	Dir         string  `yaml:"dir"`
	Format      string  `yaml:"format"` // png, svg
	DPI         int     `yaml:"dpi"`
	SizeInches  float64 `yaml:"size_inches"`
	Color       string  `yaml:"color"`
	Transparent bool    `yaml:"transparent"`
	Caption     bool    `yaml:"caption"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:         ".",
			Format:      "png",
			DPI:         renderer.DefaultDPI,
			SizeInches:  renderer.DefaultSizeInches,
			Color:       renderer.DefaultColor,
			Transparent: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PICTOGRAPH_OUTPUT_DIR"); v != "" {
		c.Output.Dir = v
	}
	if v := os.Getenv("PICTOGRAPH_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("PICTOGRAPH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	c.Output.Format = strings.ToLower(c.Output.Format)
	switch c.Output.Format {
	case "png", "svg":
	default:
		return fmt.Errorf("invalid output format %q: choose png or svg", c.Output.Format)
	}

	if c.Output.DPI < renderer.MinDPI || c.Output.DPI > renderer.MaxDPI {
		return fmt.Errorf("dpi must be between %d and %d, got %d", renderer.MinDPI, renderer.MaxDPI, c.Output.DPI)
	}
	if c.Output.SizeInches <= 0 {
		return fmt.Errorf("size_inches must be positive, got %v", c.Output.SizeInches)
	}
	if !hexColor.MatchString(c.Output.Color) {
		return fmt.Errorf("invalid color %q: expected #RRGGBB", c.Output.Color)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q: choose json or console", c.Logging.Format)
	}

	return nil
}

// RenderOptions converts the output section into renderer options.
func (c *Config) RenderOptions() renderer.RenderOptions {
	return renderer.RenderOptions{
		Format:     c.Output.Format,
		OutputDir:  c.Output.Dir,
		DPI:        c.Output.DPI,
		SizeInches: c.Output.SizeInches,
		Color:      c.Output.Color,
		Opaque:     !c.Output.Transparent,
		Caption:    c.Output.Caption,
	}
}
