// Package config provides configuration loading and structs for vecplot.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug         bool                `yaml:"debug"`
	Output        OutputConfig        `yaml:"output"`
	Overview      OverviewConfig      `yaml:"overview"`
	Normalization NormalizationConfig `yaml:"normalization"`
	Server        ServerConfig        `yaml:"server"`
	Watch         WatchConfig         `yaml:"watch"`
}

// OutputConfig holds where and how large the rendered chart is written.
type OutputConfig struct {
	Directory    string  `yaml:"directory"`
	Filename     string  `yaml:"filename"`
	WidthInches  float64 `yaml:"width_inches"`
	HeightInches float64 `yaml:"height_inches"`
	DPI          int     `yaml:"dpi"`
}

// Path returns the full output file path.
func (o *OutputConfig) Path() string {
	return filepath.Join(o.Directory, o.Filename)
}

// Bounds is a square axis range used for both X and Y.
type Bounds struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// VectorEntry is one vector drawn on the overview panel.
type VectorEntry struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Color string  `yaml:"color"`
	Label string  `yaml:"label"`
}

// OverviewConfig configures the left panel (several labelled vectors).
type OverviewConfig struct {
	Title   string        `yaml:"title"`
	Bounds  Bounds        `yaml:"bounds"`
	Vectors []VectorEntry `yaml:"vectors"`
}

// NormalizationConfig configures the right panel (a vector and its unit vector).
type NormalizationConfig struct {
	Title           string      `yaml:"title"`
	Bounds          Bounds      `yaml:"bounds"`
	Sample          VectorEntry `yaml:"sample"`
	NormalizedColor string      `yaml:"normalized_color"`
	CircleSegments  int         `yaml:"circle_segments"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// WatchConfig holds config hot-reload settings.
type WatchConfig struct {
	DebounceMillis int `yaml:"debounce_ms"`
}

// Debounce returns the debounce interval as a duration.
func (w *WatchConfig) Debounce() time.Duration {
	return time.Duration(w.DebounceMillis) * time.Millisecond
}

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// Load reads and parses the config file at path, applies defaults, and expands paths.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	cfg.Output.Directory = expandPath(cfg.Output.Directory, filepath.Dir(path))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the values the renderer cannot draw with.
// Returns an error for a non-positive or infinite canvas size, a non-positive DPI, or empty axis bounds.
func (c *Config) Validate() error {
	o := c.Output
	if !positiveFinite(o.WidthInches) {
		return fmt.Errorf("output.width_inches must be positive, got %v", o.WidthInches)
	}
	if !positiveFinite(o.HeightInches) {
		return fmt.Errorf("output.height_inches must be positive, got %v", o.HeightInches)
	}
	if o.DPI <= 0 {
		return fmt.Errorf("output.dpi must be positive, got %d", o.DPI)
	}
	if err := c.Overview.Bounds.validate(); err != nil {
		return fmt.Errorf("overview.bounds: %w", err)
	}
	if err := c.Normalization.Bounds.validate(); err != nil {
		return fmt.Errorf("normalization.bounds: %w", err)
	}
	return nil
}

func (b Bounds) validate() error {
	if math.IsNaN(b.Min) || math.IsNaN(b.Max) || math.IsInf(b.Min, 0) || math.IsInf(b.Max, 0) {
		return fmt.Errorf("min and max must be finite")
	}
	if b.Max <= b.Min {
		return fmt.Errorf("max (%v) must be greater than min (%v)", b.Max, b.Min)
	}
	return nil
}

func positiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath resolves a configured path. Paths starting with "./" are relative to configDir,
// paths starting with "~/" are relative to the home directory, anything else is left as-is.
func expandPath(path string, configDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
