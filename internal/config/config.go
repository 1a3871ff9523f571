// Package config loads the snaprect engine settings file: cycling
// preferences and gap sizes. Defaults apply for anything the file leaves
// out; a missing file means all defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/snaprect/internal/calc"
)

// EdgeGaps mirrors calc.EdgeGaps for the YAML schema.
type EdgeGaps struct {
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
	Right  int `yaml:"right"`
}

// Config is the engine settings schema.
type Config struct {
	// Cycling controls whether repeated presses of the same shortcut walk
	// the cycle sizes.
	Cycling *bool `yaml:"cycling"`
	// CycleSizes picks which sizes the cycle visits. Empty means the
	// default half / two-thirds / one-third cycle.
	CycleSizes []string `yaml:"cycle_sizes"`
	// GapSize is the pixel gap between adjacent placements.
	GapSize int `yaml:"gap_size"`
	// EdgeGaps inset the visible frame per screen edge.
	EdgeGaps EdgeGaps `yaml:"edge_gaps"`
}

var validCycleSizes = map[string]calc.CycleSize{
	string(calc.CycleSizeHalf):          calc.CycleSizeHalf,
	string(calc.CycleSizeTwoThirds):     calc.CycleSizeTwoThirds,
	string(calc.CycleSizeOneThird):      calc.CycleSizeOneThird,
	string(calc.CycleSizeThreeQuarters): calc.CycleSizeThreeQuarters,
	string(calc.CycleSizeQuarter):       calc.CycleSizeQuarter,
}

// DefaultConfig returns the built-in settings: cycling on with the
// default sizes, no gaps.
func DefaultConfig() *Config {
	cycling := true
	return &Config{Cycling: &cycling}
}

// DefaultConfigPath returns ~/.config/snaprect/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "snaprect", "config.yaml"), nil
}

// Load reads the settings file from the standard location.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the settings file at path. A missing file yields the
// defaults; a malformed file is an error.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings for values the engine cannot use.
func (c *Config) Validate() error {
	for _, size := range c.CycleSizes {
		if _, ok := validCycleSizes[size]; !ok {
			return fmt.Errorf("unknown cycle size %q", size)
		}
	}
	if c.GapSize < 0 {
		return fmt.Errorf("gap_size must not be negative, got %d", c.GapSize)
	}
	return nil
}

// CalculationSettings converts the loaded config into the engine's
// settings value.
func (c *Config) CalculationSettings() calc.CalculationSettings {
	s := calc.CalculationSettings{
		CyclingEnabled: c.Cycling == nil || *c.Cycling,
		GapSize:        c.GapSize,
		EdgeGaps: calc.EdgeGaps{
			Top:    c.EdgeGaps.Top,
			Bottom: c.EdgeGaps.Bottom,
			Left:   c.EdgeGaps.Left,
			Right:  c.EdgeGaps.Right,
		},
	}
	if len(c.CycleSizes) == 0 {
		s.CycleSizes = calc.DefaultCycleSizes()
		return s
	}
	for _, size := range c.CycleSizes {
		s.CycleSizes = append(s.CycleSizes, validCycleSizes[size])
	}
	return s
}
