// Package config loads the mazesolver settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Rangchakdv/MazeSolver/pkg/domain"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for settings outside their allowed range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the editor defaults and server addresses.
type Config struct {
	Width   int           `yaml:"width"`
	Height  int           `yaml:"height"`
	Density int           `yaml:"density"`
	Delay   time.Duration `yaml:"delay"`
	// Seed fixes the randomize seed. Nil draws a fresh seed each time.
	Seed *uint64 `yaml:"seed,omitempty"`

	Port int `yaml:"port"`
	// MetricsPort serves /metrics on a separate listener. Zero serves it on Port.
	MetricsPort int    `yaml:"metrics_port"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the built-in settings: a 15x15 maze, density 4, 200ms frames, port 8080.
func Default() Config {
	return Config{
		Width:    domain.DefaultWidth,
		Height:   domain.DefaultHeight,
		Density:  domain.DefaultDensity,
		Delay:    domain.DefaultStepDelay,
		Port:     8080,
		LogLevel: "info",
	}
}

// Load reads a YAML (or JSON) settings file over the defaults.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes settings over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", domain.ErrInvalidDimension, c.Width, c.Height)
	}
	if c.Density < 1 {
		return fmt.Errorf("%w: density must be at least 1, got %d", ErrInvalidConfig, c.Density)
	}
	if c.Delay < 0 {
		return fmt.Errorf("%w: negative delay %s", ErrInvalidConfig, c.Delay)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidConfig, c.Port)
	}
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		return fmt.Errorf("%w: metrics port %d", ErrInvalidConfig, c.MetricsPort)
	}
	return nil
}

// Marshal renders the settings as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
