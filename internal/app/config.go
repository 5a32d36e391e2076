package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig reports a configuration value outside its valid range.
var ErrInvalidConfig = errors.New("app: invalid config")

// Start patterns for a fresh engine.
const (
	StartDefault   = "default"
	StartRandom    = "random"
	StartSpaceship = "spaceship"
)

// Config represents the runtime parameters for the application.
type Config struct {
	Engine        string `yaml:"engine"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Seed          int64  `yaml:"seed"`
	Start         string `yaml:"start"`
	TicksPerFrame int    `yaml:"ticks_per_frame"`
	TPS           int    `yaml:"tps"`
	Scale         int    `yaml:"scale"`
	Debug         bool   `yaml:"debug"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Engine:        "life",
		Width:         64,
		Height:        64,
		Seed:          42,
		Start:         StartDefault,
		TicksPerFrame: 0,
		TPS:           60,
		Scale:         1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Engine, "engine", c.Engine, "simulation engine to drive")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random start pattern")
	fs.StringVar(&c.Start, "start", c.Start, "start pattern: default, random or spaceship")
	fs.IntVar(&c.TicksPerFrame, "ticks", c.TicksPerFrame, "extra ticks per frame")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "start with engine debug mode on")
}

// Validate checks the ranges of every field.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d must be positive", ErrInvalidConfig, c.TPS)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %d must be positive", ErrInvalidConfig, c.Scale)
	case c.TicksPerFrame < 0:
		return fmt.Errorf("%w: ticks per frame %d is negative", ErrInvalidConfig, c.TicksPerFrame)
	}
	switch c.Start {
	case StartDefault, StartRandom, StartSpaceship:
	default:
		return fmt.Errorf("%w: unknown start pattern %q", ErrInvalidConfig, c.Start)
	}
	return nil
}

// EngineConfig is the string map handed to engine factories.
func (c *Config) EngineConfig() map[string]string {
	return map[string]string{
		"w": strconv.Itoa(c.Width),
		"h": strconv.Itoa(c.Height),
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
