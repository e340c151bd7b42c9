// Package config loads the window client's TOML configuration. Gameplay
// constants are not configurable; only presentation, clock and logging.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is returned for values that parse but cannot be used.
var ErrInvalid = errors.New("invalid config")

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type RenderConfig struct {
	Columns  int  `toml:"columns"` // ray columns across the view
	Minimap  bool `toml:"minimap"`
	KillFeed bool `toml:"kill_feed"`
}

type SimConfig struct {
	TPS  int   `toml:"tps"`
	Seed int64 `toml:"seed"` // 0 picks a time-based seed
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "text" or "json"
}

type Config struct {
	Window WindowConfig `toml:"window"`
	Render RenderConfig `toml:"render"`
	Sim    SimConfig    `toml:"sim"`
	Log    LogConfig    `toml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{Width: 960, Height: 600, Title: "Ray Sense"},
		Render: RenderConfig{Columns: 160, Minimap: true, KillFeed: true},
		Sim:    SimConfig{TPS: 60},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over the defaults. A missing file is not an error and
// yields Default(); a malformed or out-of-range file is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges the client cannot recover from.
func (c Config) Validate() error {
	switch {
	case c.Window.Width < 160 || c.Window.Height < 120:
		return fmt.Errorf("%w: window %dx%d too small", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Render.Columns < 8 || c.Render.Columns > c.Window.Width:
		return fmt.Errorf("%w: columns %d outside [8,%d]", ErrInvalid, c.Render.Columns, c.Window.Width)
	case c.Sim.TPS < 1 || c.Sim.TPS > 240:
		return fmt.Errorf("%w: tps %d outside [1,240]", ErrInvalid, c.Sim.TPS)
	}
	return nil
}
