// Package config loads the TOML runtime configuration for Mirehollow.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window    WindowConfig    `toml:"window"`
	Camera    CameraConfig    `toml:"camera"`
	World     WorldConfig     `toml:"world"`
	Authoring AuthoringConfig `toml:"authoring"`
	Loading   LoadingConfig   `toml:"loading"`
	Logging   LoggingConfig   `toml:"logging"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type CameraConfig struct {
	Zoom float64 `toml:"zoom"`
}

type WorldConfig struct {
	MapPath       string `toml:"map_path"`
	EntityLibrary string `toml:"entity_library"`
}

// AuthoringConfig controls live map reloading during development. When
// enabled the running game polls the map file and rebuilds the world in
// place whenever it changes.
type AuthoringConfig struct {
	Enabled      bool     `toml:"enabled"`
	PollInterval Duration `toml:"poll_interval"`
}

type LoadingConfig struct {
	TransitionDuration Duration `toml:"transition_duration"`
}

// Duration parses TOML strings like "250ms" into a time.Duration.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d is not positive", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Zoom <= 0 {
		return fmt.Errorf("camera zoom %v is not positive", c.Camera.Zoom)
	}
	if c.World.MapPath == "" {
		return fmt.Errorf("world.map_path is required")
	}
	if c.Authoring.Enabled && c.Authoring.PollInterval.Duration <= 0 {
		return fmt.Errorf("authoring.poll_interval %v is not positive", c.Authoring.PollInterval.Duration)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Mirehollow",
		},
		Camera: CameraConfig{
			Zoom: 2.0,
		},
		World: WorldConfig{
			MapPath:       "data/maps/hollow.json",
			EntityLibrary: "data/entities.yaml",
		},
		Authoring: AuthoringConfig{
			Enabled:      false,
			PollInterval: Duration{500 * time.Millisecond},
		},
		Loading: LoadingConfig{
			TransitionDuration: Duration{250 * time.Millisecond},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
