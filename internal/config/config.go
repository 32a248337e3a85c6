// Package config handles client configuration loading and management.
package config

import "time"

// Config holds all client settings.
type Config struct {
	Window  WindowConfig  `yaml:"window" toml:"window"`
	States  StatesConfig  `yaml:"states" toml:"states"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title" toml:"title"`
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Fullscreen bool   `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool   `yaml:"vsync" toml:"vsync"`
	FPSLimit   int    `yaml:"fps_limit" toml:"fps_limit"` // 0 = unlimited
}

// StatesConfig selects and tunes the application states.
type StatesConfig struct {
	Initial        string        `yaml:"initial" toml:"initial"`
	SplashDuration time.Duration `yaml:"splash_duration" toml:"splash_duration"`
	QuitOnEscape   bool          `yaml:"quit_on_escape" toml:"quit_on_escape"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "modeswitch",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		States: StatesConfig{
			Initial:        "splash",
			SplashDuration: 2 * time.Second,
			QuitOnEscape:   true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
