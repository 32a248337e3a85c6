package config

import (
	"errors"
	"flag"
)

// errDisplayMode is returned when both -windowed and -fullscreen are given.
var errDisplayMode = errors.New("-windowed and -fullscreen are mutually exclusive")

// overrides holds command-line values. Zero values mean "not given".
type overrides struct {
	config     string
	debug      bool
	logFile    string
	title      string
	windowed   bool
	fullscreen bool
	width      int
	height     int
	fpsLimit   int
	state      string
}

var cli overrides

func init() {
	flag.StringVar(&cli.config, "config", "", "Path to config file (.yaml or .toml)")
	flag.BoolVar(&cli.debug, "debug", false, "Enable debug logging")
	flag.StringVar(&cli.logFile, "log", "", "Write logs to this file as well")
	flag.StringVar(&cli.title, "title", "", "Window title")
	flag.BoolVar(&cli.windowed, "windowed", false, "Run in windowed mode")
	flag.BoolVar(&cli.fullscreen, "fullscreen", false, "Run in fullscreen mode")
	flag.IntVar(&cli.width, "width", 0, "Window width")
	flag.IntVar(&cli.height, "height", 0, "Window height")
	flag.IntVar(&cli.fpsLimit, "fps", -1, "Frame rate cap, 0 for unlimited")
	flag.StringVar(&cli.state, "state", "", "State to start in")
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return cli.config
}

// apply writes the given overrides over cfg.
func (o overrides) apply(cfg *Config) error {
	if o.windowed && o.fullscreen {
		return errDisplayMode
	}

	if o.debug {
		cfg.Logging.Level = "debug"
	}
	if o.logFile != "" {
		cfg.Logging.LogFile = o.logFile
	}
	if o.title != "" {
		cfg.Window.Title = o.title
	}
	switch {
	case o.windowed:
		cfg.Window.Fullscreen = false
	case o.fullscreen:
		cfg.Window.Fullscreen = true
	}
	if o.width > 0 {
		cfg.Window.Width = o.width
	}
	if o.height > 0 {
		cfg.Window.Height = o.height
	}
	if o.fpsLimit >= 0 {
		cfg.Window.FPSLimit = o.fpsLimit
	}
	if o.state != "" {
		cfg.States.Initial = o.state
	}
	return nil
}
