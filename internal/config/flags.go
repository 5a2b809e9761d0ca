package config

import (
	"flag"
	"fmt"
	"math"
)

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagWidth     = flag.Int("width", 0, "Window width")
	flagHeight    = flag.Int("height", 0, "Window height")
	flagSeed      = flag.Int64("seed", -1, "Noise seed, 0 to 2147483647")
	flagNoWarning = flag.Bool("no-warning", false, "Skip the flashing colors warning")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.UI.ShowFPS = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagSeed > math.MaxInt32 {
		return fmt.Errorf("-seed must be at most %d, got %d", math.MaxInt32, *flagSeed)
	}
	if *flagSeed >= 0 {
		cfg.Noise.Seed = int32(*flagSeed)
	}
	if *flagNoWarning {
		cfg.Scene.ContentWarning = false
	}
	return nil
}
