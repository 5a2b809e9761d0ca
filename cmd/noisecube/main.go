// Command noisecube renders a cube of voxels colored by animated 4D noise,
// with a live parameter panel.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/noisecube/internal/app"
	"github.com/Faultbox/noisecube/internal/config"
	"github.com/Faultbox/noisecube/internal/logger"
)

func init() {
	// OpenGL and SDL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Error("noisecube failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("noisecube closed normally")
	logger.Sync()
}

func run(cfg *config.Config) error {
	logger.Info("=== noisecube ===",
		zap.String("config", config.ConfigPath()),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Run()
}
