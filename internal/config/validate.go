package config

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// Validate checks numeric ranges and reports every problem found.
// Option names are resolved, and checked, by the parameter store.
func (c *Config) Validate() error {
	var err error
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			err = multierr.Append(err, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0, "window.width must be positive, got %d", c.Window.Width)
	check(c.Window.Height > 0, "window.height must be positive, got %d", c.Window.Height)
	check(c.Window.FPSLimit >= 0, "window.fps_limit must not be negative, got %d", c.Window.FPSLimit)

	for i, v := range c.Scene.CubeSize {
		check(v >= 1 && v <= 250, "scene.cube_size[%d] must be in [1, 250], got %g", i, v)
	}
	check(c.Scene.SampleScale >= 1 && c.Scene.SampleScale <= 50,
		"scene.sample_scale must be in [1, 50], got %d", c.Scene.SampleScale)
	check(c.Scene.Zoom >= 0.4 && c.Scene.Zoom <= 2,
		"scene.zoom must be in [0.4, 2], got %g", c.Scene.Zoom)
	check(c.Scene.FovBase > 0 && c.Scene.FovBase < 180,
		"scene.fov_base must be in (0, 180), got %g", c.Scene.FovBase)
	check(c.Scene.OrbitStepDeg >= 0 && c.Scene.OrbitStepDeg < 360,
		"scene.orbit_step_deg must be in [0, 360), got %g", c.Scene.OrbitStepDeg)
	check(c.Scene.ZoomSmoothing > 0 && c.Scene.ZoomSmoothing <= 1,
		"scene.zoom_smoothing must be in (0, 1], got %g", c.Scene.ZoomSmoothing)
	check(!math.IsNaN(c.Scene.WStep) && !math.IsInf(c.Scene.WStep, 0),
		"scene.w_step must be finite, got %g", c.Scene.WStep)

	check(c.Noise.Seed >= 0, "noise.seed must not be negative, got %d", c.Noise.Seed)
	check(c.Noise.Frequency > 0, "noise.frequency must be positive, got %g", c.Noise.Frequency)
	check(c.Noise.Octaves >= 1 && c.Noise.Octaves <= 8,
		"noise.octaves must be in [1, 8], got %d", c.Noise.Octaves)
	check(c.Noise.Cellular.Jitter >= 0.1 && c.Noise.Cellular.Jitter <= 5,
		"noise.cellular.jitter must be in [0.1, 5], got %g", c.Noise.Cellular.Jitter)
	check(c.Noise.Warp.Amplitude >= 0.1 && c.Noise.Warp.Amplitude <= 2,
		"noise.warp.amplitude must be in [0.1, 2], got %g", c.Noise.Warp.Amplitude)

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		check(false, "logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}

	return err
}
