// Package noisefield approximates 4D coherent noise with a 3D generator.
//
// A 4D point (x, y, z, w) is sampled as the average of four 3D samples taken
// over the cyclic windows (x,y,z), (y,z,w), (z,w,x) and (w,x,y). Because w
// appears in three of the four windows, sweeping it slowly animates the field
// smoothly without a native 4D backend.
package noisefield

import (
	"go.uber.org/zap"

	"github.com/Faultbox/noisecube/internal/logger"
	"github.com/Faultbox/noisecube/pkg/noise"
)

// Field owns a noise generator and evaluates the plane-averaged 4D value.
type Field struct {
	gen *noise.Generator
	cfg noise.Config
}

// New creates a field for the given generator settings.
func New(cfg noise.Config) *Field {
	return &Field{gen: noise.New(cfg), cfg: cfg}
}

// Config returns the settings the field was last configured with.
func (f *Field) Config() noise.Config {
	return f.cfg
}

// Configure rebuilds the generator when cfg differs from the current
// settings and reports whether it did.
func (f *Field) Configure(cfg noise.Config) bool {
	if cfg == f.cfg {
		return false
	}
	f.gen = noise.New(cfg)
	f.cfg = cfg

	logger.Named("noisefield").Debug("noise reconfigured",
		zap.Int("type", int(cfg.Type)),
		zap.Int32("seed", cfg.Seed),
		zap.Int("fractal_mode", int(cfg.Mode)),
		zap.Int("fractal_type", int(cfg.Fractal)),
		zap.Bool("warp", cfg.WarpActive()),
	)
	return true
}

// Evaluate returns the noise value at (x, y, z, w) in [-1, 1].
func (f *Field) Evaluate(x, y, z, w float64) float64 {
	sum := f.sample(x, y, z) +
		f.sample(y, z, w) +
		f.sample(z, w, x) +
		f.sample(w, x, y)
	return sum / 4
}

func (f *Field) sample(a, b, c float64) float64 {
	if f.cfg.WarpActive() {
		a, b, c = f.gen.Warp3(a, b, c)
	}
	return f.gen.Noise3(a, b, c)
}
