// Package noise provides a seeded 3D coherent noise generator.
//
// The generator supports several base algorithms (OpenSimplex, Perlin, value,
// cubic value and cellular noise), fractal octave summation and domain
// warping. Every sample is bounded to [-1, 1].
package noise

import "math"

// Type selects the base noise algorithm.
type Type int

const (
	OpenSimplex2 Type = iota
	OpenSimplex2S
	Cellular
	Perlin
	ValueCubic
	Value
)

// FractalMode enables or disables fractal processing.
type FractalMode int

const (
	FractalModeNone FractalMode = iota
	FractalModeFractal
)

// FractalType selects how octaves are combined.
type FractalType int

const (
	FractalNone FractalType = iota
	FractalFBm
	FractalRidged
	FractalPingPong
	FractalDomainWarpProgressive
	FractalDomainWarpIndependent
)

// IsDomainWarp reports whether the fractal type is one of the warp variants.
func (t FractalType) IsDomainWarp() bool {
	return t == FractalDomainWarpProgressive || t == FractalDomainWarpIndependent
}

// CellularDistance selects the distance metric used by cellular noise.
type CellularDistance int

const (
	DistanceEuclidean CellularDistance = iota
	DistanceEuclideanSq
	DistanceManhattan
	DistanceHybrid
)

// CellularReturn selects what cellular noise reports.
type CellularReturn int

const (
	ReturnCellValue CellularReturn = iota
	ReturnDistance
	ReturnDistance2
	ReturnDistance2Add
	ReturnDistance2Sub
	ReturnDistance2Mul
	ReturnDistance2Div
)

// WarpType selects the generator used for domain warp offsets.
type WarpType int

const (
	WarpOpenSimplex2 WarpType = iota
	WarpOpenSimplex2Reduced
	WarpBasicGrid
)

// CellularConfig holds cellular-only settings.
type CellularConfig struct {
	Distance CellularDistance
	Return   CellularReturn
	Jitter   float64
}

// WarpConfig holds domain warp settings.
type WarpConfig struct {
	Type      WarpType
	Amplitude float64
}

// Config describes a generator. It is comparable, so callers can detect changes with ==.
type Config struct {
	Type      Type
	Seed      int32
	Frequency float64

	Mode       FractalMode
	Fractal    FractalType
	Octaves    int
	Lacunarity float64
	Gain       float64

	WeightedStrength float64
	PingPongStrength float64

	Cellular CellularConfig
	Warp     WarpConfig
}

// DefaultConfig returns the stock generator settings: OpenSimplex2, seed 1337,
// frequency 0.01, three octaves.
func DefaultConfig() Config {
	return Config{
		Type:             OpenSimplex2,
		Seed:             1337,
		Frequency:        0.01,
		Mode:             FractalModeNone,
		Fractal:          FractalNone,
		Octaves:          3,
		Lacunarity:       2.0,
		Gain:             0.5,
		PingPongStrength: 2.0,
		Cellular: CellularConfig{
			Distance: DistanceEuclideanSq,
			Return:   ReturnDistance,
			Jitter:   1.0,
		},
		Warp: WarpConfig{
			Type:      WarpOpenSimplex2,
			Amplitude: 1.0,
		},
	}
}

// FractalActive reports whether octave summation (FBm, Ridged, PingPong) applies.
func (c Config) FractalActive() bool {
	if c.Mode != FractalModeFractal {
		return false
	}
	switch c.Fractal {
	case FractalFBm, FractalRidged, FractalPingPong:
		return true
	}
	return false
}

// WarpActive reports whether domain warping applies.
// Warp settings are inert unless the fractal mode is on and a warp variant is selected.
func (c Config) WarpActive() bool {
	return c.Mode == FractalModeFractal && c.Fractal.IsDomainWarp()
}

// sampler3 evaluates a single octave of 3D noise in frequency space.
type sampler3 interface {
	sample(x, y, z float64) float64
}

// Generator evaluates 3D noise for a fixed Config.
type Generator struct {
	cfg      Config
	octaves  []sampler3
	bounding float64
	warps    []warpSampler
}

// New builds a generator. Invalid numeric settings fall back to defaults.
func New(cfg Config) *Generator {
	cfg = sanitize(cfg)
	g := &Generator{cfg: cfg}

	n := 1
	if cfg.FractalActive() || cfg.WarpActive() {
		n = cfg.Octaves
	}

	if cfg.FractalActive() {
		g.octaves = make([]sampler3, n)
		for i := range g.octaves {
			g.octaves[i] = newSampler(cfg, int64(cfg.Seed)+int64(i))
		}
	} else {
		g.octaves = []sampler3{newSampler(cfg, int64(cfg.Seed))}
	}
	g.bounding = fractalBounding(cfg.Gain, len(g.octaves))

	if cfg.WarpActive() {
		g.warps = make([]warpSampler, n)
		for i := range g.warps {
			g.warps[i] = newWarpSampler(cfg.Warp.Type, int64(cfg.Seed)+int64(i))
		}
	}

	return g
}

// Config returns the (sanitized) configuration the generator was built from.
func (g *Generator) Config() Config {
	return g.cfg
}

// Noise3 returns the noise value at (x, y, z) in [-1, 1].
func (g *Generator) Noise3(x, y, z float64) float64 {
	f := g.cfg.Frequency
	x, y, z = x*f, y*f, z*f

	if !g.cfg.FractalActive() {
		return clamp1(g.octaves[0].sample(x, y, z))
	}

	switch g.cfg.Fractal {
	case FractalRidged:
		return clamp1(g.ridged(x, y, z))
	case FractalPingPong:
		return clamp1(g.pingPong(x, y, z))
	default:
		return clamp1(g.fbm(x, y, z))
	}
}

func newSampler(cfg Config, seed int64) sampler3 {
	switch cfg.Type {
	case OpenSimplex2:
		return newSimplexSampler(seed, true)
	case OpenSimplex2S:
		return newSimplexSampler(seed, false)
	case Cellular:
		return cellularSampler{seed: seed, cfg: cfg.Cellular}
	case Perlin:
		return newPerlinSampler(seed)
	case ValueCubic:
		return valueCubicSampler{seed: seed}
	default:
		return valueSampler{seed: seed}
	}
}

func sanitize(cfg Config) Config {
	def := DefaultConfig()
	if cfg.Frequency <= 0 || math.IsNaN(cfg.Frequency) {
		cfg.Frequency = def.Frequency
	}
	if cfg.Octaves < 1 {
		cfg.Octaves = 1
	}
	if cfg.Lacunarity <= 0 {
		cfg.Lacunarity = def.Lacunarity
	}
	if cfg.Gain < 0 {
		cfg.Gain = -cfg.Gain
	}
	if cfg.PingPongStrength <= 0 {
		cfg.PingPongStrength = def.PingPongStrength
	}
	if cfg.Cellular.Jitter < 0 {
		cfg.Cellular.Jitter = 0
	}
	return cfg
}

func clamp1(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	if math.IsNaN(v) {
		return 0
	}
	return v
}
