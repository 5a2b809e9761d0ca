// Package params holds every user-tunable setting of the scene.
//
// The Store is mutated in place by the parameter panel each frame and read by
// the noise field and the scene renderer. Normalize brings any edited value
// back inside its bounds, so no setter ever fails.
package params

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"

	"github.com/Faultbox/noisecube/internal/config"
	"github.com/Faultbox/noisecube/pkg/noise"
)

// Option indices the visibility rules depend on.
const (
	noiseTypeCellular  = int32(noise.Cellular)
	fractalModeFractal = int32(noise.FractalModeFractal)
	fractalTypeNone    = int32(noise.FractalNone)
)

// Store holds the tunables. Option fields are indices into their option tables.
type Store struct {
	CubeSize    mgl32.Vec3
	LockCube    bool
	Zoom        float32
	SampleScale int32

	NoiseType int32
	Seed      int32
	Frequency float32

	FractalMode int32
	FractalType int32
	Octaves     int32
	Lacunarity  float32
	Gain        float32

	Distance int32
	Return   int32
	Jitter   float32

	WarpType      int32
	WarpAmplitude float32
}

// Default returns the startup settings: a 50x50x50 cube sampled every 10
// units with OpenSimplex2S noise, seed 1337.
func Default() *Store {
	return &Store{
		CubeSize:      mgl32.Vec3{50, 50, 50},
		Zoom:          1.0,
		SampleScale:   10,
		NoiseType:     int32(noise.OpenSimplex2S),
		Seed:          1337,
		Frequency:     0.01,
		FractalMode:   int32(noise.FractalModeNone),
		FractalType:   int32(noise.FractalNone),
		Octaves:       3,
		Lacunarity:    2.0,
		Gain:          0.5,
		Distance:      int32(noise.DistanceEuclideanSq),
		Return:        int32(noise.ReturnDistance),
		Jitter:        1.0,
		WarpType:      int32(noise.WarpOpenSimplex2),
		WarpAmplitude: 1.0,
	}
}

// FromConfig builds a Store from the scene and noise config sections.
// Unknown option names are reported together; the store is still returned
// with defaults in their place.
func FromConfig(scene config.SceneConfig, n config.NoiseConfig) (*Store, error) {
	s := Default()
	s.CubeSize = mgl32.Vec3{scene.CubeSize[0], scene.CubeSize[1], scene.CubeSize[2]}
	s.LockCube = scene.LockCube
	s.Zoom = scene.Zoom
	s.SampleScale = int32(scene.SampleScale)

	s.Seed = n.Seed
	s.Frequency = n.Frequency
	s.Octaves = int32(n.Octaves)
	s.Lacunarity = n.Lacunarity
	s.Gain = n.Gain
	s.Jitter = n.Cellular.Jitter
	s.WarpAmplitude = n.Warp.Amplitude

	var errs error
	lookup := func(id FieldID, name string, dst *int32) {
		if name == "" {
			return
		}
		idx, ok := OptionIndex(id, name)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("unknown %s %q", strings.ToLower(Describe(id).Label), name))
			return
		}
		*dst = idx
	}
	lookup(FieldNoiseType, n.Type, &s.NoiseType)
	lookup(FieldFractalMode, n.FractalMode, &s.FractalMode)
	lookup(FieldFractalType, n.FractalType, &s.FractalType)
	lookup(FieldDistance, n.Cellular.Distance, &s.Distance)
	lookup(FieldReturn, n.Cellular.Return, &s.Return)
	lookup(FieldWarpType, n.Warp.Type, &s.WarpType)

	s.Normalize()
	return s, errs
}

// OptionIndex finds an option by name, ignoring case.
func OptionIndex(id FieldID, name string) (int32, bool) {
	for i, opt := range Describe(id).Options {
		if strings.EqualFold(opt, strings.TrimSpace(name)) {
			return int32(i), true
		}
	}
	return 0, false
}

// Normalize clamps numeric fields, rounds cube sizes to whole units, wraps
// option indices into their tables and applies LockCube.
func (s *Store) Normalize() {
	for i := range s.CubeSize {
		v := clampf(s.CubeSize[i], FieldCubeX)
		s.CubeSize[i] = float32(math.Round(float64(v)))
	}
	if s.LockCube {
		s.CubeSize[1] = s.CubeSize[0]
		s.CubeSize[2] = s.CubeSize[0]
	}

	s.Zoom = clampf(s.Zoom, FieldZoom)
	s.SampleScale = clampi(s.SampleScale, FieldSampleScale)
	s.Seed = clampi(s.Seed, FieldSeed)
	s.Frequency = clampf(s.Frequency, FieldFrequency)
	s.Octaves = clampi(s.Octaves, FieldOctaves)
	s.Lacunarity = clampf(s.Lacunarity, FieldLacunarity)
	s.Gain = clampf(s.Gain, FieldGain)
	s.Jitter = clampf(s.Jitter, FieldJitter)
	s.WarpAmplitude = clampf(s.WarpAmplitude, FieldWarpAmplitude)

	for _, id := range AllFields() {
		if p := s.option(id); p != nil {
			*p = wrapOption(id, *p)
		}
	}
}

// Cycle steps an option field through its table by delta, wrapping at both
// ends. It reports false for fields that are not options.
func (s *Store) Cycle(id FieldID, delta int) bool {
	p := s.option(id)
	if p == nil {
		return false
	}
	*p = wrapOption(id, *p+int32(delta))
	return true
}

// Int returns the backing value of an int or option field, or nil.
func (s *Store) Int(id FieldID) *int32 {
	switch id {
	case FieldSampleScale:
		return &s.SampleScale
	case FieldSeed:
		return &s.Seed
	case FieldOctaves:
		return &s.Octaves
	}
	return s.option(id)
}

// Float returns the backing value of a float field, or nil.
func (s *Store) Float(id FieldID) *float32 {
	switch id {
	case FieldCubeX:
		return &s.CubeSize[0]
	case FieldCubeY:
		return &s.CubeSize[1]
	case FieldCubeZ:
		return &s.CubeSize[2]
	case FieldZoom:
		return &s.Zoom
	case FieldFrequency:
		return &s.Frequency
	case FieldLacunarity:
		return &s.Lacunarity
	case FieldGain:
		return &s.Gain
	case FieldJitter:
		return &s.Jitter
	case FieldWarpAmplitude:
		return &s.WarpAmplitude
	}
	return nil
}

// Toggle returns the backing value of a toggle field, or nil.
func (s *Store) Toggle(id FieldID) *bool {
	if id == FieldLockCube {
		return &s.LockCube
	}
	return nil
}

// OptionName returns the display name of an option field's current value.
func (s *Store) OptionName(id FieldID) string {
	p := s.option(id)
	if p == nil {
		return ""
	}
	return Describe(id).Options[wrapOption(id, *p)]
}

// NoiseConfig derives the noise generator settings.
func (s *Store) NoiseConfig() noise.Config {
	cfg := noise.DefaultConfig()
	cfg.Type = noise.Type(s.NoiseType)
	cfg.Seed = s.Seed
	cfg.Frequency = float64(s.Frequency)
	cfg.Mode = noise.FractalMode(s.FractalMode)
	cfg.Fractal = noise.FractalType(s.FractalType)
	cfg.Octaves = int(s.Octaves)
	cfg.Lacunarity = float64(s.Lacunarity)
	cfg.Gain = float64(s.Gain)
	cfg.Cellular = noise.CellularConfig{
		Distance: noise.CellularDistance(s.Distance),
		Return:   noise.CellularReturn(s.Return),
		Jitter:   float64(s.Jitter),
	}
	cfg.Warp = noise.WarpConfig{
		Type:      noise.WarpType(s.WarpType),
		Amplitude: float64(s.WarpAmplitude),
	}
	return cfg
}

func (s *Store) warpSelected() bool {
	return s.FractalMode == fractalModeFractal && noise.FractalType(s.FractalType).IsDomainWarp()
}

func (s *Store) option(id FieldID) *int32 {
	switch id {
	case FieldNoiseType:
		return &s.NoiseType
	case FieldFractalMode:
		return &s.FractalMode
	case FieldFractalType:
		return &s.FractalType
	case FieldDistance:
		return &s.Distance
	case FieldReturn:
		return &s.Return
	case FieldWarpType:
		return &s.WarpType
	}
	return nil
}

func wrapOption(id FieldID, v int32) int32 {
	return int32(Wrap(int(v), 0, len(Describe(id).Options)-1))
}

func clampf(v float32, id FieldID) float32 {
	f := Describe(id)
	if v != v {
		return float32(f.Min)
	}
	return float32(math.Min(math.Max(float64(v), f.Min), f.Max))
}

func clampi(v int32, id FieldID) int32 {
	f := Describe(id)
	return int32(math.Min(math.Max(float64(v), f.Min), f.Max))
}
