package params

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"

	"github.com/Faultbox/noisecube/internal/config"
	"github.com/Faultbox/noisecube/pkg/noise"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		x, lo, hi int
		want      int
	}{
		{0, 0, 5, 0},
		{5, 0, 5, 5},
		{6, 0, 5, 0},
		{-1, 0, 5, 5},
		{-7, 0, 5, 5},
		{-6, 0, 5, 0},
		{13, 0, 5, 1},
		{2, 2, 4, 2},
		{1, 2, 4, 4},
		{5, 2, 4, 2},
		{-100, -3, 3, -2},
	}

	for _, tt := range tests {
		if got := Wrap(tt.x, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Wrap(%d, %d, %d) = %d, want %d", tt.x, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestWrapProperties(t *testing.T) {
	ranges := [][2]int{{0, 0}, {0, 5}, {-3, 3}, {10, 17}}

	for _, r := range ranges {
		lo, hi := r[0], r[1]
		if got := Wrap(hi+1, lo, hi); got != lo {
			t.Errorf("Wrap(hi+1) over [%d,%d] = %d, want %d", lo, hi, got, lo)
		}
		if got := Wrap(lo-1, lo, hi); got != hi {
			t.Errorf("Wrap(lo-1) over [%d,%d] = %d, want %d", lo, hi, got, hi)
		}
		for x := -60; x <= 60; x++ {
			got := Wrap(x, lo, hi)
			if got < lo || got > hi {
				t.Fatalf("Wrap(%d, %d, %d) = %d out of range", x, lo, hi, got)
			}
			if x >= lo && x <= hi && got != x {
				t.Errorf("Wrap(%d, %d, %d) = %d, want unchanged", x, lo, hi, got)
			}
			if Wrap(got, lo, hi) != got {
				t.Errorf("Wrap not idempotent at %d", x)
			}
		}
	}
}

func TestNormalizeClamps(t *testing.T) {
	s := Default()
	s.CubeSize = mgl32.Vec3{0, 300, 12.6}
	s.Zoom = 5
	s.SampleScale = 0
	s.Seed = -4
	s.Jitter = 0
	s.WarpAmplitude = 9
	s.NoiseType = 7
	s.FractalType = -1

	s.Normalize()

	if s.CubeSize != (mgl32.Vec3{1, 250, 13}) {
		t.Errorf("cube size = %v, want [1 250 13]", s.CubeSize)
	}
	if s.Zoom != 2 {
		t.Errorf("zoom = %f, want 2", s.Zoom)
	}
	if s.SampleScale != 1 {
		t.Errorf("sample scale = %d, want 1", s.SampleScale)
	}
	if s.Seed != 0 {
		t.Errorf("seed = %d, want 0", s.Seed)
	}
	if s.Jitter != float32(0.1) {
		t.Errorf("jitter = %f, want 0.1", s.Jitter)
	}
	if s.WarpAmplitude != 2 {
		t.Errorf("warp amplitude = %f, want 2", s.WarpAmplitude)
	}
	if s.NoiseType != 1 {
		t.Errorf("noise type = %d, want 1 (wrapped)", s.NoiseType)
	}
	if s.FractalType != int32(len(FractalTypeNames)-1) {
		t.Errorf("fractal type = %d, want last option", s.FractalType)
	}
}

func TestNormalizeLockCube(t *testing.T) {
	s := Default()
	s.CubeSize = mgl32.Vec3{20, 80, 3}
	s.LockCube = true

	s.Normalize()

	if s.CubeSize != (mgl32.Vec3{20, 20, 20}) {
		t.Errorf("locked cube size = %v, want [20 20 20]", s.CubeSize)
	}
}

func TestSeedUpperBound(t *testing.T) {
	s := Default()
	s.Seed = math.MaxInt32
	s.Normalize()
	if s.Seed != math.MaxInt32 {
		t.Errorf("seed = %d, want MaxInt32", s.Seed)
	}
}

func TestCycle(t *testing.T) {
	s := Default()
	s.NoiseType = int32(len(NoiseTypeNames) - 1)

	if !s.Cycle(FieldNoiseType, 1) {
		t.Fatal("Cycle on noise type reported false")
	}
	if s.NoiseType != 0 {
		t.Errorf("noise type after forward wrap = %d, want 0", s.NoiseType)
	}

	s.Cycle(FieldNoiseType, -1)
	if s.NoiseType != int32(len(NoiseTypeNames)-1) {
		t.Errorf("noise type after backward wrap = %d, want last", s.NoiseType)
	}

	if s.Cycle(FieldSeed, 1) {
		t.Error("Cycle on a non-option field should report false")
	}
}

func contains(ids []FieldID, id FieldID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func TestVisibleFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Store)
		want    []FieldID
		notWant []FieldID
	}{
		{
			name:    "defaults",
			mutate:  func(s *Store) {},
			want:    []FieldID{FieldCubeX, FieldCubeY, FieldCubeZ, FieldNoiseType, FieldSeed, FieldFractalMode},
			notWant: []FieldID{FieldDistance, FieldJitter, FieldFractalType, FieldOctaves, FieldWarpType},
		},
		{
			name:    "cellular",
			mutate:  func(s *Store) { s.NoiseType = int32(noise.Cellular) },
			want:    []FieldID{FieldDistance, FieldReturn, FieldJitter},
			notWant: []FieldID{FieldWarpType},
		},
		{
			name: "warp type without fractal mode",
			mutate: func(s *Store) {
				s.FractalType = int32(noise.FractalDomainWarpProgressive)
			},
			notWant: []FieldID{FieldFractalType, FieldWarpType, FieldWarpAmplitude},
		},
		{
			name: "fractal fbm",
			mutate: func(s *Store) {
				s.FractalMode = int32(noise.FractalModeFractal)
				s.FractalType = int32(noise.FractalFBm)
			},
			want:    []FieldID{FieldFractalType, FieldOctaves, FieldLacunarity, FieldGain},
			notWant: []FieldID{FieldWarpType, FieldWarpAmplitude},
		},
		{
			name: "domain warp",
			mutate: func(s *Store) {
				s.FractalMode = int32(noise.FractalModeFractal)
				s.FractalType = int32(noise.FractalDomainWarpIndependent)
			},
			want: []FieldID{FieldFractalType, FieldWarpType, FieldWarpAmplitude},
		},
		{
			name:    "locked cube",
			mutate:  func(s *Store) { s.LockCube = true },
			want:    []FieldID{FieldCubeX, FieldLockCube},
			notWant: []FieldID{FieldCubeY, FieldCubeZ},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			got := VisibleFields(s)

			for _, id := range tt.want {
				if !contains(got, id) {
					t.Errorf("expected %q to be visible", Describe(id).Label)
				}
			}
			for _, id := range tt.notWant {
				if contains(got, id) {
					t.Errorf("expected %q to be hidden", Describe(id).Label)
				}
			}
		})
	}
}

func TestEveryFieldHasBacking(t *testing.T) {
	s := Default()
	for _, id := range AllFields() {
		f := Describe(id)
		var ok bool
		switch f.Kind {
		case KindFloat:
			ok = s.Float(id) != nil
		case KindInt, KindOption:
			ok = s.Int(id) != nil
		case KindToggle:
			ok = s.Toggle(id) != nil
		}
		if !ok {
			t.Errorf("field %q (%s) has no backing value", f.Label, f.Kind)
		}
	}
}

func TestDescribeOptionBounds(t *testing.T) {
	f := Describe(FieldReturn)
	if f.Kind != KindOption {
		t.Fatalf("return type kind = %s, want option", f.Kind)
	}
	if f.Min != 0 || f.Max != 6 {
		t.Errorf("return type bounds = [%v, %v], want [0, 6]", f.Min, f.Max)
	}
}

func TestNoiseConfig(t *testing.T) {
	s := Default()
	s.NoiseType = int32(noise.Perlin)
	s.FractalMode = int32(noise.FractalModeFractal)
	s.FractalType = int32(noise.FractalDomainWarpProgressive)
	s.WarpType = int32(noise.WarpBasicGrid)

	cfg := s.NoiseConfig()

	if cfg.Type != noise.Perlin {
		t.Errorf("type = %d, want Perlin", cfg.Type)
	}
	if cfg.Seed != 1337 {
		t.Errorf("seed = %d, want 1337", cfg.Seed)
	}
	if !cfg.WarpActive() {
		t.Error("expected warp to be active")
	}
	if cfg.Warp.Type != noise.WarpBasicGrid {
		t.Errorf("warp type = %d, want BasicGrid", cfg.Warp.Type)
	}
	if math.Abs(cfg.Frequency-0.01) > 1e-6 {
		t.Errorf("frequency = %f, want 0.01", cfg.Frequency)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Noise.Type = "perlin"
	cfg.Noise.Seed = 99
	cfg.Scene.CubeSize = [3]float32{10, 20, 30}

	s, err := FromConfig(cfg.Scene, cfg.Noise)
	if err != nil {
		t.Fatalf("FromConfig failed: %v", err)
	}
	if s.NoiseType != int32(noise.Perlin) {
		t.Errorf("noise type = %d, want Perlin", s.NoiseType)
	}
	if s.Seed != 99 {
		t.Errorf("seed = %d, want 99", s.Seed)
	}
	if s.CubeSize != (mgl32.Vec3{10, 20, 30}) {
		t.Errorf("cube size = %v", s.CubeSize)
	}
}

func TestFromConfigUnknownOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Noise.Type = "plasma"
	cfg.Noise.Warp.Type = "spiral"

	s, err := FromConfig(cfg.Scene, cfg.Noise)
	if err == nil {
		t.Fatal("expected an error for unknown option names")
	}
	if n := len(multierr.Errors(err)); n != 2 {
		t.Errorf("expected 2 aggregated errors, got %d: %v", n, err)
	}
	if s.NoiseType != int32(noise.OpenSimplex2S) {
		t.Errorf("noise type = %d, want default", s.NoiseType)
	}
}
