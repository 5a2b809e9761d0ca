package noise

import (
	"math"
	"testing"
)

var allTypes = []Type{OpenSimplex2, OpenSimplex2S, Cellular, Perlin, ValueCubic, Value}

func samplePoints() [][3]float64 {
	var pts [][3]float64
	for i := 0; i < 40; i++ {
		f := float64(i)
		pts = append(pts, [3]float64{f*13.7 - 200, f*7.3 + 11, -f*29.1 + 5})
	}
	return pts
}

func TestNoise3Range(t *testing.T) {
	fractals := []FractalType{FractalNone, FractalFBm, FractalRidged, FractalPingPong}

	for _, typ := range allTypes {
		for _, fr := range fractals {
			cfg := DefaultConfig()
			cfg.Type = typ
			cfg.Fractal = fr
			if fr != FractalNone {
				cfg.Mode = FractalModeFractal
			}
			g := New(cfg)

			for _, p := range samplePoints() {
				v := g.Noise3(p[0], p[1], p[2])
				if v < -1 || v > 1 || math.IsNaN(v) {
					t.Fatalf("type %d fractal %d: value %f out of range at %v", typ, fr, v, p)
				}
			}
		}
	}
}

func TestCellularReturnTypesInRange(t *testing.T) {
	for ret := ReturnCellValue; ret <= ReturnDistance2Div; ret++ {
		for dist := DistanceEuclidean; dist <= DistanceHybrid; dist++ {
			cfg := DefaultConfig()
			cfg.Type = Cellular
			cfg.Cellular.Return = ret
			cfg.Cellular.Distance = dist
			g := New(cfg)

			for _, p := range samplePoints() {
				v := g.Noise3(p[0], p[1], p[2])
				if v < -1 || v > 1 {
					t.Fatalf("return %d distance %d: value %f out of range", ret, dist, v)
				}
			}
		}
	}
}

func TestNoise3Deterministic(t *testing.T) {
	for _, typ := range allTypes {
		cfg := DefaultConfig()
		cfg.Type = typ
		a := New(cfg)
		b := New(cfg)

		for _, p := range samplePoints() {
			if va, vb := a.Noise3(p[0], p[1], p[2]), b.Noise3(p[0], p[1], p[2]); va != vb {
				t.Fatalf("type %d: generators disagree at %v: %f vs %f", typ, p, va, vb)
			}
		}
	}
}

func TestSeedChangesOutput(t *testing.T) {
	for _, typ := range []Type{OpenSimplex2, OpenSimplex2S, Value, ValueCubic, Cellular} {
		cfg := DefaultConfig()
		cfg.Type = typ
		cfg.Cellular.Return = ReturnCellValue
		a := New(cfg)
		cfg.Seed = 4242
		b := New(cfg)

		differs := false
		for _, p := range samplePoints() {
			if a.Noise3(p[0], p[1], p[2]) != b.Noise3(p[0], p[1], p[2]) {
				differs = true
				break
			}
		}
		if !differs {
			t.Errorf("type %d: seed had no effect", typ)
		}
	}
}

func TestValueNoiseAtLatticePoints(t *testing.T) {
	// Value noise passes exactly through its lattice values.
	for i := int64(-3); i < 3; i++ {
		got := valueNoise(7, float64(i), float64(i*2), float64(-i))
		want := latticeValue(i, i*2, -i, 7)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("valueNoise at lattice %d = %f, want %f", i, got, want)
		}
	}
}

func TestWarpInactiveIsIdentity(t *testing.T) {
	cases := []struct {
		name string
		mode FractalMode
		typ  FractalType
	}{
		{"mode none with warp type", FractalModeNone, FractalDomainWarpProgressive},
		{"fractal fbm", FractalModeFractal, FractalFBm},
		{"fractal none", FractalModeFractal, FractalNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Mode = tc.mode
			cfg.Fractal = tc.typ
			g := New(cfg)

			x, y, z := g.Warp3(12.5, -3, 99)
			if x != 12.5 || y != -3 || z != 99 {
				t.Errorf("Warp3 moved the point to (%f, %f, %f)", x, y, z)
			}
		})
	}
}

func TestWarpActiveMovesPoints(t *testing.T) {
	for _, fr := range []FractalType{FractalDomainWarpProgressive, FractalDomainWarpIndependent} {
		for _, wt := range []WarpType{WarpOpenSimplex2, WarpOpenSimplex2Reduced, WarpBasicGrid} {
			cfg := DefaultConfig()
			cfg.Mode = FractalModeFractal
			cfg.Fractal = fr
			cfg.Warp.Type = wt
			g := New(cfg)

			moved := false
			limit := cfg.Warp.Amplitude * warpReach
			for _, p := range samplePoints() {
				x, y, z := g.Warp3(p[0], p[1], p[2])
				if x != p[0] || y != p[1] || z != p[2] {
					moved = true
				}
				for i, d := range []float64{x - p[0], y - p[1], z - p[2]} {
					if math.Abs(d) > limit+1e-9 {
						t.Fatalf("fractal %d warp %d: axis %d displaced by %f, limit %f", fr, wt, i, d, limit)
					}
				}
			}
			if !moved {
				t.Errorf("fractal %d warp %d: no point was displaced", fr, wt)
			}
		}
	}
}

func TestFractalBounding(t *testing.T) {
	tests := []struct {
		gain    float64
		octaves int
		want    float64
	}{
		{0.5, 1, 1},
		{0.5, 2, 1 / 1.5},
		{0.5, 3, 1 / 1.75},
		{0, 5, 1},
	}

	for _, tt := range tests {
		if got := fractalBounding(tt.gain, tt.octaves); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("fractalBounding(%v, %d) = %v, want %v", tt.gain, tt.octaves, got, tt.want)
		}
	}
}

func TestPingPong(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.5, 0.5},
		{2, 0},
		{2.25, 0.25},
	}

	for _, tt := range tests {
		if got := pingPong(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("pingPong(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSanitize(t *testing.T) {
	cfg := Config{Frequency: -1, Octaves: 0, Lacunarity: 0, Gain: -0.5}
	g := New(cfg)
	got := g.Config()

	if got.Frequency != 0.01 {
		t.Errorf("expected frequency fallback 0.01, got %f", got.Frequency)
	}
	if got.Octaves != 1 {
		t.Errorf("expected octaves 1, got %d", got.Octaves)
	}
	if got.Lacunarity != 2 {
		t.Errorf("expected lacunarity 2, got %f", got.Lacunarity)
	}
	if got.Gain != 0.5 {
		t.Errorf("expected gain 0.5, got %f", got.Gain)
	}
}

func TestActiveFlags(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.FractalActive() || cfg.WarpActive() {
		t.Fatal("defaults should not enable fractal or warp")
	}

	cfg.Mode = FractalModeFractal
	cfg.Fractal = FractalRidged
	if !cfg.FractalActive() || cfg.WarpActive() {
		t.Error("ridged should be fractal-active only")
	}

	cfg.Fractal = FractalDomainWarpIndependent
	if cfg.FractalActive() || !cfg.WarpActive() {
		t.Error("domain warp should be warp-active only")
	}
}
