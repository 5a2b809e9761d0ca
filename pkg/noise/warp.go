package noise

import "github.com/ojrac/opensimplex-go"

// warpReach is the displacement, in input units, produced by amplitude 1.0.
const warpReach = 30.0

// warpSampler returns per-axis offsets in [-1, 1] for a point in frequency space.
type warpSampler interface {
	offset(x, y, z float64) (float64, float64, float64)
}

func newWarpSampler(t WarpType, seed int64) warpSampler {
	switch t {
	case WarpOpenSimplex2Reduced:
		return reducedWarp{noise: opensimplex.New(seed)}
	case WarpBasicGrid:
		return gridWarp{seed: seed}
	default:
		return simplexWarp{
			nx: opensimplex.New(seed),
			ny: opensimplex.New(seed + 1),
			nz: opensimplex.New(seed + 2),
		}
	}
}

type simplexWarp struct {
	nx, ny, nz opensimplex.Noise
}

func (w simplexWarp) offset(x, y, z float64) (float64, float64, float64) {
	return w.nx.Eval3(x, y, z), w.ny.Eval3(x, y, z), w.nz.Eval3(x, y, z)
}

// reducedWarp derives all three offsets from one generator by permuting and
// shifting the input coordinates.
type reducedWarp struct {
	noise opensimplex.Noise
}

func (w reducedWarp) offset(x, y, z float64) (float64, float64, float64) {
	return w.noise.Eval3(x, y, z),
		w.noise.Eval3(y+31.416, z-47.853, x+12.793),
		w.noise.Eval3(z-89.235, x+61.551, y-23.017)
}

type gridWarp struct {
	seed int64
}

func (w gridWarp) offset(x, y, z float64) (float64, float64, float64) {
	return valueNoise(w.seed, x, y, z),
		valueNoise(w.seed+1, x, y, z),
		valueNoise(w.seed+2, x, y, z)
}

// Warp3 displaces (x, y, z) according to the warp settings. When warping is
// not active the point is returned unchanged.
func (g *Generator) Warp3(x, y, z float64) (float64, float64, float64) {
	if len(g.warps) == 0 {
		return x, y, z
	}

	amp := g.cfg.Warp.Amplitude * warpReach * fractalBounding(g.cfg.Gain, len(g.warps))
	freq := g.cfg.Frequency

	if g.cfg.Fractal == FractalDomainWarpIndependent {
		var sx, sy, sz float64
		for _, w := range g.warps {
			dx, dy, dz := w.offset(x*freq, y*freq, z*freq)
			sx += clamp1(dx) * amp
			sy += clamp1(dy) * amp
			sz += clamp1(dz) * amp
			amp *= g.cfg.Gain
			freq *= g.cfg.Lacunarity
		}
		return x + sx, y + sy, z + sz
	}

	for _, w := range g.warps {
		dx, dy, dz := w.offset(x*freq, y*freq, z*freq)
		x += clamp1(dx) * amp
		y += clamp1(dy) * amp
		z += clamp1(dz) * amp
		amp *= g.cfg.Gain
		freq *= g.cfg.Lacunarity
	}
	return x, y, z
}
