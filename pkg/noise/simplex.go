package noise

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// lattice rotation used by OpenSimplex2 to hide axis-aligned artifacts
const rotate3 = 2.0 / 3.0

type simplexSampler struct {
	noise  opensimplex.Noise
	rotate bool
}

func newSimplexSampler(seed int64, rotate bool) simplexSampler {
	return simplexSampler{
		noise:  opensimplex.New(seed),
		rotate: rotate,
	}
}

func (s simplexSampler) sample(x, y, z float64) float64 {
	if s.rotate {
		r := (x + y + z) * rotate3
		x, y, z = r-x, r-y, r-z
	}
	return s.noise.Eval3(x, y, z)
}

// Perlin parameters: a single octave, so alpha and beta only matter for the
// library's internal scaling.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = 1
)

type perlinSampler struct {
	noise *perlin.Perlin
}

func newPerlinSampler(seed int64) perlinSampler {
	return perlinSampler{noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed)}
}

func (p perlinSampler) sample(x, y, z float64) float64 {
	return p.noise.Noise3D(x, y, z)
}
