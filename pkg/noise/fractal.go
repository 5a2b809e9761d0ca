package noise

import "math"

// fractalBounding normalizes the summed octave amplitudes back to [-1, 1].
func fractalBounding(gain float64, octaves int) float64 {
	gain = math.Abs(gain)
	amp := gain
	total := 1.0
	for i := 1; i < octaves; i++ {
		total += amp
		amp *= gain
	}
	return 1 / total
}

func (g *Generator) fbm(x, y, z float64) float64 {
	sum := 0.0
	amp := g.bounding
	for _, o := range g.octaves {
		n := clamp1(o.sample(x, y, z))
		sum += n * amp
		amp *= lerp(1, math.Min(n+1, 2)*0.5, g.cfg.WeightedStrength)

		x *= g.cfg.Lacunarity
		y *= g.cfg.Lacunarity
		z *= g.cfg.Lacunarity
		amp *= g.cfg.Gain
	}
	return sum
}

func (g *Generator) ridged(x, y, z float64) float64 {
	sum := 0.0
	amp := g.bounding
	for _, o := range g.octaves {
		n := math.Abs(clamp1(o.sample(x, y, z)))
		sum += (n*-2 + 1) * amp
		amp *= lerp(1, 1-n, g.cfg.WeightedStrength)

		x *= g.cfg.Lacunarity
		y *= g.cfg.Lacunarity
		z *= g.cfg.Lacunarity
		amp *= g.cfg.Gain
	}
	return sum
}

func (g *Generator) pingPong(x, y, z float64) float64 {
	sum := 0.0
	amp := g.bounding
	for _, o := range g.octaves {
		n := pingPong((clamp1(o.sample(x, y, z)) + 1) * g.cfg.PingPongStrength)
		sum += (n - 0.5) * 2 * amp
		amp *= lerp(1, n, g.cfg.WeightedStrength)

		x *= g.cfg.Lacunarity
		y *= g.cfg.Lacunarity
		z *= g.cfg.Lacunarity
		amp *= g.cfg.Gain
	}
	return sum
}

// pingPong folds t into a triangle wave over [0, 1].
func pingPong(t float64) float64 {
	t -= math.Trunc(t*0.5) * 2
	if t < 1 {
		return t
	}
	return 2 - t
}
