package noise

import "math"

// hash3 is a SplitMix64-style integer hash of a lattice point.
func hash3(x, y, z, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0x517CC1B727220A95 + uint64(z)*0x6C62272E07BB0142 + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

// unit maps the low 32 bits of a hash to [0, 1].
func unit(h uint64) float64 {
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

// latticeValue returns the value at a lattice point in [-1, 1].
func latticeValue(x, y, z, seed int64) float64 {
	return unit(hash3(x, y, z, seed))*2 - 1
}

func hermite(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// cubicLerp is Catmull-Rom interpolation between b and c.
func cubicLerp(a, b, c, d, t float64) float64 {
	p := (d - c) - (a - b)
	return t*t*t*p + t*t*((a-b)-p) + t*(c-a) + b
}

type valueSampler struct {
	seed int64
}

func (v valueSampler) sample(x, y, z float64) float64 {
	return valueNoise(v.seed, x, y, z)
}

func valueNoise(seed int64, x, y, z float64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	z0 := math.Floor(z)

	fx := hermite(x - x0)
	fy := hermite(y - y0)
	fz := hermite(z - z0)

	ix, iy, iz := int64(x0), int64(y0), int64(z0)

	v000 := latticeValue(ix, iy, iz, seed)
	v100 := latticeValue(ix+1, iy, iz, seed)
	v010 := latticeValue(ix, iy+1, iz, seed)
	v110 := latticeValue(ix+1, iy+1, iz, seed)
	v001 := latticeValue(ix, iy, iz+1, seed)
	v101 := latticeValue(ix+1, iy, iz+1, seed)
	v011 := latticeValue(ix, iy+1, iz+1, seed)
	v111 := latticeValue(ix+1, iy+1, iz+1, seed)

	i00 := lerp(v000, v100, fx)
	i10 := lerp(v010, v110, fx)
	i01 := lerp(v001, v101, fx)
	i11 := lerp(v011, v111, fx)

	return lerp(lerp(i00, i10, fy), lerp(i01, i11, fy), fz)
}

// cubicBounding keeps Catmull-Rom overshoot inside [-1, 1] in practice.
const cubicBounding = 1 / (1.5 * 1.5 * 1.5)

type valueCubicSampler struct {
	seed int64
}

func (v valueCubicSampler) sample(x, y, z float64) float64 {
	x1 := math.Floor(x)
	y1 := math.Floor(y)
	z1 := math.Floor(z)

	tx := x - x1
	ty := y - y1
	tz := z - z1

	ix, iy, iz := int64(x1), int64(y1), int64(z1)

	var planes [4]float64
	for k := int64(0); k < 4; k++ {
		var rows [4]float64
		for j := int64(0); j < 4; j++ {
			cy := iy + j - 1
			cz := iz + k - 1
			rows[j] = cubicLerp(
				latticeValue(ix-1, cy, cz, v.seed),
				latticeValue(ix, cy, cz, v.seed),
				latticeValue(ix+1, cy, cz, v.seed),
				latticeValue(ix+2, cy, cz, v.seed),
				tx,
			)
		}
		planes[k] = cubicLerp(rows[0], rows[1], rows[2], rows[3], ty)
	}

	return cubicLerp(planes[0], planes[1], planes[2], planes[3], tz) * cubicBounding
}
