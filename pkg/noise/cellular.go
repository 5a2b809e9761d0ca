package noise

import "math"

type cellularSampler struct {
	seed int64
	cfg  CellularConfig
}

func (c cellularSampler) distance(dx, dy, dz float64) float64 {
	switch c.cfg.Distance {
	case DistanceManhattan:
		return math.Abs(dx) + math.Abs(dy) + math.Abs(dz)
	case DistanceHybrid:
		return math.Abs(dx) + math.Abs(dy) + math.Abs(dz) + dx*dx + dy*dy + dz*dz
	default:
		// Euclidean is squared here and rooted once at the end.
		return dx*dx + dy*dy + dz*dz
	}
}

// featurePoint returns the jittered feature point of a cell.
func (c cellularSampler) featurePoint(ix, iy, iz int64) (float64, float64, float64) {
	h := hash3(ix, iy, iz, c.seed)
	jx := unit(h) - 0.5
	jy := unit(h>>11) - 0.5
	jz := unit(hash3(iz, ix, iy, c.seed^0x5DEECE66D)) - 0.5

	j := c.cfg.Jitter
	return float64(ix) + 0.5 + jx*j,
		float64(iy) + 0.5 + jy*j,
		float64(iz) + 0.5 + jz*j
}

func (c cellularSampler) sample(x, y, z float64) float64 {
	cx := int64(math.Floor(x))
	cy := int64(math.Floor(y))
	cz := int64(math.Floor(z))

	d0 := math.MaxFloat64
	d1 := math.MaxFloat64
	var closest uint64

	for i := cx - 1; i <= cx+1; i++ {
		for j := cy - 1; j <= cy+1; j++ {
			for k := cz - 1; k <= cz+1; k++ {
				px, py, pz := c.featurePoint(i, j, k)
				d := c.distance(px-x, py-y, pz-z)

				if d < d0 {
					d1 = d0
					d0 = d
					closest = hash3(i, j, k, c.seed)
				} else if d < d1 {
					d1 = d
				}
			}
		}
	}

	if c.cfg.Distance == DistanceEuclidean && c.cfg.Return >= ReturnDistance {
		d0 = math.Sqrt(d0)
		d1 = math.Sqrt(d1)
	}

	switch c.cfg.Return {
	case ReturnCellValue:
		return unit(closest>>7)*2 - 1
	case ReturnDistance:
		return d0 - 1
	case ReturnDistance2:
		return d1 - 1
	case ReturnDistance2Add:
		return (d1+d0)*0.5 - 1
	case ReturnDistance2Sub:
		return d1 - d0 - 1
	case ReturnDistance2Mul:
		return d1*d0*0.5 - 1
	case ReturnDistance2Div:
		if d1 == 0 {
			return -1
		}
		return d0/d1 - 1
	}
	return 0
}
