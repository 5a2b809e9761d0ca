package params

// Wrap maps x onto [lo, hi] cyclically, so hi+1 becomes lo and lo-1 becomes hi.
// Values below lo are first shifted up by whole ranges, which keeps the result
// correct where Go's truncating % would go negative.
func Wrap(x, lo, hi int) int {
	span := hi - lo + 1
	if span <= 0 {
		return lo
	}
	if x < lo {
		x += span * ((lo-x)/span + 1)
	}
	return lo + (x-lo)%span
}
