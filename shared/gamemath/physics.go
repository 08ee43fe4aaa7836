package gamemath

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach moves current toward target by a fraction of the remaining distance.
// Used for smoothed camera follow; a factor of 1 snaps.
func Approach(current, target, factor float64) float64 {
	return current + (target-current)*factor
}
