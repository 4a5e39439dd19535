package vmath

// Lerp is linear interpolation a + t(b-a).
func Lerp(t, a, b float64) float64 { return a + t*(b-a) }

// ExpInterp eases in quadratically: a + t²(b-a).
func ExpInterp(t, a, b float64) float64 { return a + t*t*(b-a) }

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach moves cur toward target by at most maxDelta.
func Approach(cur, target, maxDelta float64) float64 {
	if cur < target {
		cur += maxDelta
		if cur > target {
			cur = target
		}
		return cur
	}
	if cur > target {
		cur -= maxDelta
		if cur < target {
			cur = target
		}
	}
	return cur
}
