package scene

import "math"

// wrapDegrees maps a into [0, 360). Per-frame deltas cross the boundary at
// most once, so a single add or subtract is the normal path.
func wrapDegrees(a float64) float64 {
	switch {
	case a >= 360:
		a -= 360
	case a < 0:
		a += 360
	}
	if a < 0 || a >= 360 {
		a = math.Mod(a, 360)
		if a < 0 {
			a += 360
		}
	}
	// -tiny + 360 rounds to exactly 360
	if a >= 360 {
		a = 0
	}
	return a
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
