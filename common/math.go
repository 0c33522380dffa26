package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp01 clamps v to [0, 1]. NaN clamps to 0.
func Clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// InverseLerp maps v from [a, b] to [0, 1] without clamping.
func InverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}

func Approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
