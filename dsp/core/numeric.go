package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// FlushDenormals converts tiny denormal-like values to exact zero.
// This can reduce denormal-related CPU slowdowns in hot DSP loops.
func FlushDenormals(x float64) float64 {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}

	return x
}

// SecondsToSamples converts a duration to a sample count at the given rate,
// rounding half away from zero. All static time parameters share this policy;
// per-sample modulated offsets convert separately (see the modulation effects).
func SecondsToSamples(seconds float64, sampleRate int) int {
	return int(math.Round(seconds * float64(sampleRate)))
}

// LinearRamp returns n values evenly spaced from `from` to `to`, endpoints
// included. n == 1 yields just `from`; n <= 0 yields nil.
func LinearRamp(from, to float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{from}
	}

	ramp := make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := range ramp {
		ramp[i] = from + step*float64(i)
	}
	ramp[n-1] = to

	return ramp
}
