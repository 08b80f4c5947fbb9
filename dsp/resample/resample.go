// Package resample converts signals between lengths by fractional-position
// interpolation. The pitch shifter uses it to map a time-stretched signal
// back onto the original sample count; ratios are arbitrary positive reals,
// not limited to rational up/down factors.
package resample

import (
	"math"

	"github.com/cwbudde/algo-voicefx/dsp/interp"
)

// Hermite resamples input by ratio using 4-point Hermite interpolation.
// The output has round(len(input)*ratio) samples. A non-positive or
// non-finite ratio yields nil.
func Hermite(input []float64, ratio float64) []float64 {
	if ratio <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return nil
	}

	return HermiteToLength(input, outputLength(len(input), ratio))
}

// HermiteToLength resamples input to exactly outLen samples using 4-point
// Hermite interpolation. Edge neighbors are clamped to the first/last sample.
func HermiteToLength(input []float64, outLen int) []float64 {
	if outLen <= 0 || len(input) == 0 {
		return nil
	}

	out := make([]float64, outLen)
	step := float64(len(input)) / float64(outLen)

	for i := range out {
		pos := float64(i) * step
		idx := int(pos)
		frac := pos - float64(idx)

		out[i] = interp.Hermite4(frac,
			sampleClamped(input, idx-1),
			sampleClamped(input, idx),
			sampleClamped(input, idx+1),
			sampleClamped(input, idx+2),
		)
	}

	return out
}

// Linear resamples input by ratio using linear interpolation. The output has
// round(len(input)*ratio) samples.
func Linear(input []float64, ratio float64) []float64 {
	if ratio <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return nil
	}

	outLen := outputLength(len(input), ratio)
	if outLen <= 0 || len(input) == 0 {
		return nil
	}

	out := make([]float64, outLen)
	step := float64(len(input)) / float64(outLen)

	for i := range out {
		pos := float64(i) * step
		idx := int(pos)
		frac := pos - float64(idx)

		out[i] = interp.Linear(
			sampleClamped(input, idx),
			sampleClamped(input, idx+1),
			frac,
		)
	}

	return out
}

func outputLength(n int, ratio float64) int {
	return int(math.Round(float64(n) * ratio))
}

func sampleClamped(input []float64, idx int) float64 {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(input) {
		idx = len(input) - 1
	}
	return input[idx]
}
