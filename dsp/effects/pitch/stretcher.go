package pitch

import (
	"fmt"
	"math"
)

const (
	minStretchRate = 0.25
	maxStretchRate = 4.0

	identityEps = 1e-9
	energyTiny  = 1e-12
)

// Stretcher changes the duration of a signal without changing its pitch.
// Rates above 1 speed the signal up and shorten it; rates below 1 slow it
// down and lengthen it. The output holds round(len(samples)/rate) samples.
// Rates are accepted within [0.25, 4], two octaves in either direction.
type Stretcher interface {
	TimeStretch(samples []float64, rate float64) ([]float64, error)
}

func validateRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < minStretchRate || rate > maxStretchRate {
		return fmt.Errorf("pitch: stretch rate must be within [%g, %g], got %f",
			minStretchRate, maxStretchRate, rate)
	}
	return nil
}

func targetLength(n int, rate float64) int {
	return max(int(math.Round(float64(n)/rate)), 1)
}

func copySamples(in []float64) []float64 {
	out := make([]float64, len(in))
	copy(out, in)
	return out
}

// fitLength truncates or zero-pads in to exactly n samples.
func fitLength(in []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, in)
	return out
}

// sampleOrZero reads past either end of x as silence.
func sampleOrZero(x []float64, idx int) float64 {
	if idx < 0 || idx >= len(x) {
		return 0
	}
	return x[idx]
}

func wrapPhase(x float64) float64 {
	x = math.Mod(x+math.Pi, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	return x - math.Pi
}

func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
