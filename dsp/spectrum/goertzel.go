package spectrum

import (
	"fmt"
	"math"
)

// Goertzel evaluates the power of one frequency component without computing
// a full transform. The analyzer is stateful: Power reflects every sample
// processed since the last Reset, equivalent to |X[k]|² of a DFT over that
// block.
//
// Frequency resolution follows the block length: two tones must sit further
// apart than sampleRate/blockLen to read as distinct. The verification
// helpers in this module use it to check where shifted or filtered energy
// ended up.
type Goertzel struct {
	coeff  float64
	s0, s1 float64
}

// NewGoertzel creates an analyzer for frequency Hz at the given rate. The
// frequency must lie within [0, sampleRate/2].
func NewGoertzel(frequency float64, sampleRate int) (*Goertzel, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("spectrum: goertzel sample rate must be positive, got %d", sampleRate)
	}

	nyquist := float64(sampleRate) / 2
	if frequency < 0 || frequency > nyquist || math.IsNaN(frequency) {
		return nil, fmt.Errorf("spectrum: goertzel frequency must be within [0, %g], got %v", nyquist, frequency)
	}

	return &Goertzel{
		coeff: 2 * math.Cos(2*math.Pi*frequency/float64(sampleRate)),
	}, nil
}

// Reset clears the accumulated state.
func (g *Goertzel) Reset() {
	g.s0, g.s1 = 0, 0
}

// ProcessBlock folds a block of samples into the analyzer state.
func (g *Goertzel) ProcessBlock(samples []float64) {
	s0, s1 := g.s0, g.s1

	coeff := g.coeff
	for _, x := range samples {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	g.s0, g.s1 = s0, s1
}

// Power returns the squared magnitude of the tracked component.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns the magnitude of the tracked component.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}

	return math.Sqrt(p)
}

// GoertzelPower measures one frequency over one block in a single shot.
func GoertzelPower(samples []float64, frequency float64, sampleRate int) (float64, error) {
	g, err := NewGoertzel(frequency, sampleRate)
	if err != nil {
		return 0, err
	}

	g.ProcessBlock(samples)

	return g.Power(), nil
}
