package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
)

const defaultTremoloRate = 5.0

// TremoloOption mutates tremolo construction parameters.
type TremoloOption func(*tremoloConfig) error

type tremoloConfig struct {
	rate float64
}

// WithTremoloRate sets the modulation rate in Hz (> 0).
func WithTremoloRate(hz float64) TremoloOption {
	return func(cfg *tremoloConfig) error {
		if hz <= 0 || !isFinite(hz) {
			return fmt.Errorf("%w: tremolo rate must be > 0 and finite, got %f", ErrConfig, hz)
		}
		cfg.rate = hz
		return nil
	}
}

// Tremolo modulates amplitude with a unipolar raised sine:
//
//	env[i] = 0.5 · (1 + sin(2π·rate·i/sampleRate))
//	out[i] = in[i] · env[i]
//
// The envelope starts at 0.5 and swings over [0, 1], so the output level
// pulses at the modulation rate without ever inverting polarity; compare
// RingMod, whose bipolar carrier does invert. Sample-local and stateless.
type Tremolo struct {
	rate float64
}

// NewTremolo creates a tremolo. Default rate: 5 Hz.
func NewTremolo(opts ...TremoloOption) (*Tremolo, error) {
	cfg := tremoloConfig{rate: defaultTremoloRate}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Tremolo{rate: cfg.rate}, nil
}

// Rate returns the modulation rate in Hz.
func (t *Tremolo) Rate() float64 { return t.rate }

// Apply scales each sample by the envelope.
func (t *Tremolo) Apply(in buffer.Buffer) (buffer.Buffer, error) {
	if err := in.Validate(); err != nil {
		return buffer.Buffer{}, err
	}

	out := buffer.New(in.Len(), in.SampleRate)
	omega := 2 * math.Pi * t.rate / float64(in.SampleRate)

	for i, v := range in.Data {
		env := 0.5 * (1 + math.Sin(omega*float64(i)))
		out.Data[i] = v * env
	}

	return out, nil
}
