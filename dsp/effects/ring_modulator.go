package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
)

const defaultRingModFrequency = 30.0

// RingModOption mutates ring modulator construction parameters.
type RingModOption func(*ringModConfig) error

type ringModConfig struct {
	frequency float64
}

// WithRingModFrequency sets the carrier frequency in Hz (> 0).
func WithRingModFrequency(hz float64) RingModOption {
	return func(cfg *ringModConfig) error {
		if hz <= 0 || !isFinite(hz) {
			return fmt.Errorf("%w: ring modulator frequency must be > 0 and finite, got %f", ErrConfig, hz)
		}
		cfg.frequency = hz
		return nil
	}
}

// RingMod multiplies the input by a bipolar sine carrier:
//
//	out[i] = in[i] · sin(2π·frequency·i/sampleRate)
//
// The carrier swings over [-1, 1] and periodically inverts the signal, which
// replaces the input spectrum with sum and difference frequencies and gives
// the classic metallic, robotic character. Compare Tremolo, whose unipolar
// envelope only pulses the level.
type RingMod struct {
	frequency float64
}

// NewRingMod creates a ring modulator. Default carrier: 30 Hz.
func NewRingMod(opts ...RingModOption) (*RingMod, error) {
	cfg := ringModConfig{frequency: defaultRingModFrequency}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &RingMod{frequency: cfg.frequency}, nil
}

// Frequency returns the carrier frequency in Hz.
func (r *RingMod) Frequency() float64 { return r.frequency }

// Apply multiplies each sample by the carrier.
func (r *RingMod) Apply(in buffer.Buffer) (buffer.Buffer, error) {
	if err := in.Validate(); err != nil {
		return buffer.Buffer{}, err
	}

	out := buffer.New(in.Len(), in.SampleRate)
	omega := 2 * math.Pi * r.frequency / float64(in.SampleRate)

	for i, v := range in.Data {
		out.Data[i] = v * math.Sin(omega*float64(i))
	}

	return out, nil
}
