package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
	"github.com/cwbudde/algo-voicefx/dsp/core"
)

const (
	defaultFlangerMaxDelay = 0.003
	defaultFlangerRate     = 0.25
	defaultFlangerMix      = 0.5
)

// FlangerOption mutates flanger construction parameters.
type FlangerOption func(*flangerConfig) error

type flangerConfig struct {
	maxDelay float64
	rate     float64
	mix      float64
}

// WithFlangerMaxDelay sets the sweep ceiling in seconds (>= 0).
func WithFlangerMaxDelay(seconds float64) FlangerOption {
	return func(cfg *flangerConfig) error {
		if seconds < 0 || !isFinite(seconds) {
			return fmt.Errorf("%w: flanger max delay must be >= 0 and finite, got %f", ErrConfig, seconds)
		}
		cfg.maxDelay = seconds
		return nil
	}
}

// WithFlangerRate sets the sweep rate in Hz (> 0).
func WithFlangerRate(hz float64) FlangerOption {
	return func(cfg *flangerConfig) error {
		if hz <= 0 || !isFinite(hz) {
			return fmt.Errorf("%w: flanger rate must be > 0 and finite, got %f", ErrConfig, hz)
		}
		cfg.rate = hz
		return nil
	}
}

// WithFlangerMix sets the swept tap gain in [0, 1].
func WithFlangerMix(mix float64) FlangerOption {
	return func(cfg *flangerConfig) error {
		if mix < 0 || mix > 1 || !isFinite(mix) {
			return fmt.Errorf("%w: flanger mix must be within [0, 1], got %f", ErrConfig, mix)
		}
		cfg.mix = mix
		return nil
	}
}

// Flanger sweeps a short delay tap between zero and a ceiling:
//
//	m[i]   = 0.5 · (1 + sin(2π·rate·i/sampleRate))
//	d      = trunc(m[i] · D)              with D = round(maxDelay·sampleRate)
//	out[i] = in[i] + mix·in[i-d]          for i >= D
//	out[i] = in[i]                        for i < D
//
// The unipolar modulator keeps d within [0, D], so the tap never reads
// before the buffer start once i >= D. Per-sample taps truncate toward zero
// like Chorus. When D >= len(in) the sweep never engages and the result is
// an unchanged copy.
type Flanger struct {
	maxDelay float64
	rate     float64
	mix      float64
}

// NewFlanger creates a flanger. Defaults: max delay 0.003 s, rate 0.25 Hz,
// mix 0.5.
func NewFlanger(opts ...FlangerOption) (*Flanger, error) {
	cfg := flangerConfig{
		maxDelay: defaultFlangerMaxDelay,
		rate:     defaultFlangerRate,
		mix:      defaultFlangerMix,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Flanger{maxDelay: cfg.maxDelay, rate: cfg.rate, mix: cfg.mix}, nil
}

// MaxDelay returns the sweep ceiling in seconds.
func (f *Flanger) MaxDelay() float64 { return f.maxDelay }

// Rate returns the sweep rate in Hz.
func (f *Flanger) Rate() float64 { return f.rate }

// Mix returns the swept tap gain.
func (f *Flanger) Mix() float64 { return f.mix }

// Apply mixes the swept tap onto a copy of the input.
func (f *Flanger) Apply(in buffer.Buffer) (buffer.Buffer, error) {
	if err := in.Validate(); err != nil {
		return buffer.Buffer{}, err
	}

	out := in.Clone()
	ceiling := core.SecondsToSamples(f.maxDelay, in.SampleRate)
	omega := 2 * math.Pi * f.rate / float64(in.SampleRate)

	for i := ceiling; i < in.Len(); i++ {
		mod := 0.5 * (1 + math.Sin(omega*float64(i)))
		lag := int(mod * float64(ceiling))
		out.Data[i] += f.mix * in.Data[i-lag]
	}

	return out, nil
}
