package effects

import (
	"fmt"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
	"github.com/cwbudde/algo-voicefx/dsp/core"
)

const (
	defaultEchoDelay = 0.5
	defaultEchoDecay = 0.5
)

// EchoOption mutates echo construction parameters.
type EchoOption func(*echoConfig) error

type echoConfig struct {
	delay float64
	decay float64
}

// WithEchoDelay sets the tap delay in seconds (>= 0).
func WithEchoDelay(seconds float64) EchoOption {
	return func(cfg *echoConfig) error {
		if seconds < 0 || !isFinite(seconds) {
			return fmt.Errorf("%w: echo delay must be >= 0 and finite, got %f", ErrConfig, seconds)
		}
		cfg.delay = seconds
		return nil
	}
}

// WithEchoDecay sets the tap gain.
func WithEchoDecay(decay float64) EchoOption {
	return func(cfg *echoConfig) error {
		if !isFinite(decay) {
			return fmt.Errorf("%w: echo decay must be finite, got %f", ErrConfig, decay)
		}
		cfg.decay = decay
		return nil
	}
}

// Echo adds a single delayed tap of the unprocessed input:
//
//	out[i] = in[i] + decay·in[i-d]   for i >= d
//	out[i] = in[i]                   for i < d
//
// with d = round(delay·sampleRate). The tap reads the input, not the output
// (FIR), so every sample receives exactly one repeat and the structure is
// unconditionally stable; compare Delay, whose recirculation produces a
// decaying repeat train. When d >= len(in) the result is an unchanged copy.
type Echo struct {
	delay float64
	decay float64
}

// NewEcho creates a single-tap echo. Defaults: 0.5 s delay, decay 0.5.
func NewEcho(opts ...EchoOption) (*Echo, error) {
	cfg := echoConfig{
		delay: defaultEchoDelay,
		decay: defaultEchoDecay,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Echo{delay: cfg.delay, decay: cfg.decay}, nil
}

// Delay returns the tap delay in seconds.
func (e *Echo) Delay() float64 { return e.delay }

// Decay returns the tap gain.
func (e *Echo) Decay() float64 { return e.decay }

// Apply adds the delayed tap onto a copy of the input.
func (e *Echo) Apply(in buffer.Buffer) (buffer.Buffer, error) {
	if err := in.Validate(); err != nil {
		return buffer.Buffer{}, err
	}

	out := in.Clone()
	lag := core.SecondsToSamples(e.delay, in.SampleRate)

	for i := lag; i < in.Len(); i++ {
		out.Data[i] += e.decay * in.Data[i-lag]
	}

	return out, nil
}
