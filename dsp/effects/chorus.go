package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
)

const (
	defaultChorusDepth = 0.03
	defaultChorusDelay = 0.004
	defaultChorusRate  = 1.3
)

// ChorusOption mutates chorus construction parameters.
type ChorusOption func(*chorusConfig) error

type chorusConfig struct {
	depth float64
	delay float64
	rate  float64
}

// WithChorusDepth sets the modulation depth in seconds (>= 0). The wandering
// tap reaches up to depth·sampleRate samples away from the dry sample.
func WithChorusDepth(seconds float64) ChorusOption {
	return func(cfg *chorusConfig) error {
		if seconds < 0 || !isFinite(seconds) {
			return fmt.Errorf("%w: chorus depth must be >= 0 and finite, got %f", ErrConfig, seconds)
		}
		cfg.depth = seconds
		return nil
	}
}

// WithChorusDelay sets the nominal base delay in seconds (>= 0).
func WithChorusDelay(seconds float64) ChorusOption {
	return func(cfg *chorusConfig) error {
		if seconds < 0 || !isFinite(seconds) {
			return fmt.Errorf("%w: chorus delay must be >= 0 and finite, got %f", ErrConfig, seconds)
		}
		cfg.delay = seconds
		return nil
	}
}

// WithChorusRate sets the modulation rate in Hz (> 0).
func WithChorusRate(hz float64) ChorusOption {
	return func(cfg *chorusConfig) error {
		if hz <= 0 || !isFinite(hz) {
			return fmt.Errorf("%w: chorus rate must be > 0 and finite, got %f", ErrConfig, hz)
		}
		cfg.rate = hz
		return nil
	}
}

// Chorus adds a copy of the input read at a sinusoidally wandering offset:
//
//	m[i]   = sin(2π·rate·i/sampleRate) · depth · sampleRate
//	idx    = trunc(i - m[i])
//	out[i] = in[i] + in[idx]   when 0 <= idx < len(in)
//	out[i] = in[i]             otherwise
//
// The read index truncates toward zero, the shared policy for per-sample
// modulated offsets (static second-based parameters round instead). The
// modulator swings both ways, so the tap reads behind and ahead of the dry
// sample; reads outside the buffer contribute nothing. With depth 0 the tap
// collapses onto the dry sample and the output is exactly twice the input.
//
// The base delay parameter positions the voice nominally and is validated
// and reported, but the modulator alone drives the tap above.
type Chorus struct {
	depth float64
	delay float64
	rate  float64
}

// NewChorus creates a chorus. Defaults: depth 0.03 s, base delay 0.004 s,
// rate 1.3 Hz.
func NewChorus(opts ...ChorusOption) (*Chorus, error) {
	cfg := chorusConfig{
		depth: defaultChorusDepth,
		delay: defaultChorusDelay,
		rate:  defaultChorusRate,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Chorus{depth: cfg.depth, delay: cfg.delay, rate: cfg.rate}, nil
}

// Depth returns the modulation depth in seconds.
func (c *Chorus) Depth() float64 { return c.depth }

// Delay returns the nominal base delay in seconds.
func (c *Chorus) Delay() float64 { return c.delay }

// Rate returns the modulation rate in Hz.
func (c *Chorus) Rate() float64 { return c.rate }

// Apply mixes the wandering tap onto a copy of the input.
func (c *Chorus) Apply(in buffer.Buffer) (buffer.Buffer, error) {
	if err := in.Validate(); err != nil {
		return buffer.Buffer{}, err
	}

	out := in.Clone()
	omega := 2 * math.Pi * c.rate / float64(in.SampleRate)
	swing := c.depth * float64(in.SampleRate)

	for i := range in.Data {
		mod := math.Sin(omega*float64(i)) * swing

		idx := int(float64(i) - mod)
		if idx >= 0 && idx < in.Len() {
			out.Data[i] += in.Data[idx]
		}
	}

	return out, nil
}
