package effects

import (
	"fmt"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
	"github.com/cwbudde/algo-voicefx/dsp/core"
)

const (
	defaultDelayTime     = 0.1
	defaultDelayFeedback = 0.4
)

// DelayOption mutates feedback delay construction parameters.
type DelayOption func(*delayConfig) error

type delayConfig struct {
	time     float64
	feedback float64
}

// WithDelayTime sets the delay time in seconds (>= 0).
func WithDelayTime(seconds float64) DelayOption {
	return func(cfg *delayConfig) error {
		if seconds < 0 || !isFinite(seconds) {
			return fmt.Errorf("%w: delay time must be >= 0 and finite, got %f", ErrConfig, seconds)
		}
		cfg.time = seconds
		return nil
	}
}

// WithDelayFeedback sets the gain applied to the recirculated output.
// Magnitudes >= 1 are accepted but make the recursion unstable; see the
// Delay doc comment.
func WithDelayFeedback(feedback float64) DelayOption {
	return func(cfg *delayConfig) error {
		if !isFinite(feedback) {
			return fmt.Errorf("%w: delay feedback must be finite, got %f", ErrConfig, feedback)
		}
		cfg.feedback = feedback
		return nil
	}
}

// Delay is a feedback delay line:
//
//	out[i] = in[i] + feedback·out[i-d]   for i >= d
//	out[i] = 0                           for i < d
//
// with d = round(time·sampleRate). The recursion reads previously computed
// output samples (IIR), so a single transient becomes a train of repeats
// decaying by the feedback factor. The first delay period is silent because
// the output accumulates into a zero-filled buffer; compare Echo, which taps
// the unprocessed input and produces exactly one repeat per sample.
//
// |feedback| < 1 keeps the output bounded for any finite input. Magnitudes
// >= 1 are deliberately not clamped: the recursion is then unstable and may
// grow without bound over the length of the buffer.
//
// When d >= len(in) no sample has a valid lookback and the result is all
// zeros.
type Delay struct {
	time     float64
	feedback float64
}

// NewDelay creates a feedback delay line. Defaults: 0.1 s delay time,
// feedback 0.4.
func NewDelay(opts ...DelayOption) (*Delay, error) {
	cfg := delayConfig{
		time:     defaultDelayTime,
		feedback: defaultDelayFeedback,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Delay{time: cfg.time, feedback: cfg.feedback}, nil
}

// Time returns the delay time in seconds.
func (d *Delay) Time() float64 { return d.time }

// Feedback returns the feedback gain.
func (d *Delay) Feedback() float64 { return d.feedback }

// Apply runs the delay recursion over a zero-initialised output buffer.
func (d *Delay) Apply(in buffer.Buffer) (buffer.Buffer, error) {
	if err := in.Validate(); err != nil {
		return buffer.Buffer{}, err
	}

	out := buffer.New(in.Len(), in.SampleRate)
	lag := core.SecondsToSamples(d.time, in.SampleRate)

	for i := lag; i < in.Len(); i++ {
		out.Data[i] = in.Data[i] + d.feedback*out.Data[i-lag]
	}

	return out, nil
}
