package effects

import (
	"fmt"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
	"github.com/cwbudde/algo-voicefx/dsp/core"
)

const defaultFadeTime = 0.03

// FadeEdgesOption mutates fade construction parameters.
type FadeEdgesOption func(*fadeConfig) error

type fadeConfig struct {
	fade float64
}

// WithFadeTime sets the ramp length in seconds (>= 0).
func WithFadeTime(seconds float64) FadeEdgesOption {
	return func(cfg *fadeConfig) error {
		if seconds < 0 || !isFinite(seconds) {
			return fmt.Errorf("%w: fade time must be >= 0 and finite, got %f", ErrConfig, seconds)
		}
		cfg.fade = seconds
		return nil
	}
}

// FadeEdges tapers the buffer boundaries with linear ramps: 0 to 1 over the
// first f samples and 1 to 0 over the last f, with f = round(fade·sampleRate)
// clamped to the buffer length. The ramps include their endpoints, so the
// first and last output samples are zero whenever f >= 2. A single-point
// ramp (f = 1) carries only its start value: the first sample is zeroed, the
// last is left at full weight. When the two ramps overlap on a short buffer,
// both weights apply.
//
// Chains end with this effect to suppress the clicks that hard buffer edges
// otherwise produce.
type FadeEdges struct {
	fade float64
}

// NewFadeEdges creates an edge fade. Default ramp length: 0.03 s.
func NewFadeEdges(opts ...FadeEdgesOption) (*FadeEdges, error) {
	cfg := fadeConfig{fade: defaultFadeTime}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &FadeEdges{fade: cfg.fade}, nil
}

// FadeTime returns the ramp length in seconds.
func (f *FadeEdges) FadeTime() float64 { return f.fade }

// Apply weights the edges of a copy of the input.
func (f *FadeEdges) Apply(in buffer.Buffer) (buffer.Buffer, error) {
	if err := in.Validate(); err != nil {
		return buffer.Buffer{}, err
	}

	out := in.Clone()
	ramp := min(core.SecondsToSamples(f.fade, in.SampleRate), in.Len())
	if ramp <= 0 {
		return out, nil
	}

	for i, w := range core.LinearRamp(0, 1, ramp) {
		out.Data[i] *= w
	}

	offset := in.Len() - ramp
	for i, w := range core.LinearRamp(1, 0, ramp) {
		out.Data[offset+i] *= w
	}

	return out, nil
}
