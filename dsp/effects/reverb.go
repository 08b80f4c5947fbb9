package effects

import (
	"fmt"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
	"github.com/cwbudde/algo-voicefx/dsp/core"
)

const (
	defaultReverbAmount = 0.7

	// First-order pre-emphasis coefficient, the standard speech value.
	reverbPreemphasis = 0.97
)

// ReverbOption mutates reverb construction parameters.
type ReverbOption func(*reverbConfig) error

type reverbConfig struct {
	amount float64
}

// WithReverbAmount sets the output level in [0, 1].
func WithReverbAmount(amount float64) ReverbOption {
	return func(cfg *reverbConfig) error {
		if amount < 0 || amount > 1 || !isFinite(amount) {
			return fmt.Errorf("%w: reverb amount must be within [0, 1], got %f", ErrConfig, amount)
		}
		cfg.amount = amount
		return nil
	}
}

// Reverb approximates a reverberant character with pre-emphasis followed by
// scaling and clipping:
//
//	y[i]   = x[i] - 0.97·x[i-1]    (y[0] = x[0])
//	out[i] = clamp(y[i]·amount, -1, 1)
//
// This is an intentional simplification rather than a room model: the
// first-order difference brightens the signal the way dense early
// reflections do, and the scale-and-clip stage sets the level. There is no
// impulse-response convolution and no decaying tail. The first sample has no
// predecessor and passes through the difference stage unmodified.
type Reverb struct {
	amount float64
}

// NewReverb creates a pre-emphasis reverb. Default amount: 0.7.
func NewReverb(opts ...ReverbOption) (*Reverb, error) {
	cfg := reverbConfig{amount: defaultReverbAmount}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Reverb{amount: cfg.amount}, nil
}

// Amount returns the output level.
func (r *Reverb) Amount() float64 { return r.amount }

// Apply runs the pre-emphasis difference, then scales and clips.
func (r *Reverb) Apply(in buffer.Buffer) (buffer.Buffer, error) {
	if err := in.Validate(); err != nil {
		return buffer.Buffer{}, err
	}

	out := buffer.New(in.Len(), in.SampleRate)
	for i, v := range in.Data {
		y := v
		if i > 0 {
			y -= reverbPreemphasis * in.Data[i-1]
		}
		out.Data[i] = core.Clamp(y*r.amount, -1, 1)
	}

	return out, nil
}
