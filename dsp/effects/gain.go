package effects

import (
	"fmt"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
)

const defaultGainFactor = 1.0

// GainOption mutates gain construction parameters.
type GainOption func(*gainConfig) error

type gainConfig struct {
	factor float64
}

// WithGainFactor sets the scale factor (>= 0).
func WithGainFactor(factor float64) GainOption {
	return func(cfg *gainConfig) error {
		if factor < 0 || !isFinite(factor) {
			return fmt.Errorf("%w: gain factor must be >= 0 and finite, got %f", ErrConfig, factor)
		}
		cfg.factor = factor
		return nil
	}
}

// Gain scales every sample by a constant factor without clipping; use
// Distortion when the result must stay within [-1, 1]. Factors below 1
// attenuate, which is how the whisper presets pull the voice back before
// layering noise on top.
type Gain struct {
	factor float64
}

// NewGain creates a gain stage. Default factor: 1 (identity).
func NewGain(opts ...GainOption) (*Gain, error) {
	cfg := gainConfig{factor: defaultGainFactor}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Gain{factor: cfg.factor}, nil
}

// Factor returns the scale factor.
func (g *Gain) Factor() float64 { return g.factor }

// Apply scales each sample.
func (g *Gain) Apply(in buffer.Buffer) (buffer.Buffer, error) {
	if err := in.Validate(); err != nil {
		return buffer.Buffer{}, err
	}

	out := buffer.New(in.Len(), in.SampleRate)
	for i, v := range in.Data {
		out.Data[i] = v * g.factor
	}

	return out, nil
}
