package effects

import (
	"fmt"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
	"github.com/cwbudde/algo-voicefx/dsp/core"
)

const defaultDistortionGain = 10.0

// DistortionOption mutates distortion construction parameters.
type DistortionOption func(*distortionConfig) error

type distortionConfig struct {
	gain float64
}

// WithDistortionGain sets the drive applied before clipping (>= 0).
func WithDistortionGain(gain float64) DistortionOption {
	return func(cfg *distortionConfig) error {
		if gain < 0 || !isFinite(gain) {
			return fmt.Errorf("%w: distortion gain must be >= 0 and finite, got %f", ErrConfig, gain)
		}
		cfg.gain = gain
		return nil
	}
}

// Distortion drives the signal into a hard clip:
//
//	out[i] = clamp(in[i]·gain, -1, 1)
//
// Every output sample lies within [-1, 1] regardless of gain or input level.
// Gains below 1 attenuate without clipping; large gains square the waveform
// off and add the odd harmonics that make the effect audible.
type Distortion struct {
	gain float64
}

// NewDistortion creates a hard-clip distortion. Default gain: 10.
func NewDistortion(opts ...DistortionOption) (*Distortion, error) {
	cfg := distortionConfig{gain: defaultDistortionGain}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Distortion{gain: cfg.gain}, nil
}

// Gain returns the pre-clip drive.
func (d *Distortion) Gain() float64 { return d.gain }

// Apply drives and clips each sample.
func (d *Distortion) Apply(in buffer.Buffer) (buffer.Buffer, error) {
	if err := in.Validate(); err != nil {
		return buffer.Buffer{}, err
	}

	out := buffer.New(in.Len(), in.SampleRate)
	for i, v := range in.Data {
		out.Data[i] = core.Clamp(v*d.gain, -1, 1)
	}

	return out, nil
}
