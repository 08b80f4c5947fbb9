package effects

import (
	"fmt"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
)

const defaultTimeStretchRate = 1.0

// TimeStretchOption mutates time stretch construction parameters.
type TimeStretchOption func(*timeStretchConfig) error

type timeStretchConfig struct {
	rate float64
}

// WithTimeStretchRate sets the speed factor (> 0). Rates below 1 slow the
// signal down and lengthen it; rates above 1 speed it up and shorten it.
func WithTimeStretchRate(rate float64) TimeStretchOption {
	return func(cfg *timeStretchConfig) error {
		if rate <= 0 || !isFinite(rate) {
			return fmt.Errorf("%w: time stretch rate must be > 0 and finite, got %f", ErrConfig, rate)
		}
		cfg.rate = rate
		return nil
	}
}

// TimeStretch changes the duration of the signal without changing its pitch,
// delegating the resynthesis to the TimeStretcher collaborator. The output
// holds roughly len(in)/rate samples.
type TimeStretch struct {
	stretcher TimeStretcher
	rate      float64
}

// NewTimeStretch creates a time stretch step backed by the given stretcher.
// Default rate: 1 (identity).
func NewTimeStretch(stretcher TimeStretcher, opts ...TimeStretchOption) (*TimeStretch, error) {
	if stretcher == nil {
		return nil, fmt.Errorf("%w: time stretcher must not be nil", ErrConfig)
	}

	cfg := timeStretchConfig{rate: defaultTimeStretchRate}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &TimeStretch{stretcher: stretcher, rate: cfg.rate}, nil
}

// Rate returns the speed factor.
func (t *TimeStretch) Rate() float64 { return t.rate }

// Apply delegates to the collaborator; its errors propagate wrapped.
func (t *TimeStretch) Apply(in buffer.Buffer) (buffer.Buffer, error) {
	if err := in.Validate(); err != nil {
		return buffer.Buffer{}, err
	}

	data, err := t.stretcher.TimeStretch(in.Data, t.rate)
	if err != nil {
		return buffer.Buffer{}, fmt.Errorf("effects: time stretch: %w", err)
	}

	return buffer.Buffer{Data: data, SampleRate: in.SampleRate}, nil
}
