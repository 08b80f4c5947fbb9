package effects

import (
	"fmt"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
	"github.com/cwbudde/algo-voicefx/dsp/core"
)

const defaultStutterFraction = 0.1

// StutterOption mutates stutter construction parameters.
type StutterOption func(*stutterConfig) error

type stutterConfig struct {
	fraction float64
}

// WithStutterFraction sets the segment length in seconds (> 0).
func WithStutterFraction(seconds float64) StutterOption {
	return func(cfg *stutterConfig) error {
		if seconds <= 0 || !isFinite(seconds) {
			return fmt.Errorf("%w: stutter fraction must be > 0 and finite, got %f", ErrConfig, seconds)
		}
		cfg.fraction = seconds
		return nil
	}
}

// Stutter chops the input into segments of S = round(fraction·sampleRate)
// samples and emits each segment followed by a repeat of its first S/2
// samples (integer division). A full segment therefore contributes 1.5·S
// output samples; segment order is preserved and the final partial segment
// repeats only the samples it actually has. This is the one effect that
// changes the buffer length.
//
// When S computes to zero (fraction shorter than one sample period) the
// effect degrades to an unchanged copy.
type Stutter struct {
	fraction float64
}

// NewStutter creates a stutter. Default segment length: 0.1 s.
func NewStutter(opts ...StutterOption) (*Stutter, error) {
	cfg := stutterConfig{fraction: defaultStutterFraction}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Stutter{fraction: cfg.fraction}, nil
}

// Fraction returns the segment length in seconds.
func (s *Stutter) Fraction() float64 { return s.fraction }

// Apply emits each segment plus its half-length repeat.
func (s *Stutter) Apply(in buffer.Buffer) (buffer.Buffer, error) {
	if err := in.Validate(); err != nil {
		return buffer.Buffer{}, err
	}

	n := in.Len()
	seg := core.SecondsToSamples(s.fraction, in.SampleRate)
	if seg <= 0 {
		return in.Clone(), nil
	}

	half := seg / 2
	data := make([]float64, 0, n+(n/seg+1)*half)
	for start := 0; start < n; start += seg {
		data = append(data, in.Data[start:min(start+seg, n)]...)
		data = append(data, in.Data[start:min(start+half, n)]...)
	}

	return buffer.Buffer{Data: data, SampleRate: in.SampleRate}, nil
}
