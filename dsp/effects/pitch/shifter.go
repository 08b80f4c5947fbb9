package pitch

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-voicefx/dsp/resample"
)

// ShifterOption mutates shifter construction parameters.
type ShifterOption func(*shifterConfig) error

type shifterConfig struct {
	stretcher Stretcher
}

// WithShifterStretcher selects the stretch stage backend.
func WithShifterStretcher(s Stretcher) ShifterOption {
	return func(cfg *shifterConfig) error {
		if s == nil {
			return fmt.Errorf("pitch: shifter stretcher must not be nil")
		}
		cfg.stretcher = s
		return nil
	}
}

// Shifter transposes a signal while preserving its duration: the input is
// first time-stretched to round(n·ratio) samples, then Hermite-resampled
// back onto the original n, which scales every frequency by ratio. Ratios
// are accepted within [0.25, 4], two octaves in either direction.
type Shifter struct {
	stretcher Stretcher
}

// NewShifter creates a pitch shifter. The stretch stage defaults to a
// phase vocoder with default parameters.
func NewShifter(opts ...ShifterOption) (*Shifter, error) {
	var cfg shifterConfig

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.stretcher == nil {
		vocoder, err := NewVocoder()
		if err != nil {
			return nil, err
		}
		cfg.stretcher = vocoder
	}

	return &Shifter{stretcher: cfg.stretcher}, nil
}

// PitchShift transposes samples by the given semitone interval. Positive
// intervals raise the pitch. The output always holds len(samples) samples.
func (s *Shifter) PitchShift(samples []float64, sampleRate int, semitones float64) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("pitch: sample rate must be positive, got %d", sampleRate)
	}
	if math.IsNaN(semitones) || math.IsInf(semitones, 0) {
		return nil, fmt.Errorf("pitch: semitones must be finite, got %f", semitones)
	}
	if len(samples) == 0 {
		return nil, nil
	}

	ratio := math.Pow(2, semitones/12)
	if ratio < minStretchRate || ratio > maxStretchRate {
		return nil, fmt.Errorf("pitch: %+.1f semitones maps to ratio %f, outside [%g, %g]",
			semitones, ratio, minStretchRate, maxStretchRate)
	}
	if math.Abs(ratio-1) <= identityEps {
		return copySamples(samples), nil
	}

	// Stretching by 1/ratio lengthens (or shortens) the signal at constant
	// pitch; compacting it back onto n samples raises (or lowers) every
	// frequency by ratio.
	stretched, err := s.stretcher.TimeStretch(samples, 1/ratio)
	if err != nil {
		return nil, fmt.Errorf("pitch: stretch stage: %w", err)
	}

	return resample.HermiteToLength(stretched, len(samples)), nil
}
