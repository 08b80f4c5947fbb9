package effects

import (
	"fmt"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
)

const defaultPitchShiftSemitones = 0.0

// PitchShiftOption mutates pitch shift construction parameters.
type PitchShiftOption func(*pitchShiftConfig) error

type pitchShiftConfig struct {
	semitones float64
}

// WithPitchShiftSemitones sets the shift interval in semitones. Positive
// values raise the pitch, negative values lower it; fractional values are
// fine. Zero leaves the signal untouched.
func WithPitchShiftSemitones(semitones float64) PitchShiftOption {
	return func(cfg *pitchShiftConfig) error {
		if !isFinite(semitones) {
			return fmt.Errorf("%w: pitch shift semitones must be finite, got %f", ErrConfig, semitones)
		}
		cfg.semitones = semitones
		return nil
	}
}

// PitchShift transposes the signal by a semitone interval while preserving
// its duration, delegating the resynthesis to the PitchShifter collaborator.
type PitchShift struct {
	shifter   PitchShifter
	semitones float64
}

// NewPitchShift creates a pitch shift step backed by the given shifter.
// Default interval: 0 semitones.
func NewPitchShift(shifter PitchShifter, opts ...PitchShiftOption) (*PitchShift, error) {
	if shifter == nil {
		return nil, fmt.Errorf("%w: pitch shifter must not be nil", ErrConfig)
	}

	cfg := pitchShiftConfig{semitones: defaultPitchShiftSemitones}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &PitchShift{shifter: shifter, semitones: cfg.semitones}, nil
}

// Semitones returns the shift interval.
func (p *PitchShift) Semitones() float64 { return p.semitones }

// Apply delegates to the collaborator; its errors propagate wrapped.
func (p *PitchShift) Apply(in buffer.Buffer) (buffer.Buffer, error) {
	if err := in.Validate(); err != nil {
		return buffer.Buffer{}, err
	}

	data, err := p.shifter.PitchShift(in.Data, in.SampleRate, p.semitones)
	if err != nil {
		return buffer.Buffer{}, fmt.Errorf("effects: pitch shift: %w", err)
	}

	return buffer.Buffer{Data: data, SampleRate: in.SampleRate}, nil
}
