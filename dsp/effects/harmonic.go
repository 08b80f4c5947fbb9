package effects

import (
	"fmt"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
)

// Harmonic keeps the harmonic (tonal) component of the signal and suppresses
// percussive transients, delegating the separation to the HarmonicSeparator
// collaborator. The vocoder-style robot presets run this before pitch
// shifting so the shifted voice stays smooth.
type Harmonic struct {
	separator HarmonicSeparator
}

// NewHarmonic creates a harmonic extraction step backed by the given
// separator.
func NewHarmonic(separator HarmonicSeparator) (*Harmonic, error) {
	if separator == nil {
		return nil, fmt.Errorf("%w: harmonic separator must not be nil", ErrConfig)
	}

	return &Harmonic{separator: separator}, nil
}

// Apply delegates to the collaborator; its errors propagate wrapped.
func (h *Harmonic) Apply(in buffer.Buffer) (buffer.Buffer, error) {
	if err := in.Validate(); err != nil {
		return buffer.Buffer{}, err
	}

	data, err := h.separator.Harmonic(in.Data)
	if err != nil {
		return buffer.Buffer{}, fmt.Errorf("effects: harmonic: %w", err)
	}

	return buffer.Buffer{Data: data, SampleRate: in.SampleRate}, nil
}
