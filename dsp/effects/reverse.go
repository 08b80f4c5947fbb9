package effects

import "github.com/cwbudde/algo-voicefx/dsp/buffer"

// Reverse plays the buffer backwards. Applying it twice restores the
// original sample-for-sample. It has no parameters and no state.
type Reverse struct{}

// NewReverse creates a reverse effect.
func NewReverse() *Reverse { return &Reverse{} }

// Apply returns the samples in reverse order.
func (r *Reverse) Apply(in buffer.Buffer) (buffer.Buffer, error) {
	if err := in.Validate(); err != nil {
		return buffer.Buffer{}, err
	}

	out := buffer.New(in.Len(), in.SampleRate)
	last := in.Len() - 1
	for i, v := range in.Data {
		out.Data[last-i] = v
	}

	return out, nil
}
