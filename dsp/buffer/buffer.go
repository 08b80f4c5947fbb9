package buffer

import (
	"fmt"
	"time"
)

// Buffer is a mono audio signal: samples in nominal [-1, 1] range plus the
// sample rate they are valid at. The zero value is an empty buffer with an
// invalid rate; construct buffers with New or FromSlice.
//
// Buffer is a value type. Assignment shares the underlying samples, which is
// safe under the library-wide convention that processing never mutates an
// input buffer. Use Clone when an independent copy is required.
type Buffer struct {
	Data       []float64
	SampleRate int
}

// New returns a zero-filled buffer of the given length. Negative lengths
// yield an empty buffer.
func New(length, sampleRate int) Buffer {
	if length < 0 {
		length = 0
	}
	return Buffer{
		Data:       make([]float64, length),
		SampleRate: sampleRate,
	}
}

// FromSlice copies data into a new buffer; the caller keeps ownership of the
// source slice.
func FromSlice(data []float64, sampleRate int) Buffer {
	out := make([]float64, len(data))
	copy(out, data)
	return Buffer{
		Data:       out,
		SampleRate: sampleRate,
	}
}

// Clone returns a deep copy of b.
func (b Buffer) Clone() Buffer {
	return FromSlice(b.Data, b.SampleRate)
}

// Len returns the number of samples.
func (b Buffer) Len() int {
	return len(b.Data)
}

// Duration returns the buffer length as wall time, or 0 when the sample rate
// is not positive.
func (b Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	seconds := float64(len(b.Data)) / float64(b.SampleRate)
	return time.Duration(seconds * float64(time.Second))
}

// Validate reports whether the buffer can be processed. An empty buffer is
// valid; a non-positive sample rate is not.
func (b Buffer) Validate() error {
	if b.SampleRate <= 0 {
		return fmt.Errorf("buffer: sample rate must be positive, got %d", b.SampleRate)
	}
	return nil
}
