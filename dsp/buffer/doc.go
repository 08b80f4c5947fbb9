// Package buffer defines the mono sample buffer every effect operates on.
// A Buffer couples float64 samples with the sample rate they were captured
// at, so time- and frequency-valued parameters always convert against the
// buffer's own rate. Effects treat buffers as immutable inputs and return
// fresh buffers; Clone exists for callers that need an explicit deep copy.
package buffer
