// Package effects provides the offline voice-effect primitives that preset
// chains are assembled from.
//
// Every effect implements the Effect contract: Apply consumes a buffer and
// returns a freshly allocated result, never mutating its input. Parameters
// are validated at construction, so a chain fails before any audio is
// touched; Apply itself only fails for buffers that cannot be processed at
// all or when an external collaborator fails. Delay-style effects whose
// lookback window exceeds the buffer length degrade gracefully instead of
// erroring: the missing history simply contributes nothing.
//
// The effects fall into four groups:
//
//   - Time-domain taps: Delay (feedback, IIR), Echo (single tap, FIR),
//     Chorus and Flanger (modulated read offsets).
//   - Amplitude shaping: Tremolo, RingMod, Distortion, Gain, Noise,
//     FadeEdges, Reverb.
//   - Buffer-order effects: Reverse, Stutter.
//   - Collaborator-backed steps: Bandpass, PitchShift, TimeStretch and
//     Harmonic delegate the heavy lifting to the interfaces declared in
//     this package; dsp/engine ships the default implementation.
package effects
