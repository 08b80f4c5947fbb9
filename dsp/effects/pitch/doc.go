// Package pitch provides the duration and pitch providers behind the
// pitch_shift and time_stretch steps.
//
// Two Stretcher implementations are available. Vocoder is a phase vocoder
// with identity phase locking: transparent on tonal material, heavier on
// CPU. WSOLA is a waveform-similarity overlap-add stretcher: cheap and
// robust on speech, with the usual granular artifacts on polyphonic input.
// Shifter turns either one into a pitch shifter by stretching the signal and
// resampling the result back onto the original sample count.
//
// All providers are one-shot and deterministic: the same input and
// parameters produce the same output. A Vocoder or WSOLA value holds no
// state between calls, but the Vocoder shares one FFT plan across calls and
// must not be used from multiple goroutines at once; build one per worker.
package pitch
