package effects

// Frequency-domain work is delegated to collaborators so the primitives stay
// free of FFT machinery. The interfaces live here, where they are consumed;
// any conforming provider plugs in (dsp/engine ships the default).

// PitchShifter shifts pitch by a semitone interval while preserving the
// sample count of the input.
type PitchShifter interface {
	PitchShift(samples []float64, sampleRate int, semitones float64) ([]float64, error)
}

// TimeStretcher changes duration without changing pitch. The output holds
// roughly len(samples)/rate samples: rate < 1 slows down and lengthens,
// rate > 1 speeds up and shortens.
type TimeStretcher interface {
	TimeStretch(samples []float64, rate float64) ([]float64, error)
}

// Filter processes a whole signal in one pass, returning a fresh slice of
// the same length.
type Filter interface {
	Apply(samples []float64) ([]float64, error)
}

// BandpassDesigner builds a bandpass filter for the given corner frequencies
// in Hz. The returned filter is used for a single application and discarded.
type BandpassDesigner interface {
	DesignBandpass(low, high float64, sampleRate, order int) (Filter, error)
}

// HarmonicSeparator extracts the harmonic (tonal) component of a signal,
// suppressing percussive transients.
type HarmonicSeparator interface {
	Harmonic(samples []float64) ([]float64, error)
}

// Processor bundles every collaborator capability the preset catalogue
// needs. A single value of this type backs all collaborator-backed effects
// in a registry.
type Processor interface {
	PitchShifter
	TimeStretcher
	BandpassDesigner
	HarmonicSeparator
}
