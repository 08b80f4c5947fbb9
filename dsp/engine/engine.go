// Package engine assembles the frequency-domain collaborators behind the
// effects package into one Processor: pitch shifting, time stretching,
// bandpass design, and harmonic separation.
//
// Every call builds its own transform state, so a single Engine value is
// safe for concurrent use across preset chains.
package engine

import (
	"fmt"

	"github.com/cwbudde/algo-voicefx/dsp/effects"
	"github.com/cwbudde/algo-voicefx/dsp/effects/pitch"
	"github.com/cwbudde/algo-voicefx/dsp/filter/biquad"
	"github.com/cwbudde/algo-voicefx/dsp/filter/design"
	"github.com/cwbudde/algo-voicefx/dsp/spectrum"
)

// StretcherKind selects the time-stretch backend.
type StretcherKind int

const (
	// StretcherVocoder is the phase vocoder: smooth on tonal material,
	// smears sharp transients.
	StretcherVocoder StretcherKind = iota
	// StretcherWSOLA is waveform-similarity overlap-add: crisper
	// transients, occasional splice artifacts on dense material.
	StretcherWSOLA
)

// String returns the flag-friendly name of the backend.
func (k StretcherKind) String() string {
	switch k {
	case StretcherVocoder:
		return "vocoder"
	case StretcherWSOLA:
		return "wsola"
	default:
		return fmt.Sprintf("stretcher(%d)", int(k))
	}
}

// ParseStretcherKind maps a backend name to its kind.
func ParseStretcherKind(name string) (StretcherKind, error) {
	switch name {
	case "vocoder":
		return StretcherVocoder, nil
	case "wsola":
		return StretcherWSOLA, nil
	default:
		return 0, fmt.Errorf("engine: unknown stretcher %q (want vocoder or wsola)", name)
	}
}

const (
	defaultFrameSize = 1024
	defaultOverlap   = 4
)

// Option mutates engine construction parameters.
type Option func(*config) error

type config struct {
	frameSize int
	overlap   int
	kind      StretcherKind
}

// WithFrameSize sets the vocoder FFT frame size, a power of two >= 64. The
// WSOLA backend keeps its own window sizes.
func WithFrameSize(size int) Option {
	return func(cfg *config) error {
		if size < 64 || size&(size-1) != 0 {
			return fmt.Errorf("engine: frame size must be a power of two >= 64, got %d", size)
		}
		cfg.frameSize = size
		return nil
	}
}

// WithOverlap sets the vocoder overlap factor (>= 2).
func WithOverlap(overlap int) Option {
	return func(cfg *config) error {
		if overlap < 2 {
			return fmt.Errorf("engine: overlap must be >= 2, got %d", overlap)
		}
		cfg.overlap = overlap
		return nil
	}
}

// WithStretcher selects the time-stretch backend.
func WithStretcher(kind StretcherKind) Option {
	return func(cfg *config) error {
		switch kind {
		case StretcherVocoder, StretcherWSOLA:
			cfg.kind = kind
			return nil
		default:
			return fmt.Errorf("engine: unknown stretcher kind %d", int(kind))
		}
	}
}

// Engine is the default Processor. The zero value is not usable; construct
// with New.
type Engine struct {
	frameSize int
	overlap   int
	kind      StretcherKind
}

var _ effects.Processor = (*Engine)(nil)

// New creates an engine. Defaults: phase vocoder backend, frame size 1024,
// overlap 4.
func New(opts ...Option) (*Engine, error) {
	cfg := config{
		frameSize: defaultFrameSize,
		overlap:   defaultOverlap,
		kind:      StretcherVocoder,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	e := &Engine{
		frameSize: cfg.frameSize,
		overlap:   cfg.overlap,
		kind:      cfg.kind,
	}

	// Probe the builders so parameter combinations that only fail at
	// construction time surface here rather than mid-chain.
	if _, err := e.newStretcher(); err != nil {
		return nil, err
	}

	if _, err := spectrum.NewSeparator(); err != nil {
		return nil, err
	}

	return e, nil
}

// Stretcher returns the configured backend kind.
func (e *Engine) Stretcher() StretcherKind { return e.kind }

func (e *Engine) newStretcher() (pitch.Stretcher, error) {
	if e.kind == StretcherWSOLA {
		return pitch.NewWSOLA()
	}

	return pitch.NewVocoder(
		pitch.WithVocoderFrameSize(e.frameSize),
		pitch.WithVocoderOverlap(e.overlap),
	)
}

// TimeStretch resynthesizes samples at round(len(samples)/rate) samples
// using the configured backend.
func (e *Engine) TimeStretch(samples []float64, rate float64) ([]float64, error) {
	stretcher, err := e.newStretcher()
	if err != nil {
		return nil, err
	}

	return stretcher.TimeStretch(samples, rate)
}

// PitchShift transposes samples by semitones at constant duration.
func (e *Engine) PitchShift(samples []float64, sampleRate int, semitones float64) ([]float64, error) {
	stretcher, err := e.newStretcher()
	if err != nil {
		return nil, err
	}

	shifter, err := pitch.NewShifter(pitch.WithShifterStretcher(stretcher))
	if err != nil {
		return nil, err
	}

	return shifter.PitchShift(samples, sampleRate, semitones)
}

// Harmonic returns the harmonic component of samples.
func (e *Engine) Harmonic(samples []float64) ([]float64, error) {
	separator, err := spectrum.NewSeparator()
	if err != nil {
		return nil, err
	}

	return separator.Harmonic(samples)
}

// DesignBandpass builds a Butterworth bandpass cascade for the given corner
// frequencies. The returned filter carries section state, so it serves one
// signal and is then discarded.
func (e *Engine) DesignBandpass(low, high float64, sampleRate, order int) (effects.Filter, error) {
	coeffs, err := design.Bandpass(low, high, order, float64(sampleRate))
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	return &chainFilter{chain: biquad.NewChain(coeffs)}, nil
}

// chainFilter adapts a biquad cascade to the effects.Filter contract. The
// cascade mutates blocks in place, so Apply runs on a copy of the input.
type chainFilter struct {
	chain *biquad.Chain
}

func (f *chainFilter) Apply(samples []float64) ([]float64, error) {
	out := make([]float64, len(samples))
	copy(out, samples)
	f.chain.ProcessBlock(out)

	return out, nil
}
