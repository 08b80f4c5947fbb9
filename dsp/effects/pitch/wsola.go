package pitch

import (
	"fmt"
	"math"
)

// Defaults approximate SoundTouch's music preset (82/10/28 ms) at 44.1 kHz.
// Windows are fixed sample counts, so lower rates simply use slightly longer
// wall-clock windows.
const (
	defaultWSOLASequence = 3600
	defaultWSOLAOverlap  = 440
	defaultWSOLASearch   = 1200

	minWSOLASequence = 64
	minWSOLAOverlap  = 8
	minWSOLAStep     = 4
)

// WSOLAOption mutates WSOLA construction parameters.
type WSOLAOption func(*wsolaConfig) error

type wsolaConfig struct {
	sequence int
	overlap  int
	search   int
}

// WithWSOLASequence sets the sequence window in samples (>= 64).
func WithWSOLASequence(samples int) WSOLAOption {
	return func(cfg *wsolaConfig) error {
		if samples < minWSOLASequence {
			return fmt.Errorf("pitch: wsola sequence must be >= %d samples, got %d", minWSOLASequence, samples)
		}
		cfg.sequence = samples
		return nil
	}
}

// WithWSOLAOverlap sets the crossfade overlap in samples (>= 8).
func WithWSOLAOverlap(samples int) WSOLAOption {
	return func(cfg *wsolaConfig) error {
		if samples < minWSOLAOverlap {
			return fmt.Errorf("pitch: wsola overlap must be >= %d samples, got %d", minWSOLAOverlap, samples)
		}
		cfg.overlap = samples
		return nil
	}
}

// WithWSOLASearch sets the seek radius around the nominal position in
// samples (>= 1).
func WithWSOLASearch(samples int) WSOLAOption {
	return func(cfg *wsolaConfig) error {
		if samples < 1 {
			return fmt.Errorf("pitch: wsola search radius must be >= 1 sample, got %d", samples)
		}
		cfg.search = samples
		return nil
	}
}

// WSOLA is a waveform-similarity overlap-add time stretcher. Output is
// assembled from input sequences advanced by a nominal input step of
// step·rate; each sequence's splice point is chosen within ±search samples
// of nominal by maximizing normalized cross-correlation against what the
// output expects next, then blended over a raised-cosine crossfade.
//
// Reads past either end of the input are treated as silence, so the tail of
// a stretch fades out instead of wrapping.
type WSOLA struct {
	sequence int
	overlap  int
	search   int
	step     int

	fadeIn  []float64
	fadeOut []float64
}

// NewWSOLA creates a WSOLA stretcher. Defaults: sequence 3600, overlap 440,
// search 1200 samples.
func NewWSOLA(opts ...WSOLAOption) (*WSOLA, error) {
	cfg := wsolaConfig{
		sequence: defaultWSOLASequence,
		overlap:  defaultWSOLAOverlap,
		search:   defaultWSOLASearch,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	step := cfg.sequence - cfg.overlap
	if step < minWSOLAStep {
		return nil, fmt.Errorf("pitch: wsola overlap %d leaves step %d, need >= %d",
			cfg.overlap, step, minWSOLAStep)
	}

	w := &WSOLA{
		sequence: cfg.sequence,
		overlap:  cfg.overlap,
		search:   cfg.search,
		step:     step,
		fadeIn:   make([]float64, cfg.overlap),
		fadeOut:  make([]float64, cfg.overlap),
	}

	for i := range cfg.overlap {
		t := float64(i) / float64(cfg.overlap-1)
		in := 0.5 - 0.5*math.Cos(math.Pi*t)
		w.fadeIn[i] = in
		w.fadeOut[i] = 1 - in
	}

	return w, nil
}

// Sequence returns the sequence window in samples.
func (w *WSOLA) Sequence() int { return w.sequence }

// Overlap returns the crossfade overlap in samples.
func (w *WSOLA) Overlap() int { return w.overlap }

// Search returns the seek radius in samples.
func (w *WSOLA) Search() int { return w.search }

// TimeStretch resynthesizes samples at round(len(samples)/rate) samples.
func (w *WSOLA) TimeStretch(samples []float64, rate float64) ([]float64, error) {
	if err := validateRate(rate); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, nil
	}
	if math.Abs(rate-1) <= identityEps {
		return copySamples(samples), nil
	}

	targetLen := targetLength(len(samples), rate)

	nominalInStep := math.Max(float64(w.step)*rate, 1)

	frames := targetLen/w.step + 4
	out := make([]float64, frames*w.step+w.sequence+1)

	for i := range w.sequence {
		out[i] = sampleOrZero(samples, i)
	}
	outLen := w.sequence
	prevStart := 0
	nextNominal := nominalInStep
	ref := make([]float64, w.overlap)

	for outLen < targetLen+w.sequence {
		// The natural continuation of the last written sequence is the
		// similarity reference for the next splice.
		refStart := prevStart + w.step
		for i := range ref {
			ref[i] = sampleOrZero(samples, refStart+i)
		}

		candStart := w.findBestOverlap(ref, samples, int(math.Round(nextNominal)))

		outStart := outLen - w.overlap
		for i := range w.overlap {
			incoming := sampleOrZero(samples, candStart+i)
			out[outStart+i] = out[outStart+i]*w.fadeOut[i] + incoming*w.fadeIn[i]
		}
		for i := w.overlap; i < w.sequence; i++ {
			out[outStart+i] = sampleOrZero(samples, candStart+i)
		}

		outLen = outStart + w.sequence
		prevStart = candStart
		nextNominal += nominalInStep

		if prevStart > len(samples)+w.sequence && outLen >= targetLen {
			break
		}
	}

	return fitLength(out, targetLen), nil
}

// findBestOverlap scans ±search around the predicted input position for the
// candidate whose overlap region best correlates with ref.
func (w *WSOLA) findBestOverlap(ref, samples []float64, predicted int) int {
	best := predicted
	bestScore := math.Inf(-1)

	refEnergy := energyTiny
	for _, v := range ref {
		refEnergy += v * v
	}

	for cand := predicted - w.search; cand <= predicted+w.search; cand++ {
		dot := 0.0
		candEnergy := energyTiny
		for i, rv := range ref {
			cv := sampleOrZero(samples, cand+i)
			dot += rv * cv
			candEnergy += cv * cv
		}

		if score := dot / math.Sqrt(refEnergy*candEnergy); score > bestScore {
			bestScore = score
			best = cand
		}
	}

	return best
}
