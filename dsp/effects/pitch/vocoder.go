package pitch

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-voicefx/dsp/window"
)

const (
	defaultVocoderFrameSize = 1024
	defaultVocoderOverlap   = 4
	minVocoderFrameSize     = 64
	minVocoderOverlap       = 2

	vocoderNormFloor = 1e-12
)

// VocoderOption mutates vocoder construction parameters.
type VocoderOption func(*vocoderConfig) error

type vocoderConfig struct {
	frameSize int
	overlap   int
}

// WithVocoderFrameSize sets the FFT frame size, a power of two >= 64. Larger
// frames resolve lower pitches at the cost of transient smearing.
func WithVocoderFrameSize(size int) VocoderOption {
	return func(cfg *vocoderConfig) error {
		if size < minVocoderFrameSize || !isPowerOfTwo(size) {
			return fmt.Errorf("pitch: vocoder frame size must be a power of two >= %d, got %d",
				minVocoderFrameSize, size)
		}
		cfg.frameSize = size
		return nil
	}
}

// WithVocoderOverlap sets the overlap factor (>= 2); the analysis hop is
// frameSize/overlap.
func WithVocoderOverlap(overlap int) VocoderOption {
	return func(cfg *vocoderConfig) error {
		if overlap < minVocoderOverlap {
			return fmt.Errorf("pitch: vocoder overlap must be >= %d, got %d", minVocoderOverlap, overlap)
		}
		cfg.overlap = overlap
		return nil
	}
}

// Vocoder is a phase-vocoder time stretcher. Each input frame is windowed
// (periodic Hann), transformed, and resynthesized at a different hop:
// analysis advances by Ha = frameSize/overlap, synthesis by
// Hs = round(Ha/rate), so the realized stretch is quantized to Hs/Ha.
// Per-bin instantaneous frequencies propagate the phase across the hop
// change, with identity phase locking (Laroche and Dolson 1999): bins around
// each magnitude peak inherit the peak's phase increment, which keeps
// partials coherent instead of phasing apart.
//
// Overlap-added frames are renormalized by the accumulated squared window;
// positions where that sum is below a small floor are left untouched, so
// silence stays exactly silent.
type Vocoder struct {
	frameSize   int
	analysisHop int

	plan   *algofft.Plan[complex128]
	coeffs []float64
	omega  []float64
}

// NewVocoder creates a phase vocoder. Defaults: frame size 1024, overlap 4
// (hop 256).
func NewVocoder(opts ...VocoderOption) (*Vocoder, error) {
	cfg := vocoderConfig{
		frameSize: defaultVocoderFrameSize,
		overlap:   defaultVocoderOverlap,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	hop := cfg.frameSize / cfg.overlap
	if hop < 1 {
		return nil, fmt.Errorf("pitch: vocoder overlap %d leaves no hop for frame size %d",
			cfg.overlap, cfg.frameSize)
	}

	plan, err := algofft.NewPlan64(cfg.frameSize)
	if err != nil {
		return nil, fmt.Errorf("pitch: creating FFT plan: %w", err)
	}

	v := &Vocoder{
		frameSize:   cfg.frameSize,
		analysisHop: hop,
		plan:        plan,
		coeffs:      window.Generate(window.TypeHann, cfg.frameSize, window.WithPeriodic()),
	}

	v.omega = make([]float64, cfg.frameSize/2+1)
	for k := range v.omega {
		v.omega[k] = 2 * math.Pi * float64(k) / float64(cfg.frameSize)
	}

	return v, nil
}

// FrameSize returns the FFT frame size.
func (v *Vocoder) FrameSize() int { return v.frameSize }

// AnalysisHop returns the analysis hop in samples.
func (v *Vocoder) AnalysisHop() int { return v.analysisHop }

// TimeStretch resynthesizes samples at round(len(samples)/rate) samples.
func (v *Vocoder) TimeStretch(samples []float64, rate float64) ([]float64, error) {
	if err := validateRate(rate); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, nil
	}
	if math.Abs(rate-1) <= identityEps {
		return copySamples(samples), nil
	}

	ha := v.analysisHop
	hs := max(int(math.Round(float64(ha)/rate)), 1)

	half := v.frameSize / 2
	bins := half + 1
	frameCount := 1 + (len(samples)-1)/ha
	stretchedLen := (frameCount-1)*hs + v.frameSize
	stretched := make([]float64, stretchedLen)
	norm := make([]float64, stretchedLen)

	// Per-call state keeps a Vocoder reusable across independent inputs
	// without a Reset step.
	prevPhase := make([]float64, bins)
	sumPhase := make([]float64, bins)
	magnitudes := make([]float64, bins)
	instFreqs := make([]float64, bins)
	peakBins := make([]int, 0, bins)
	spectrum := make([]complex128, v.frameSize)
	timeFrame := make([]complex128, v.frameSize)

	haF := float64(ha)
	hsF := float64(hs)

	for frame := range frameCount {
		inPos := frame * ha
		outPos := frame * hs

		for i := range v.frameSize {
			x := 0.0

			if idx := inPos + i; idx < len(samples) {
				x = samples[idx]
			}

			spectrum[i] = complex(x*v.coeffs[i], 0)
		}

		if err := v.plan.Forward(spectrum, spectrum); err != nil {
			return nil, fmt.Errorf("pitch: forward FFT: %w", err)
		}

		for k := 0; k <= half; k++ {
			re := real(spectrum[k])
			im := imag(spectrum[k])
			magnitudes[k] = math.Hypot(re, im)
			phase := math.Atan2(im, re)

			delta := wrapPhase(phase - prevPhase[k] - v.omega[k]*haF)
			instFreqs[k] = v.omega[k] + delta/haF
			prevPhase[k] = phase
		}

		peakBins = peakBins[:0]
		for k := 1; k < half; k++ {
			if magnitudes[k] >= magnitudes[k-1] && magnitudes[k] > magnitudes[k+1] {
				peakBins = append(peakBins, k)
			}
		}

		if len(peakBins) == 0 {
			for k := 0; k <= half; k++ {
				sumPhase[k] += instFreqs[k] * hsF
				spectrum[k] = complex(
					magnitudes[k]*math.Cos(sumPhase[k]),
					magnitudes[k]*math.Sin(sumPhase[k]),
				)
			}
		} else {
			for _, pk := range peakBins {
				sumPhase[pk] += instFreqs[pk] * hsF
			}

			// Lock every bin to its nearest peak: same phase rotation,
			// original phase offset preserved.
			peakIdx := 0
			for k := 0; k <= half; k++ {
				for peakIdx+1 < len(peakBins) {
					if absInt(peakBins[peakIdx+1]-k) < absInt(peakBins[peakIdx]-k) {
						peakIdx++
					} else {
						break
					}
				}

				if pk := peakBins[peakIdx]; k != pk {
					sumPhase[k] = sumPhase[pk] + (prevPhase[k] - prevPhase[pk])
				}

				spectrum[k] = complex(
					magnitudes[k]*math.Cos(sumPhase[k]),
					magnitudes[k]*math.Sin(sumPhase[k]),
				)
			}
		}

		// Hermitian mirror for a real-valued inverse transform.
		spectrum[0] = complex(real(spectrum[0]), 0)
		spectrum[half] = complex(real(spectrum[half]), 0)
		for k := 1; k < half; k++ {
			c := spectrum[k]
			spectrum[v.frameSize-k] = complex(real(c), -imag(c))
		}

		if err := v.plan.Inverse(timeFrame, spectrum); err != nil {
			return nil, fmt.Errorf("pitch: inverse FFT: %w", err)
		}

		for i := range v.frameSize {
			w := v.coeffs[i]
			stretched[outPos+i] += real(timeFrame[i]) * w
			norm[outPos+i] += w * w
		}
	}

	for i := range stretched {
		if norm[i] > vocoderNormFloor {
			stretched[i] /= norm[i]
		}
	}

	return fitLength(stretched, targetLength(len(samples), rate)), nil
}
