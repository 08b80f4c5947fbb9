package spectrum

import (
	"fmt"
	"sort"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-voicefx/dsp/window"
)

const (
	defaultSeparatorFrameSize = 2048
	defaultSeparatorOverlap   = 4
	defaultSeparatorKernel    = 31
	minSeparatorFrameSize     = 64
	minSeparatorOverlap       = 2
	minSeparatorKernel        = 3

	separatorNormFloor = 1e-12
	separatorMaskFloor = 1e-24
)

// SeparatorOption mutates separator construction parameters.
type SeparatorOption func(*separatorConfig) error

type separatorConfig struct {
	frameSize int
	overlap   int
	kernel    int
}

// WithSeparatorFrameSize sets the STFT frame size, a power of two >= 64.
func WithSeparatorFrameSize(size int) SeparatorOption {
	return func(cfg *separatorConfig) error {
		if size < minSeparatorFrameSize || !isPowerOfTwoSpectrum(size) {
			return fmt.Errorf("spectrum: separator frame size must be a power of two >= %d, got %d",
				minSeparatorFrameSize, size)
		}
		cfg.frameSize = size
		return nil
	}
}

// WithSeparatorOverlap sets the overlap factor (>= 2); the hop is
// frameSize/overlap.
func WithSeparatorOverlap(overlap int) SeparatorOption {
	return func(cfg *separatorConfig) error {
		if overlap < minSeparatorOverlap {
			return fmt.Errorf("spectrum: separator overlap must be >= %d, got %d", minSeparatorOverlap, overlap)
		}
		cfg.overlap = overlap
		return nil
	}
}

// WithSeparatorKernel sets the median filter length in spectrogram cells,
// an odd count >= 3, applied along time for the harmonic estimate and along
// frequency for the percussive one.
func WithSeparatorKernel(length int) SeparatorOption {
	return func(cfg *separatorConfig) error {
		if length < minSeparatorKernel || length%2 == 0 {
			return fmt.Errorf("spectrum: separator kernel must be odd and >= %d, got %d", minSeparatorKernel, length)
		}
		cfg.kernel = length
		return nil
	}
}

// Separator splits a signal into harmonic and percussive components by
// median filtering the magnitude spectrogram (Fitzgerald 2010). Tonal
// partials persist across time, so a median along the time axis keeps them
// and discards transients; percussive hits span frequency, so a median along
// the frequency axis does the opposite. Soft Wiener-style masks built from
// the two estimates split each STFT bin, and both components are
// resynthesized by overlap-add.
//
// The two masks sum to one wherever the spectrogram carries energy, so
// harmonic plus percussive reconstructs the input up to windowing error.
// Bins with no energy keep a zero mask: silence separates into silence.
type Separator struct {
	frameSize int
	hop       int
	kernel    int

	plan   *algofft.Plan[complex128]
	coeffs []float64
}

// NewSeparator creates a harmonic/percussive separator. Defaults: frame
// size 2048, overlap 4 (hop 512), kernel 31.
func NewSeparator(opts ...SeparatorOption) (*Separator, error) {
	cfg := separatorConfig{
		frameSize: defaultSeparatorFrameSize,
		overlap:   defaultSeparatorOverlap,
		kernel:    defaultSeparatorKernel,
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
		return nil, fmt.Errorf("spectrum: separator overlap %d leaves no hop for frame size %d",
			cfg.overlap, cfg.frameSize)
	}

	plan, err := algofft.NewPlan64(cfg.frameSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: creating FFT plan: %w", err)
	}

	return &Separator{
		frameSize: cfg.frameSize,
		hop:       hop,
		kernel:    cfg.kernel,
		plan:      plan,
		coeffs:    window.Generate(window.TypeHann, cfg.frameSize, window.WithPeriodic()),
	}, nil
}

// FrameSize returns the STFT frame size.
func (s *Separator) FrameSize() int { return s.frameSize }

// Hop returns the STFT hop in samples.
func (s *Separator) Hop() int { return s.hop }

// Kernel returns the median filter length.
func (s *Separator) Kernel() int { return s.kernel }

// Harmonic returns the harmonic component of samples.
func (s *Separator) Harmonic(samples []float64) ([]float64, error) {
	harmonic, _, err := s.Separate(samples)
	return harmonic, err
}

// Percussive returns the percussive component of samples.
func (s *Separator) Percussive(samples []float64) ([]float64, error) {
	_, percussive, err := s.Separate(samples)
	return percussive, err
}

// Separate splits samples into harmonic and percussive components of the
// same length as the input.
func (s *Separator) Separate(samples []float64) (harmonic, percussive []float64, err error) {
	if len(samples) == 0 {
		return nil, nil, nil
	}

	half := s.frameSize / 2
	bins := half + 1
	frameCount := 1 + (len(samples)-1)/s.hop

	spectra := make([][]complex128, frameCount)
	mags := make([][]float64, frameCount)

	for frame := range frameCount {
		spec := make([]complex128, s.frameSize)
		pos := frame * s.hop

		for i := range s.frameSize {
			x := 0.0

			if idx := pos + i; idx < len(samples) {
				x = samples[idx]
			}

			spec[i] = complex(x*s.coeffs[i], 0)
		}

		if err := s.plan.Forward(spec, spec); err != nil {
			return nil, nil, fmt.Errorf("spectrum: forward FFT: %w", err)
		}

		mag := make([]float64, bins)
		if err := Magnitudes(mag, spec); err != nil {
			return nil, nil, err
		}

		spectra[frame] = spec
		mags[frame] = mag
	}

	harmMag, percMag := s.medianEstimates(mags, frameCount, bins)

	outLen := (frameCount-1)*s.hop + s.frameSize
	harmOut := make([]float64, outLen)
	percOut := make([]float64, outLen)
	norm := make([]float64, outLen)

	masked := make([]complex128, s.frameSize)
	timeFrame := make([]complex128, s.frameSize)
	mask := make([]float64, bins)

	for frame := range frameCount {
		pos := frame * s.hop

		for i := range s.frameSize {
			norm[pos+i] += s.coeffs[i] * s.coeffs[i]
		}

		for k := 0; k < bins; k++ {
			h2 := harmMag[frame][k] * harmMag[frame][k]
			p2 := percMag[frame][k] * percMag[frame][k]

			mask[k] = 0
			if denom := h2 + p2; denom > separatorMaskFloor {
				mask[k] = h2 / denom
			}
		}

		err := s.synthesize(harmOut[pos:], spectra[frame], mask, masked, timeFrame, half)
		if err != nil {
			return nil, nil, err
		}

		for k := 0; k < bins; k++ {
			h2 := harmMag[frame][k] * harmMag[frame][k]
			p2 := percMag[frame][k] * percMag[frame][k]

			mask[k] = 0
			if denom := h2 + p2; denom > separatorMaskFloor {
				mask[k] = p2 / denom
			}
		}

		err = s.synthesize(percOut[pos:], spectra[frame], mask, masked, timeFrame, half)
		if err != nil {
			return nil, nil, err
		}
	}

	for i := range norm {
		if norm[i] > separatorNormFloor {
			harmOut[i] /= norm[i]
			percOut[i] /= norm[i]
		}
	}

	return fitSignal(harmOut, len(samples)), fitSignal(percOut, len(samples)), nil
}

// medianEstimates runs the time-axis and frequency-axis median filters over
// the magnitude spectrogram. Windows shrink at the spectrogram borders.
func (s *Separator) medianEstimates(mags [][]float64, frameCount, bins int) (harm, perc [][]float64) {
	radius := s.kernel / 2
	scratch := make([]float64, 0, s.kernel)

	harm = make([][]float64, frameCount)
	perc = make([][]float64, frameCount)
	for frame := range frameCount {
		harm[frame] = make([]float64, bins)
		perc[frame] = make([]float64, bins)
	}

	column := make([]float64, frameCount)
	for k := 0; k < bins; k++ {
		for frame := range frameCount {
			column[frame] = mags[frame][k]
		}
		for frame := range frameCount {
			harm[frame][k] = medianWindow(column, frame, radius, scratch)
		}
	}

	for frame := range frameCount {
		for k := 0; k < bins; k++ {
			perc[frame][k] = medianWindow(mags[frame], k, radius, scratch)
		}
	}

	return harm, perc
}

// synthesize masks one analysis frame, inverts it, and overlap-adds the
// windowed result into out.
func (s *Separator) synthesize(out []float64, spec []complex128, mask []float64, masked, timeFrame []complex128, half int) error {
	for k := 0; k <= half; k++ {
		masked[k] = spec[k] * complex(mask[k], 0)
	}

	masked[0] = complex(real(masked[0]), 0)
	masked[half] = complex(real(masked[half]), 0)
	for k := 1; k < half; k++ {
		c := masked[k]
		masked[s.frameSize-k] = complex(real(c), -imag(c))
	}

	if err := s.plan.Inverse(timeFrame, masked); err != nil {
		return fmt.Errorf("spectrum: inverse FFT: %w", err)
	}

	for i := range s.frameSize {
		out[i] += real(timeFrame[i]) * s.coeffs[i]
	}

	return nil
}

func medianWindow(values []float64, center, radius int, scratch []float64) float64 {
	lo := max(center-radius, 0)
	hi := min(center+radius, len(values)-1)

	work := append(scratch[:0], values[lo:hi+1]...)
	sort.Float64s(work)

	m := len(work)
	if m%2 == 1 {
		return work[m/2]
	}

	return 0.5 * (work[m/2-1] + work[m/2])
}

func fitSignal(in []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, in)
	return out
}

func isPowerOfTwoSpectrum(v int) bool {
	return v > 0 && v&(v-1) == 0
}
