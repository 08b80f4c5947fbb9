package effects

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
)

type stubStretcher struct {
	gotRate float64
	err     error
}

func (s *stubStretcher) TimeStretch(samples []float64, rate float64) ([]float64, error) {
	s.gotRate = rate
	if s.err != nil {
		return nil, s.err
	}
	// Halve or double crudely so length changes are observable.
	outLen := int(float64(len(samples)) / rate)
	return make([]float64, outLen), nil
}

func TestNewTimeStretchRejectsNilStretcher(t *testing.T) {
	if _, err := NewTimeStretch(nil); !errors.Is(err, ErrConfig) {
		t.Fatalf("NewTimeStretch(nil) error = %v, want ErrConfig", err)
	}
}

func TestNewTimeStretchRejectsNonPositiveRate(t *testing.T) {
	for _, rate := range []float64{0, -0.5} {
		if _, err := NewTimeStretch(&stubStretcher{}, WithTimeStretchRate(rate)); !errors.Is(err, ErrConfig) {
			t.Fatalf("NewTimeStretch(rate=%v) error = %v, want ErrConfig", rate, err)
		}
	}
}

func TestTimeStretchForwardsRateAndResizesBuffer(t *testing.T) {
	stretcher := &stubStretcher{}

	ts, err := NewTimeStretch(stretcher, WithTimeStretchRate(0.5))
	if err != nil {
		t.Fatalf("NewTimeStretch() error = %v", err)
	}
	if ts.Rate() != 0.5 {
		t.Fatalf("Rate() = %v, want 0.5", ts.Rate())
	}

	out, err := ts.Apply(buffer.New(100, 8000))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if stretcher.gotRate != 0.5 {
		t.Fatalf("stretcher got rate %v, want 0.5", stretcher.gotRate)
	}
	if out.Len() != 200 {
		t.Fatalf("output length = %d, want 200 (slowing down lengthens)", out.Len())
	}
	if out.SampleRate != 8000 {
		t.Fatalf("output sample rate = %d, want 8000", out.SampleRate)
	}
}

func TestTimeStretchPropagatesStretcherError(t *testing.T) {
	stretchErr := errors.New("stretch failed")

	ts, err := NewTimeStretch(&stubStretcher{err: stretchErr})
	if err != nil {
		t.Fatalf("NewTimeStretch() error = %v", err)
	}

	if _, err := ts.Apply(buffer.New(8, 8000)); !errors.Is(err, stretchErr) {
		t.Fatalf("Apply() error = %v, want wrapped stretcher error", err)
	}
}
