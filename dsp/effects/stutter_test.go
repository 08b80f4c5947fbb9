package effects

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
	"github.com/cwbudde/algo-voicefx/internal/testutil"
)

func TestNewStutterDefaults(t *testing.T) {
	s, err := NewStutter()
	if err != nil {
		t.Fatalf("NewStutter() error = %v", err)
	}

	if s.Fraction() != defaultStutterFraction {
		t.Fatalf("Fraction() = %v, want %v", s.Fraction(), defaultStutterFraction)
	}
}

func TestNewStutterRejectsInvalidFraction(t *testing.T) {
	for _, fraction := range []float64{0, -0.1} {
		if _, err := NewStutter(WithStutterFraction(fraction)); !errors.Is(err, ErrConfig) {
			t.Fatalf("NewStutter(fraction=%v) error = %v, want ErrConfig", fraction, err)
		}
	}
}

func TestStutterOutputLength(t *testing.T) {
	// 100 samples at 10 Hz with 1 s segments: ten 10-sample segments, each
	// followed by its first 5 samples, totals 150.
	const sampleRate = 10

	s, err := NewStutter(WithStutterFraction(1))
	if err != nil {
		t.Fatalf("NewStutter() error = %v", err)
	}

	out, err := s.Apply(buffer.FromSlice(testutil.Sine(1, sampleRate, 0.5, 100), sampleRate))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if out.Len() != 150 {
		t.Fatalf("output length = %d, want 150", out.Len())
	}
	if out.SampleRate != sampleRate {
		t.Fatalf("output sample rate = %d, want %d", out.SampleRate, sampleRate)
	}
}

func TestStutterSegmentLayoutExact(t *testing.T) {
	// seg = 4, half = 2 over 10 samples: two full segments plus a 2 sample
	// tail whose repeat is clamped to the samples it has.
	const sampleRate = 10

	s, err := NewStutter(WithStutterFraction(0.4))
	if err != nil {
		t.Fatalf("NewStutter() error = %v", err)
	}

	in := buffer.FromSlice([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, sampleRate)
	out, err := s.Apply(in)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	want := []float64{0, 1, 2, 3, 0, 1, 4, 5, 6, 7, 4, 5, 8, 9, 8, 9}
	testutil.RequireSliceNearlyEqual(t, out.Data, want, 0)
}

func TestStutterSubSamplePeriodReturnsCopy(t *testing.T) {
	const sampleRate = 4 // 0.1 s rounds to 0 samples at this rate

	s, err := NewStutter(WithStutterFraction(0.1))
	if err != nil {
		t.Fatalf("NewStutter() error = %v", err)
	}

	in := buffer.FromSlice([]float64{1, 2, 3}, sampleRate)
	out, err := s.Apply(in)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, out.Data, in.Data, 0)
}
