package pitch

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-voicefx/dsp/spectrum"
	"github.com/cwbudde/algo-voicefx/internal/testutil"
)

func TestNewShifterRejectsNilStretcher(t *testing.T) {
	if _, err := NewShifter(WithShifterStretcher(nil)); err == nil {
		t.Error("NewShifter(WithShifterStretcher(nil)) error = nil, want error")
	}
}

func TestShifterRejectsArguments(t *testing.T) {
	s, err := NewShifter()
	if err != nil {
		t.Fatalf("NewShifter() error = %v", err)
	}

	in := []float64{1, 2, 3}

	cases := []struct {
		name       string
		sampleRate int
		semitones  float64
	}{
		{"zero rate", 0, 5},
		{"negative rate", -16000, 5},
		{"nan semitones", 16000, math.NaN()},
		{"inf semitones", 16000, math.Inf(1)},
		{"too far up", 16000, 25},
		{"too far down", 16000, -25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.PitchShift(in, tc.sampleRate, tc.semitones); err == nil {
				t.Errorf("PitchShift(rate=%d, semitones=%v) error = nil, want error",
					tc.sampleRate, tc.semitones)
			}
		})
	}
}

func TestShifterEmptyInput(t *testing.T) {
	s, err := NewShifter()
	if err != nil {
		t.Fatalf("NewShifter() error = %v", err)
	}

	out, err := s.PitchShift(nil, 16000, 5)
	if err != nil {
		t.Fatalf("PitchShift(nil) error = %v", err)
	}

	if out != nil {
		t.Errorf("PitchShift(nil) = %v, want nil", out)
	}
}

func TestShifterZeroSemitonesCopies(t *testing.T) {
	s, err := NewShifter()
	if err != nil {
		t.Fatalf("NewShifter() error = %v", err)
	}

	in := testutil.Sine(440, 16000, 0.8, 2048)

	out, err := s.PitchShift(in, 16000, 0)
	if err != nil {
		t.Fatalf("PitchShift() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, out, in, 0)

	out[0] = 42
	if in[0] == 42 {
		t.Error("PitchShift(0 semitones) aliases its input")
	}
}

func TestShifterPreservesLength(t *testing.T) {
	s, err := NewShifter()
	if err != nil {
		t.Fatalf("NewShifter() error = %v", err)
	}

	in := testutil.Sine(440, 16000, 0.8, 5000)

	for _, semitones := range []float64{-12, -3, 7, 12} {
		out, err := s.PitchShift(in, 16000, semitones)
		if err != nil {
			t.Fatalf("PitchShift(%v) error = %v", semitones, err)
		}

		if len(out) != len(in) {
			t.Errorf("len(PitchShift(%v)) = %d, want %d", semitones, len(out), len(in))
		}
	}
}

func TestShifterTransposesTone(t *testing.T) {
	wsola, err := NewWSOLA(
		WithWSOLASequence(1024),
		WithWSOLAOverlap(256),
		WithWSOLASearch(256),
	)
	if err != nil {
		t.Fatalf("NewWSOLA() error = %v", err)
	}

	backends := []struct {
		name string
		opts []ShifterOption
	}{
		{"vocoder", nil},
		{"wsola", []ShifterOption{WithShifterStretcher(wsola)}},
	}

	cases := []struct {
		name      string
		semitones float64
		wantFreq  float64
	}{
		{"octave up", 12, 880},
		{"octave down", -12, 220},
	}

	sampleRate := 16000
	in := testutil.Sine(440, sampleRate, 0.8, 16384)

	for _, backend := range backends {
		s, err := NewShifter(backend.opts...)
		if err != nil {
			t.Fatalf("NewShifter(%s) error = %v", backend.name, err)
		}

		for _, tc := range cases {
			t.Run(backend.name+" "+tc.name, func(t *testing.T) {
				out, err := s.PitchShift(in, sampleRate, tc.semitones)
				if err != nil {
					t.Fatalf("PitchShift() error = %v", err)
				}

				testutil.RequireFinite(t, out)

				mid := out[len(out)/4 : 3*len(out)/4]

				shifted, err := spectrum.GoertzelPower(mid, tc.wantFreq, sampleRate)
				if err != nil {
					t.Fatalf("GoertzelPower(%v) error = %v", tc.wantFreq, err)
				}

				original, err := spectrum.GoertzelPower(mid, 440, sampleRate)
				if err != nil {
					t.Fatalf("GoertzelPower(440) error = %v", err)
				}

				if shifted <= 10*original {
					t.Errorf("power at %v Hz = %v, at 440 Hz = %v, want shifted tone dominant",
						tc.wantFreq, shifted, original)
				}
			})
		}
	}
}
