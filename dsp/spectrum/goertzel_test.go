package spectrum

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-voicefx/internal/testutil"
)

func TestGoertzelMatchesDFT(t *testing.T) {
	sampleRate := 48000
	freq := 1000.0
	length := 1024
	sig := testutil.Sine(freq, sampleRate, 1.0, length)

	g, err := NewGoertzel(freq, sampleRate)
	if err != nil {
		t.Fatalf("NewGoertzel() error = %v", err)
	}

	g.ProcessBlock(sig)

	// Compare with a direct DFT evaluation at the same frequency.
	var dft complex128

	for n, x := range sig {
		angle := -2 * math.Pi * freq / float64(sampleRate) * float64(n)
		dft += complex(x, 0) * cmplx.Exp(complex(0, angle))
	}

	wantPower := real(dft)*real(dft) + imag(dft)*imag(dft)
	if got := g.Power(); math.Abs(got-wantPower) > 1e-7*wantPower {
		t.Errorf("Power() = %v, want %v", got, wantPower)
	}

	wantMag := cmplx.Abs(dft)
	if got := g.Magnitude(); math.Abs(got-wantMag) > 1e-7*wantMag {
		t.Errorf("Magnitude() = %v, want %v", got, wantMag)
	}
}

func TestGoertzelReset(t *testing.T) {
	g, err := NewGoertzel(1000, 48000)
	if err != nil {
		t.Fatalf("NewGoertzel() error = %v", err)
	}

	g.ProcessBlock([]float64{1, 0.5, -0.25})

	if g.Power() == 0 {
		t.Fatal("Power() = 0 after processing, want non-zero")
	}

	g.Reset()

	if got := g.Power(); got != 0 {
		t.Errorf("Power() after Reset = %v, want 0", got)
	}
}

func TestGoertzelRejectsConfig(t *testing.T) {
	cases := []struct {
		name       string
		frequency  float64
		sampleRate int
	}{
		{"zero rate", 1000, 0},
		{"negative rate", 1000, -48000},
		{"negative frequency", -1, 48000},
		{"above nyquist", 24001, 48000},
		{"nan frequency", math.NaN(), 48000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGoertzel(tc.frequency, tc.sampleRate); err == nil {
				t.Errorf("NewGoertzel(%v, %d) error = nil, want error", tc.frequency, tc.sampleRate)
			}
		})
	}
}

func TestGoertzelPowerDetectsTone(t *testing.T) {
	sampleRate := 48000
	sig := testutil.Sine(1000, sampleRate, 1.0, 4800)

	atTone, err := GoertzelPower(sig, 1000, sampleRate)
	if err != nil {
		t.Fatalf("GoertzelPower(1000) error = %v", err)
	}

	offTone, err := GoertzelPower(sig, 3000, sampleRate)
	if err != nil {
		t.Fatalf("GoertzelPower(3000) error = %v", err)
	}

	if atTone <= 1e6*offTone {
		t.Errorf("power at tone = %v, off tone = %v, want at least 1e6x separation", atTone, offTone)
	}
}

func TestGoertzelPowerRejectsBadFrequency(t *testing.T) {
	if _, err := GoertzelPower([]float64{1, 2, 3}, 30000, 48000); err == nil {
		t.Error("GoertzelPower() above nyquist error = nil, want error")
	}
}
