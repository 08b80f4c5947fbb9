package effects

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
	"github.com/cwbudde/algo-voicefx/internal/testutil"
)

func TestNewGainDefaultsToIdentity(t *testing.T) {
	g, err := NewGain()
	if err != nil {
		t.Fatalf("NewGain() error = %v", err)
	}

	if g.Factor() != defaultGainFactor {
		t.Fatalf("Factor() = %v, want %v", g.Factor(), defaultGainFactor)
	}

	in := buffer.FromSlice(testutil.Sine(440, 8000, 0.5, 64), 8000)
	out, err := g.Apply(in)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, out.Data, in.Data, 0)
}

func TestNewGainRejectsNegativeFactor(t *testing.T) {
	if _, err := NewGain(WithGainFactor(-0.5)); !errors.Is(err, ErrConfig) {
		t.Fatalf("NewGain() error = %v, want ErrConfig", err)
	}
}

func TestGainScalesWithoutClipping(t *testing.T) {
	const sampleRate = 8000

	g, err := NewGain(WithGainFactor(3))
	if err != nil {
		t.Fatalf("NewGain() error = %v", err)
	}

	out, err := g.Apply(buffer.FromSlice([]float64{0.5, -0.5, 1}, sampleRate))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	// No clamp: values run past full scale, unlike Distortion.
	testutil.RequireSliceNearlyEqual(t, out.Data, []float64{1.5, -1.5, 3}, 0)
}
