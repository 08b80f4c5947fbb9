package effects

import (
	"testing"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
	"github.com/cwbudde/algo-voicefx/internal/testutil"
)

func TestReverseReversesSamples(t *testing.T) {
	const sampleRate = 10

	out, err := NewReverse().Apply(buffer.FromSlice([]float64{1, 2, 3, 4}, sampleRate))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, out.Data, []float64{4, 3, 2, 1}, 0)
}

func TestReverseTwiceRestoresInput(t *testing.T) {
	const sampleRate = 8000

	r := NewReverse()
	in := buffer.FromSlice(testutil.Sine(440, sampleRate, 0.5, 777), sampleRate)

	once, err := r.Apply(in)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	twice, err := r.Apply(once)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, twice.Data, in.Data, 0)
}
