package effects

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
	"github.com/cwbudde/algo-voicefx/internal/testutil"
)

func TestNewNoiseDefaults(t *testing.T) {
	n, err := NewNoise()
	if err != nil {
		t.Fatalf("NewNoise() error = %v", err)
	}

	if n.Scale() != defaultNoiseScale {
		t.Fatalf("Scale() = %v, want %v", n.Scale(), defaultNoiseScale)
	}
	if n.Std() != defaultNoiseStd {
		t.Fatalf("Std() = %v, want %v", n.Std(), defaultNoiseStd)
	}
	if n.Seed() != defaultNoiseSeed {
		t.Fatalf("Seed() = %v, want %v", n.Seed(), defaultNoiseSeed)
	}
}

func TestNewNoiseRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		opt  NoiseOption
	}{
		{"negative scale", WithNoiseScale(-1)},
		{"negative std", WithNoiseStd(-0.02)},
		{"NaN std", WithNoiseStd(math.NaN())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewNoise(tt.opt); !errors.Is(err, ErrConfig) {
				t.Fatalf("NewNoise() error = %v, want ErrConfig", err)
			}
		})
	}
}

func TestNoiseReproducibleAcrossApplies(t *testing.T) {
	const sampleRate = 8000

	n, err := NewNoise(WithNoiseSeed(42))
	if err != nil {
		t.Fatalf("NewNoise() error = %v", err)
	}

	in := buffer.FromSlice(testutil.Sine(440, sampleRate, 0.5, 512), sampleRate)

	first, err := n.Apply(in)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	second, err := n.Apply(in)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, second.Data, first.Data, 0)
}

func TestNoiseSeedSelectsSequence(t *testing.T) {
	const sampleRate = 8000

	a, err := NewNoise(WithNoiseSeed(1))
	if err != nil {
		t.Fatalf("NewNoise() error = %v", err)
	}
	b, err := NewNoise(WithNoiseSeed(2))
	if err != nil {
		t.Fatalf("NewNoise() error = %v", err)
	}

	in := buffer.New(256, sampleRate)

	outA, err := a.Apply(in)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	outB, err := b.Apply(in)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	same := true
	for i := range outA.Data {
		if outA.Data[i] != outB.Data[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestNoiseZeroStdIsPureScale(t *testing.T) {
	const sampleRate = 8000

	n, err := NewNoise(WithNoiseStd(0), WithNoiseScale(0.5))
	if err != nil {
		t.Fatalf("NewNoise() error = %v", err)
	}

	in := buffer.FromSlice(testutil.DC(0.8, 64), sampleRate)
	out, err := n.Apply(in)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, out.Data, testutil.DC(0.4, 64), 0)
}

func TestNoiseStatisticsMatchConfiguration(t *testing.T) {
	const (
		sampleRate = 8000
		length     = 20000
		std        = 0.05
	)

	n, err := NewNoise(WithNoiseStd(std), WithNoiseSeed(7))
	if err != nil {
		t.Fatalf("NewNoise() error = %v", err)
	}

	out, err := n.Apply(buffer.New(length, sampleRate))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	mean := 0.0
	for _, v := range out.Data {
		mean += v
	}
	mean /= length

	variance := 0.0
	for _, v := range out.Data {
		variance += (v - mean) * (v - mean)
	}
	variance /= length

	if math.Abs(mean) > 0.002 {
		t.Fatalf("sample mean = %v, want near 0", mean)
	}
	if got := math.Sqrt(variance); math.Abs(got-std) > 0.005 {
		t.Fatalf("sample std = %v, want near %v", got, std)
	}
}
