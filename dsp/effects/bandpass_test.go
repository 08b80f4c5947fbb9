package effects

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
	"github.com/cwbudde/algo-voicefx/internal/testutil"
)

type stubFilter struct {
	scale float64
}

func (f stubFilter) Apply(samples []float64) ([]float64, error) {
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = v * f.scale
	}
	return out, nil
}

type stubDesigner struct {
	gotLow   float64
	gotHigh  float64
	gotRate  int
	gotOrder int
	err      error
}

func (d *stubDesigner) DesignBandpass(low, high float64, sampleRate, order int) (Filter, error) {
	d.gotLow, d.gotHigh, d.gotRate, d.gotOrder = low, high, sampleRate, order
	if d.err != nil {
		return nil, d.err
	}
	return stubFilter{scale: 0.5}, nil
}

func TestNewBandpassDefaults(t *testing.T) {
	b, err := NewBandpass(&stubDesigner{})
	if err != nil {
		t.Fatalf("NewBandpass() error = %v", err)
	}

	if b.Low() != defaultBandpassLow {
		t.Fatalf("Low() = %v, want %v", b.Low(), defaultBandpassLow)
	}
	if b.High() != defaultBandpassHigh {
		t.Fatalf("High() = %v, want %v", b.High(), defaultBandpassHigh)
	}
	if b.Order() != defaultBandpassOrder {
		t.Fatalf("Order() = %v, want %v", b.Order(), defaultBandpassOrder)
	}
}

func TestNewBandpassRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		opts []BandpassOption
	}{
		{"zero low cut", []BandpassOption{WithBandpassLow(0)}},
		{"zero high cut", []BandpassOption{WithBandpassHigh(0)}},
		{"order below one", []BandpassOption{WithBandpassOrder(0)}},
		{"crossed corners", []BandpassOption{WithBandpassLow(5000), WithBandpassHigh(300)}},
		{"equal corners", []BandpassOption{WithBandpassLow(1000), WithBandpassHigh(1000)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBandpass(&stubDesigner{}, tt.opts...); !errors.Is(err, ErrConfig) {
				t.Fatalf("NewBandpass() error = %v, want ErrConfig", err)
			}
		})
	}
}

func TestNewBandpassRejectsNilDesigner(t *testing.T) {
	if _, err := NewBandpass(nil); !errors.Is(err, ErrConfig) {
		t.Fatalf("NewBandpass(nil) error = %v, want ErrConfig", err)
	}
}

func TestBandpassDesignsAtBufferRate(t *testing.T) {
	designer := &stubDesigner{}

	b, err := NewBandpass(designer, WithBandpassLow(300), WithBandpassHigh(3000), WithBandpassOrder(6))
	if err != nil {
		t.Fatalf("NewBandpass() error = %v", err)
	}

	in := buffer.FromSlice(testutil.DC(1, 8), 44100)
	out, err := b.Apply(in)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if designer.gotLow != 300 || designer.gotHigh != 3000 {
		t.Fatalf("designer got corners (%v, %v), want (300, 3000)", designer.gotLow, designer.gotHigh)
	}
	if designer.gotRate != 44100 {
		t.Fatalf("designer got sample rate %d, want 44100", designer.gotRate)
	}
	if designer.gotOrder != 6 {
		t.Fatalf("designer got order %d, want 6", designer.gotOrder)
	}
	testutil.RequireSliceNearlyEqual(t, out.Data, testutil.DC(0.5, 8), 0)
}

func TestBandpassPropagatesDesignerError(t *testing.T) {
	designErr := errors.New("corner at nyquist")

	b, err := NewBandpass(&stubDesigner{err: designErr})
	if err != nil {
		t.Fatalf("NewBandpass() error = %v", err)
	}

	if _, err := b.Apply(buffer.New(8, 8000)); !errors.Is(err, designErr) {
		t.Fatalf("Apply() error = %v, want wrapped design error", err)
	}
}
