package effects

import (
	"fmt"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
)

const (
	defaultBandpassLow   = 300.0
	defaultBandpassHigh  = 3400.0
	defaultBandpassOrder = 10
)

// BandpassOption mutates bandpass construction parameters.
type BandpassOption func(*bandpassConfig) error

type bandpassConfig struct {
	low   float64
	high  float64
	order int
}

// WithBandpassLow sets the low corner frequency in Hz (> 0).
func WithBandpassLow(hz float64) BandpassOption {
	return func(cfg *bandpassConfig) error {
		if hz <= 0 || !isFinite(hz) {
			return fmt.Errorf("%w: bandpass low cut must be > 0 and finite, got %f", ErrConfig, hz)
		}
		cfg.low = hz
		return nil
	}
}

// WithBandpassHigh sets the high corner frequency in Hz (> 0).
func WithBandpassHigh(hz float64) BandpassOption {
	return func(cfg *bandpassConfig) error {
		if hz <= 0 || !isFinite(hz) {
			return fmt.Errorf("%w: bandpass high cut must be > 0 and finite, got %f", ErrConfig, hz)
		}
		cfg.high = hz
		return nil
	}
}

// WithBandpassOrder sets the filter order (>= 1).
func WithBandpassOrder(order int) BandpassOption {
	return func(cfg *bandpassConfig) error {
		if order < 1 {
			return fmt.Errorf("%w: bandpass order must be >= 1, got %d", ErrConfig, order)
		}
		cfg.order = order
		return nil
	}
}

// Bandpass keeps the [low, high] Hz band and attenuates everything outside
// it. The filter itself comes from the BandpassDesigner collaborator and is
// designed once per Apply against the buffer's sample rate, so one Bandpass
// value serves buffers of any rate. Rate-dependent failures, such as a high
// cut at or beyond Nyquist, surface from the designer at Apply time;
// rate-independent mistakes, such as corner frequencies that cross, are
// rejected at construction.
type Bandpass struct {
	designer BandpassDesigner
	low      float64
	high     float64
	order    int
}

// NewBandpass creates a bandpass effect backed by the given designer.
// Defaults: 300 Hz to 3400 Hz (the classic telephone band), order 10.
func NewBandpass(designer BandpassDesigner, opts ...BandpassOption) (*Bandpass, error) {
	if designer == nil {
		return nil, fmt.Errorf("%w: bandpass designer must not be nil", ErrConfig)
	}

	cfg := bandpassConfig{
		low:   defaultBandpassLow,
		high:  defaultBandpassHigh,
		order: defaultBandpassOrder,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.high <= cfg.low {
		return nil, fmt.Errorf("%w: bandpass high cut (%f Hz) must exceed low cut (%f Hz)",
			ErrConfig, cfg.high, cfg.low)
	}

	return &Bandpass{
		designer: designer,
		low:      cfg.low,
		high:     cfg.high,
		order:    cfg.order,
	}, nil
}

// Low returns the low corner frequency in Hz.
func (b *Bandpass) Low() float64 { return b.low }

// High returns the high corner frequency in Hz.
func (b *Bandpass) High() float64 { return b.high }

// Order returns the filter order.
func (b *Bandpass) Order() int { return b.order }

// Apply designs the filter for the buffer's sample rate and runs it.
func (b *Bandpass) Apply(in buffer.Buffer) (buffer.Buffer, error) {
	if err := in.Validate(); err != nil {
		return buffer.Buffer{}, err
	}

	flt, err := b.designer.DesignBandpass(b.low, b.high, in.SampleRate, b.order)
	if err != nil {
		return buffer.Buffer{}, fmt.Errorf("effects: bandpass design: %w", err)
	}

	data, err := flt.Apply(in.Data)
	if err != nil {
		return buffer.Buffer{}, fmt.Errorf("effects: bandpass filter: %w", err)
	}

	return buffer.Buffer{Data: data, SampleRate: in.SampleRate}, nil
}
