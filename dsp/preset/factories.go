package preset

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-voicefx/dsp/effects"
)

// Noise steps without an explicit seed parameter use the registry default,
// which matches the effect's own default.
const defaultNoiseSeed = 1

// registerBuiltinFactories fills the factory table for the stock effect
// identifiers. Factories only pass options for keys present in the step, so
// absent parameters keep the effect defaults.
//
//nolint:funlen
func (r *Registry) registerBuiltinFactories() {
	r.factories["delay"] = func(step Step) (effects.Effect, error) {
		var opts []effects.DelayOption
		if v, ok := step.Num["time"]; ok {
			opts = append(opts, effects.WithDelayTime(v))
		}
		if v, ok := step.Num["feedback"]; ok {
			opts = append(opts, effects.WithDelayFeedback(v))
		}

		return effects.NewDelay(opts...)
	}

	r.factories["echo"] = func(step Step) (effects.Effect, error) {
		var opts []effects.EchoOption
		if v, ok := step.Num["delay"]; ok {
			opts = append(opts, effects.WithEchoDelay(v))
		}
		if v, ok := step.Num["decay"]; ok {
			opts = append(opts, effects.WithEchoDecay(v))
		}

		return effects.NewEcho(opts...)
	}

	r.factories["chorus"] = func(step Step) (effects.Effect, error) {
		var opts []effects.ChorusOption
		if v, ok := step.Num["depth"]; ok {
			opts = append(opts, effects.WithChorusDepth(v))
		}
		if v, ok := step.Num["delay"]; ok {
			opts = append(opts, effects.WithChorusDelay(v))
		}
		if v, ok := step.Num["rate"]; ok {
			opts = append(opts, effects.WithChorusRate(v))
		}

		return effects.NewChorus(opts...)
	}

	r.factories["flanger"] = func(step Step) (effects.Effect, error) {
		var opts []effects.FlangerOption
		if v, ok := step.Num["max_delay"]; ok {
			opts = append(opts, effects.WithFlangerMaxDelay(v))
		}
		if v, ok := step.Num["rate"]; ok {
			opts = append(opts, effects.WithFlangerRate(v))
		}
		if v, ok := step.Num["mix"]; ok {
			opts = append(opts, effects.WithFlangerMix(v))
		}

		return effects.NewFlanger(opts...)
	}

	r.factories["tremolo"] = func(step Step) (effects.Effect, error) {
		var opts []effects.TremoloOption
		if v, ok := step.Num["rate"]; ok {
			opts = append(opts, effects.WithTremoloRate(v))
		}

		return effects.NewTremolo(opts...)
	}

	r.factories["ring_mod"] = func(step Step) (effects.Effect, error) {
		var opts []effects.RingModOption
		if v, ok := step.Num["carrier"]; ok {
			opts = append(opts, effects.WithRingModFrequency(v))
		}

		return effects.NewRingMod(opts...)
	}

	r.factories["distortion"] = func(step Step) (effects.Effect, error) {
		var opts []effects.DistortionOption
		if v, ok := step.Num["gain"]; ok {
			opts = append(opts, effects.WithDistortionGain(v))
		}

		return effects.NewDistortion(opts...)
	}

	r.factories["noise"] = func(step Step) (effects.Effect, error) {
		opts := []effects.NoiseOption{effects.WithNoiseSeed(r.noiseSeed)}
		if v, ok := step.Num["scale"]; ok {
			opts = append(opts, effects.WithNoiseScale(v))
		}
		if v, ok := step.Num["std"]; ok {
			opts = append(opts, effects.WithNoiseStd(v))
		}
		if v, ok := step.Num["seed"]; ok {
			if v < 0 || v != math.Trunc(v) {
				return nil, fmt.Errorf("%w: noise seed must be a non-negative integer, got %v",
					effects.ErrConfig, v)
			}

			opts = append(opts, effects.WithNoiseSeed(uint64(v)))
		}

		return effects.NewNoise(opts...)
	}

	r.factories["reverse"] = func(Step) (effects.Effect, error) {
		return effects.NewReverse(), nil
	}

	r.factories["stutter"] = func(step Step) (effects.Effect, error) {
		var opts []effects.StutterOption
		if v, ok := step.Num["fraction"]; ok {
			opts = append(opts, effects.WithStutterFraction(v))
		}

		return effects.NewStutter(opts...)
	}

	r.factories["bandpass"] = func(step Step) (effects.Effect, error) {
		var opts []effects.BandpassOption
		if v, ok := step.Num["low"]; ok {
			opts = append(opts, effects.WithBandpassLow(v))
		}
		if v, ok := step.Num["high"]; ok {
			opts = append(opts, effects.WithBandpassHigh(v))
		}
		if v, ok := step.Num["order"]; ok {
			opts = append(opts, effects.WithBandpassOrder(int(math.Round(v))))
		}

		return effects.NewBandpass(r.provider, opts...)
	}

	r.factories["fade_edges"] = func(step Step) (effects.Effect, error) {
		var opts []effects.FadeEdgesOption
		if v, ok := step.Num["time"]; ok {
			opts = append(opts, effects.WithFadeTime(v))
		}

		return effects.NewFadeEdges(opts...)
	}

	r.factories["reverb"] = func(step Step) (effects.Effect, error) {
		var opts []effects.ReverbOption
		if v, ok := step.Num["amount"]; ok {
			opts = append(opts, effects.WithReverbAmount(v))
		}

		return effects.NewReverb(opts...)
	}

	r.factories["gain"] = func(step Step) (effects.Effect, error) {
		var opts []effects.GainOption
		if v, ok := step.Num["factor"]; ok {
			opts = append(opts, effects.WithGainFactor(v))
		}

		return effects.NewGain(opts...)
	}

	r.factories["pitch_shift"] = func(step Step) (effects.Effect, error) {
		var opts []effects.PitchShiftOption
		if v, ok := step.Num["semitones"]; ok {
			opts = append(opts, effects.WithPitchShiftSemitones(v))
		}

		return effects.NewPitchShift(r.provider, opts...)
	}

	r.factories["time_stretch"] = func(step Step) (effects.Effect, error) {
		var opts []effects.TimeStretchOption
		if v, ok := step.Num["rate"]; ok {
			opts = append(opts, effects.WithTimeStretchRate(v))
		}

		return effects.NewTimeStretch(r.provider, opts...)
	}

	r.factories["harmonic"] = func(Step) (effects.Effect, error) {
		return effects.NewHarmonic(r.provider)
	}
}
