package preset

// num abbreviates step parameter literals in the catalogue.
type num = map[string]float64

// BuiltinChains returns the stock preset catalogue as data. Each call
// returns fresh values, so callers may modify them freely before
// registering.
//
//nolint:funlen
func BuiltinChains() []Chain {
	return []Chain{
		{Name: "haunted", Steps: []Step{
			{Effect: "reverb", Num: num{"amount": 0.9}},
			{Effect: "echo", Num: num{"delay": 0.3, "decay": 0.8}},
		}},
		{Name: "cyborg", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": -4}},
			{Effect: "time_stretch", Num: num{"rate": 0.8}},
		}},
		{Name: "cylon", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": -6}},
			{Effect: "time_stretch", Num: num{"rate": 0.8}},
			{Effect: "ring_mod", Num: num{"carrier": 30}},
		}},
		{Name: "mystical", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": 3}},
			{Effect: "chorus", Num: num{"depth": 0.02, "delay": 0.003, "rate": 1.2}},
			{Effect: "delay", Num: num{"time": 0.05, "feedback": 0.3}},
		}},
		{Name: "girl_voice", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": 12}},
			{Effect: "time_stretch", Num: num{"rate": 1.2}},
			{Effect: "fade_edges", Num: num{"time": 0.03}},
		}},
		{Name: "child", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": 7}},
		}},
		{Name: "male", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": -3}},
		}},
		{Name: "demon", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": -12}},
		}},
		{Name: "chipmunk", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": 15}},
		}},
		{Name: "reversed", Steps: []Step{
			{Effect: "reverse"},
		}},
		{Name: "telephone", Steps: []Step{
			{Effect: "bandpass", Num: num{"low": 300, "high": 3400}},
		}},
		{Name: "underwater", Steps: []Step{
			{Effect: "bandpass", Num: num{"low": 300, "high": 600}},
		}},
		{Name: "radio", Steps: []Step{
			{Effect: "bandpass", Num: num{"low": 300, "high": 3000}},
			{Effect: "noise", Num: num{"std": 0.01}},
		}},
		{Name: "megaphone", Steps: []Step{
			{Effect: "bandpass", Num: num{"low": 500, "high": 5000}},
			{Effect: "distortion", Num: num{"gain": 5}},
		}},
		{Name: "whisper", Steps: []Step{
			{Effect: "gain", Num: num{"factor": 0.2}},
			{Effect: "noise", Num: num{"std": 0.02}},
		}},
		{Name: "distorted", Steps: []Step{
			{Effect: "distortion", Num: num{"gain": 10}},
		}},
		{Name: "slow_motion", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": -5}},
			{Effect: "time_stretch", Num: num{"rate": 0.5}},
		}},
		{Name: "slow_down", Steps: []Step{
			{Effect: "time_stretch", Num: num{"rate": 0.5}},
		}},
		{Name: "monster", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": -9}},
			{Effect: "distortion", Num: num{"gain": 10}},
		}},
		{Name: "deep", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": -6}},
			{Effect: "distortion", Num: num{"gain": 2}},
		}},
		{Name: "space", Steps: []Step{
			{Effect: "reverb", Num: num{"amount": 0.9}},
			{Effect: "echo", Num: num{"delay": 0.5, "decay": 0.6}},
		}},
		{Name: "tremolo", Steps: []Step{
			{Effect: "tremolo", Num: num{"rate": 5}},
		}},
		{Name: "flanger", Steps: []Step{
			{Effect: "flanger", Num: num{"max_delay": 0.003, "rate": 0.25, "mix": 0.5}},
		}},
		{Name: "stutter", Steps: []Step{
			{Effect: "stutter"},
		}},
		{Name: "broken_robot", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": -4}},
			{Effect: "distortion", Num: num{"gain": 1.5}},
			{Effect: "time_stretch", Num: num{"rate": 0.8}},
		}},
		{Name: "alien", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": 12}},
			{Effect: "time_stretch", Num: num{"rate": 0.7}},
		}},
		{Name: "robot_vocoder", Steps: []Step{
			{Effect: "harmonic"},
			{Effect: "pitch_shift", Num: num{"semitones": -3}},
		}},
		{Name: "darth_vader", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": -7}},
			{Effect: "reverb", Num: num{"amount": 0.7}},
		}},
		{Name: "ghostly_whisper", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": -5}},
			{Effect: "reverb", Num: num{"amount": 0.95}},
		}},
		{Name: "evil_witch", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": -3}},
			{Effect: "echo", Num: num{"delay": 0.3, "decay": 0.6}},
		}},
		{Name: "digital_glitch", Steps: []Step{
			{Effect: "noise", Num: num{"std": 0.05}},
		}},
		{Name: "cyberpunk", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": 4}},
			{Effect: "distortion", Num: num{"gain": 1.5}},
			{Effect: "echo", Num: num{"delay": 0.4, "decay": 0.5}},
		}},
		{Name: "mad_scientist", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": 5}},
			{Effect: "distortion", Num: num{"gain": 1.3}},
			{Effect: "echo", Num: num{"delay": 0.5, "decay": 0.6}},
		}},
		{Name: "cybernetic", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": 3}},
			{Effect: "distortion", Num: num{"gain": 1.4}},
			{Effect: "ring_mod", Num: num{"carrier": 20}},
		}},
		{Name: "galactic", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": 3}},
			{Effect: "echo", Num: num{"delay": 0.5, "decay": 0.5}},
			{Effect: "reverb", Num: num{"amount": 0.8}},
		}},
		{Name: "celestial", Steps: []Step{
			{Effect: "chorus", Num: num{"depth": 0.5}},
			{Effect: "reverb", Num: num{"amount": 0.6}},
		}},
		{Name: "cosmic", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": 5}},
			{Effect: "echo", Num: num{"delay": 0.3, "decay": 0.5}},
			{Effect: "reverb", Num: num{"amount": 0.8}},
		}},
		{Name: "enchanted", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": 4}},
			{Effect: "chorus", Num: num{"depth": 0.03, "delay": 0.004, "rate": 1.3}},
			{Effect: "reverb", Num: num{"amount": 0.7}},
		}},
		{Name: "transcendent", Steps: []Step{
			{Effect: "pitch_shift", Num: num{"semitones": 6}},
			{Effect: "reverse"},
			{Effect: "delay", Num: num{"time": 0.1, "feedback": 0.5}},
		}},
		{Name: "tunnel", Steps: []Step{
			{Effect: "reverb", Num: num{"amount": 0.95}},
		}},
		{Name: "echo", Steps: []Step{
			{Effect: "echo", Num: num{"delay": 0.5, "decay": 0.5}},
		}},
		{Name: "strong_echo", Steps: []Step{
			{Effect: "echo", Num: num{"delay": 0.7, "decay": 0.7}},
		}},
	}
}

// RegisterBuiltins registers the stock catalogue into r.
func RegisterBuiltins(r *Registry) error {
	for _, chain := range BuiltinChains() {
		if err := r.Register(chain); err != nil {
			return err
		}
	}

	return nil
}
