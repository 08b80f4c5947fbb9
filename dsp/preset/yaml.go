package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type chainFile struct {
	Presets []Chain `yaml:"presets"`
}

// LoadChains reads preset chains from a YAML file of the form:
//
//	presets:
//	  - name: my_voice
//	    steps:
//	      - effect: pitch_shift
//	        params: {semitones: 3}
//	      - effect: reverb
//	        params: {amount: 0.8}
//
// Effect identifiers resolve against the registry at registration time, not
// here; this only rejects structurally broken files.
func LoadChains(path string) ([]Chain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: reading chains: %w", err)
	}

	var file chainFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("preset: parsing chains %s: %w", path, err)
	}

	for _, chain := range file.Presets {
		if chain.Name == "" {
			return nil, fmt.Errorf("preset: chains %s: chain with empty name", path)
		}

		for i, step := range chain.Steps {
			if step.Effect == "" {
				return nil, fmt.Errorf("preset: chains %s: chain %q step %d has empty effect",
					path, chain.Name, i+1)
			}
		}
	}

	return file.Presets, nil
}
