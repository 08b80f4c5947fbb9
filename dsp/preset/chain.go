package preset

// Step is one effect application inside a chain: an effect identifier from
// the factory table plus the numeric parameters it overrides. Absent keys
// keep the effect's defaults.
type Step struct {
	Effect string             `yaml:"effect"`
	Num    map[string]float64 `yaml:"params,omitempty"`
}

// Chain is a named, ordered list of effect steps. Chains are plain data:
// the built-in catalogue is Go literals, external ones load from YAML.
type Chain struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}
