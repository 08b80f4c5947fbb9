package preset

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
	"github.com/cwbudde/algo-voicefx/internal/testutil"
)

func writeChainsFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "chains.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	return path
}

func TestLoadChainsRoundTrip(t *testing.T) {
	path := writeChainsFile(t, `presets:
  - name: custom_robot
    steps:
      - effect: harmonic
      - effect: pitch_shift
        params: {semitones: -2}
  - name: quieter
    steps:
      - effect: gain
        params: {factor: 0.5}
`)

	chains, err := LoadChains(path)
	if err != nil {
		t.Fatalf("LoadChains() error = %v", err)
	}

	want := []Chain{
		{Name: "custom_robot", Steps: []Step{
			{Effect: "harmonic"},
			{Effect: "pitch_shift", Num: num{"semitones": -2}},
		}},
		{Name: "quieter", Steps: []Step{
			{Effect: "gain", Num: num{"factor": 0.5}},
		}},
	}

	if !reflect.DeepEqual(chains, want) {
		t.Fatalf("LoadChains() = %+v, want %+v", chains, want)
	}

	r := newTestRegistry(t)
	for _, chain := range chains {
		if err := r.Register(chain); err != nil {
			t.Fatalf("Register(%s) error = %v", chain.Name, err)
		}
	}

	out, err := r.Run("quieter", buffer.FromSlice([]float64{1, -0.5}, 16000))
	if err != nil {
		t.Fatalf("Run(quieter) error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, out.Data, []float64{0.5, -0.25}, 0)
}

func TestLoadChainsMissingFile(t *testing.T) {
	if _, err := LoadChains(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadChains() on missing file error = nil, want error")
	}
}

func TestLoadChainsMalformedYAML(t *testing.T) {
	path := writeChainsFile(t, "presets: [whoops\n")

	if _, err := LoadChains(path); err == nil {
		t.Error("LoadChains() on malformed file error = nil, want error")
	}
}

func TestLoadChainsRejectsEmptyName(t *testing.T) {
	path := writeChainsFile(t, `presets:
  - steps:
      - effect: gain
`)

	if _, err := LoadChains(path); err == nil {
		t.Error("LoadChains() with unnamed chain error = nil, want error")
	}
}

func TestLoadChainsRejectsEmptyEffect(t *testing.T) {
	path := writeChainsFile(t, `presets:
  - name: broken
    steps:
      - params: {factor: 2}
`)

	if _, err := LoadChains(path); err == nil {
		t.Error("LoadChains() with empty effect error = nil, want error")
	}
}
