package effects

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
)

// Effect is the uniform processing contract shared by every primitive and
// collaborator-backed step: one buffer in, a new buffer out. Implementations
// never mutate the input buffer and are safe to reuse across concurrent
// chains.
type Effect interface {
	Apply(in buffer.Buffer) (buffer.Buffer, error)
}

// ErrConfig marks invalid static parameters rejected at construction time.
var ErrConfig = errors.New("effects: invalid configuration")

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
