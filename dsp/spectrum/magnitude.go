package spectrum

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-voicefx/dsp/core"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking, so
// per-frame magnitude extraction does not allocate inside the STFT loop.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)

	need := 2 * n
	buf.data = core.EnsureLen(buf.data, need)

	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitudes fills dst with |bins[i]| for the leading len(dst) bins.
func Magnitudes(dst []float64, bins []complex128) error {
	if len(dst) > len(bins) {
		return fmt.Errorf("spectrum: %d magnitudes requested from %d bins", len(dst), len(bins))
	}

	n := len(dst)
	re, im, buf := getScratch(n)
	defer putScratch(buf)

	for i := range n {
		re[i] = real(bins[i])
		im[i] = imag(bins[i])
	}

	vecmath.Magnitude(dst, re, im)

	return nil
}
