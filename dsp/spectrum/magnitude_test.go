package spectrum

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestMagnitudesMatchesCmplxAbs(t *testing.T) {
	bins := []complex128{
		complex(3, 4),
		complex(-1, 0),
		complex(0, -2.5),
		complex(0.125, 0.125),
		complex(0, 0),
	}

	got := make([]float64, len(bins))
	if err := Magnitudes(got, bins); err != nil {
		t.Fatalf("Magnitudes() error = %v", err)
	}

	for i, bin := range bins {
		want := cmplx.Abs(bin)
		if math.Abs(got[i]-want) > 1e-12 {
			t.Errorf("Magnitudes()[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestMagnitudesLeadingSubset(t *testing.T) {
	bins := []complex128{complex(3, 4), complex(6, 8), complex(1, 1)}

	got := make([]float64, 2)
	if err := Magnitudes(got, bins); err != nil {
		t.Fatalf("Magnitudes() error = %v", err)
	}

	if got[0] != 5 || got[1] != 10 {
		t.Errorf("Magnitudes() = %v, want [5 10]", got)
	}
}

func TestMagnitudesRejectsShortInput(t *testing.T) {
	dst := make([]float64, 4)
	if err := Magnitudes(dst, []complex128{complex(1, 0)}); err == nil {
		t.Error("Magnitudes() with short bins error = nil, want error")
	}
}

func TestMagnitudesScratchReuse(t *testing.T) {
	bins := []complex128{complex(3, 4), complex(5, 12)}
	dst := make([]float64, 2)

	for range 3 {
		if err := Magnitudes(dst, bins); err != nil {
			t.Fatalf("Magnitudes() error = %v", err)
		}

		if dst[0] != 5 || dst[1] != 13 {
			t.Fatalf("Magnitudes() = %v, want [5 13]", dst)
		}
	}
}
