package biquad

import (
	"math"
	"testing"
)

// Butterworth lowpass at fs/4, a stable reference section.
var testCoeffs = Coefficients{
	B0: 0.2928932188134524,
	B1: 0.5857864376269048,
	B2: 0.2928932188134524,
	A1: 0,
	A2: 0.1715728752538099,
}

func testInput(n int) []float64 {
	in := make([]float64, n)
	for i := range in {
		in[i] = math.Sin(2*math.Pi*0.05*float64(i)) + 0.25*math.Sin(2*math.Pi*0.4*float64(i))
	}
	return in
}

func TestSectionIdentity(t *testing.T) {
	s := NewSection(Coefficients{B0: 1})
	in := testInput(64)

	for i, x := range in {
		if got := s.ProcessSample(x); got != x {
			t.Fatalf("sample %d: got %v, want %v", i, got, x)
		}
	}
}

func TestSectionMatchesDirectForm(t *testing.T) {
	s := NewSection(testCoeffs)
	in := testInput(128)

	var x1, x2, y1, y2 float64
	for i, x := range in {
		want := testCoeffs.B0*x + testCoeffs.B1*x1 + testCoeffs.B2*x2 -
			testCoeffs.A1*y1 - testCoeffs.A2*y2
		x2, x1 = x1, x
		y2, y1 = y1, want

		got := s.ProcessSample(x)
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("sample %d: got=%g want=%g diff=%g", i, got, want, math.Abs(got-want))
		}
	}
}

func TestSectionBlockMatchesSample(t *testing.T) {
	sampleWise := NewSection(testCoeffs)
	blockWise := NewSection(testCoeffs)

	in := testInput(100)
	want := make([]float64, len(in))
	for i, x := range in {
		want[i] = sampleWise.ProcessSample(x)
	}

	got := make([]float64, len(in))
	copy(got, in)
	blockWise.ProcessBlock(got)

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("sample %d mismatch: got=%g want=%g", i, got[i], want[i])
		}
	}
}

func TestSectionProcessBlockTo(t *testing.T) {
	inPlace := NewSection(testCoeffs)
	to := NewSection(testCoeffs)

	src := testInput(50)
	want := make([]float64, len(src))
	copy(want, src)
	inPlace.ProcessBlock(want)

	dst := make([]float64, len(src))
	to.ProcessBlockTo(dst, src)

	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-12 {
			t.Fatalf("sample %d mismatch: got=%g want=%g", i, dst[i], want[i])
		}
	}
	if src[3] != testInput(50)[3] {
		t.Fatal("ProcessBlockTo mutated its source")
	}
}

func TestSectionReset(t *testing.T) {
	s := NewSection(testCoeffs)
	in := testInput(32)

	first := make([]float64, len(in))
	for i, x := range in {
		first[i] = s.ProcessSample(x)
	}

	s.Reset()

	for i, x := range in {
		got := s.ProcessSample(x)
		if math.Abs(got-first[i]) > 1e-12 {
			t.Fatalf("sample %d after Reset: got=%g want=%g", i, got, first[i])
		}
	}
}

func TestMagnitudeAtDC(t *testing.T) {
	// H(1) = (b0+b1+b2)/(1+a1+a2).
	c := testCoeffs
	want := (c.B0 + c.B1 + c.B2) / (1 + c.A1 + c.A2)
	got := math.Sqrt(c.MagnitudeSquared(0, 48000))
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("|H(0)| = %g, want %g", got, want)
	}
}

func TestMagnitudeSquaredMatchesResponse(t *testing.T) {
	c := testCoeffs
	for _, freq := range []float64{100, 1000, 6000, 12000, 20000} {
		closed := c.MagnitudeSquared(freq, 48000)
		h := c.Response(freq, 48000)
		direct := real(h)*real(h) + imag(h)*imag(h)
		if math.Abs(closed-direct) > 1e-9 {
			t.Fatalf("freq %v: closed-form=%g direct=%g", freq, closed, direct)
		}
	}
}
