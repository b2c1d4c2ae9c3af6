package chroma

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestXYZToLabWhitePoint(t *testing.T) {
	got := D65.Lab()
	want := Lab{100, 0, 0}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Lab of the white point (-want +got):\n%s", diff)
	}
}

func TestXYZToLabBlack(t *testing.T) {
	got := XYZ{0, 0, 0}.Lab()
	if diff := cmp.Diff(Lab{0, 0, 0}, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Lab of zero XYZ (-want +got):\n%s", diff)
	}
}

func TestLabRoundTrip(t *testing.T) {
	approx := cmpopts.EquateApprox(1e-9, 1e-12)
	points := []XYZ{
		{0, 0, 0},
		{0.001, 0.001, 0.001}, // linear regime
		{0.2, 0.3, 0.1},
		{0.95047, 1, 1.08883},
		{1.5, 1.2, 0.9}, // brighter than white
	}
	for _, p := range points {
		lab := p.Lab()
		back := lab.XYZ()
		if diff := cmp.Diff(p, back, approx); diff != "" {
			t.Errorf("XYZ round trip of %v (-want +got):\n%s", p, diff)
		}
	}
}

func TestLabRoundTripWhiteRef(t *testing.T) {
	approx := cmpopts.EquateApprox(1e-9, 1e-12)
	whitePoints := []XYZ{
		D65,
		{0.96422, 1.0, 0.82491}, // D50
		{0.3, 1.2, 0.7},         // nothing standard, still strictly positive
	}
	p := XYZ{0.41, 0.37, 0.25}
	for _, wp := range whitePoints {
		lab := p.LabWhiteRef(wp)
		back := lab.XYZWhiteRef(wp)
		if diff := cmp.Diff(p, back, approx); diff != "" {
			t.Errorf("round trip under %v (-want +got):\n%s", wp, diff)
		}
	}
}

func TestRGBToLabRoundTrip(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-6)
	colors := []RGB{
		{255, 255, 255},
		{255, 0, 0},
		{12, 200, 64},
		{100, 100, 100},
		{30, 144, 255},
	}
	for _, c := range colors {
		got := c.Lab().RGB()
		if diff := cmp.Diff(c, got, approx); diff != "" {
			t.Errorf("Lab round trip of %v (-want +got):\n%s", c, diff)
		}
	}
}

// a zero white-point component is documented to poison the result
// rather than be rejected
func TestLabZeroWhitePoint(t *testing.T) {
	lab := XYZ{0.5, 0.5, 0.5}.LabWhiteRef(XYZ{0, 1, 1})
	if !math.IsNaN(lab.A()) {
		t.Errorf("expected NaN a* under a zero white-point component, got %v", lab)
	}
}

func TestRGBToLabReference(t *testing.T) {
	// mid gray: near-achromatic. Not exactly zero because the white
	// point and the sRGB matrix white differ in the fifth decimal.
	lab := RGB{119, 119, 119}.Lab()
	if math.Abs(lab.A()) > 0.05 || math.Abs(lab.B()) > 0.05 {
		t.Errorf("gray should be nearly achromatic, got %v", lab)
	}
	if lab.L() < 40 || lab.L() > 60 {
		t.Errorf("mid gray L* = %v, want around 50", lab.L())
	}
}
