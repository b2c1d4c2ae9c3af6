package chroma

import (
	"math"
	"testing"
)

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want HSV
	}{
		{"black", RGB{0, 0, 0}, HSV{0, 0, 0}},
		{"white", RGB{255, 255, 255}, HSV{0, 0, 1}},
		{"red", RGB{255, 0, 0}, HSV{0, 1, 1}},
		{"green", RGB{0, 255, 0}, HSV{2 * math.Pi / 3, 1, 1}},
		{"blue", RGB{0, 0, 255}, HSV{4 * math.Pi / 3, 1, 1}},
		{"yellow", RGB{255, 255, 0}, HSV{math.Pi / 3, 1, 1}},
		{"gray", RGB{128, 128, 128}, HSV{0, 0, 128.0 / 255}},
		{"dark red", RGB{128, 0, 0}, HSV{0, 1, 128.0 / 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.HSV()
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Errorf("%v.HSV() = %v, want %v", tt.in, got, tt.want)
					break
				}
			}
		})
	}
}

// hue just below the red/magenta boundary exercises the 360+ branch
func TestRGBToHSVUpperRedSector(t *testing.T) {
	got := RGB{255, 0, 10}.HSV()
	if got.H() <= 3*math.Pi/2 || got.H() >= 2*math.Pi {
		t.Errorf("hue = %v, want in (3π/2, 2π)", got.H())
	}
}

func TestHSVRoundTrip(t *testing.T) {
	colors := []RGB{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{12, 200, 64},
		{200, 12, 64},
		{64, 12, 200},
		{1, 2, 3},
		{250, 250, 1},
	}
	for _, c := range colors {
		got := c.HSV().RGB()
		for i := range got {
			if math.Abs(got[i]-c[i]) > 1e-6 {
				t.Errorf("%v.HSV().RGB() = %v", c, got)
				break
			}
		}
	}
}

func TestHSVHueInRange(t *testing.T) {
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				h := RGB{float64(r), float64(g), float64(b)}.HSV().H()
				if h < 0 || h >= 2*math.Pi {
					t.Fatalf("hue %v out of [0, 2π) for (%d, %d, %d)", h, r, g, b)
				}
			}
		}
	}
}
