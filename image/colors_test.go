package image

import (
	"image"
	"image/color"
	"testing"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			switch {
			case x < 6:
				img.Set(x, y, color.NRGBA{255, 0, 0, 255})
			case x < 9:
				img.Set(x, y, color.NRGBA{0, 0, 255, 255})
			default:
				img.Set(x, y, color.NRGBA{0, 255, 0, 0}) // transparent
			}
		}
	}
	return img
}

func TestCensus(t *testing.T) {
	m := Census(testImage(), 1)

	if len(m) != 2 {
		t.Fatalf("census found %d colors, want 2 (transparent pixels skipped)", len(m))
	}
	if got := m[color.NRGBA{255, 0, 0, 255}]; got != 60 {
		t.Errorf("red count = %d, want 60", got)
	}
	if got := m[color.NRGBA{0, 0, 255, 255}]; got != 30 {
		t.Errorf("blue count = %d, want 30", got)
	}
}

func TestCensusStride(t *testing.T) {
	m := Census(testImage(), 2)
	total := 0
	for _, n := range m {
		total += n
	}
	if total != 25 {
		t.Errorf("stride-2 census sampled %d pixels, want 25", total)
	}
}

func TestRank(t *testing.T) {
	ccl := Rank(Census(testImage(), 1))
	if len(ccl) != 2 {
		t.Fatalf("rank has %d entries, want 2", len(ccl))
	}
	if ccl[0].Count < ccl[1].Count {
		t.Error("rank not ordered most-common first")
	}
	if ccl[0].Color != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("most common color = %v, want red", ccl[0].Color)
	}
}
