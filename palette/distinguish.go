package palette

import (
	"github.com/mmuldo/chroma"
	"github.com/mmuldo/chroma/deltae"
)

// Distinguish compares how far c0 and c1 each sit from base. The
// result is positive if c0 is more different from base, negative if c1
// is, and 0 if both are equally different.
func Distinguish(base, c0, c1 chroma.Lab) float64 {
	return deltae.CIE2000(c0, base, nil) - deltae.CIE2000(c1, base, nil)
}

// MostDistinct returns the index of the color in cvs farthest from
// base by CIEDE2000, or -1 for an empty slice.
func MostDistinct(base chroma.Lab, cvs []ColorVol) int {
	best := -1
	var bestD float64
	for i, cv := range cvs {
		d := deltae.CIE2000(cv.Lab, base, nil)
		if best == -1 || d > bestD {
			best = i
			bestD = d
		}
	}
	return best
}
