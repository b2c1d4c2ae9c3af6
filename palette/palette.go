// Package palette extracts representative colors from images and
// groups them by perceptual similarity.
package palette

import (
	"image/color"
	"sort"

	"github.com/mmuldo/chroma"
	"github.com/mmuldo/chroma/deltae"
)

// ColorVol represents an RGB color, its Lab equivalent, and the number
// of pixels it takes up in a given image.
type ColorVol struct {
	RGB   color.Color
	Lab   chroma.Lab
	Count int
}

// Lab converts any image/color value to L*a*b* via the sRGB pipeline.
func Lab(c color.Color) chroma.Lab {
	r, g, b, _ := c.RGBA()
	return chroma.RGB{
		float64(uint8(r >> 8)),
		float64(uint8(g >> 8)),
		float64(uint8(b >> 8)),
	}.Lab()
}

// ByCount orders most-prevalent first.
type ByCount []ColorVol

func (cvs ByCount) Len() int           { return len(cvs) }
func (cvs ByCount) Less(i, j int) bool { return cvs[i].Count > cvs[j].Count }
func (cvs ByCount) Swap(i, j int)      { cvs[i], cvs[j] = cvs[j], cvs[i] }

// ByDarkness orders darkest (lowest L*) first.
type ByDarkness []ColorVol

func (cvs ByDarkness) Len() int           { return len(cvs) }
func (cvs ByDarkness) Less(i, j int) bool { return cvs[i].Lab.L() < cvs[j].Lab.L() }
func (cvs ByDarkness) Swap(i, j int)      { cvs[i], cvs[j] = cvs[j], cvs[i] }

// SortByDeviance orders cvs most-deviant-from-the-mean first, using
// CIEDE2000 against the average color.
func SortByDeviance(cvs []ColorVol) {
	base := Average(cvs).Lab
	sort.Slice(cvs, func(i, j int) bool {
		return deltae.CIE2000(cvs[i].Lab, base, nil) > deltae.CIE2000(cvs[j].Lab, base, nil)
	})
}
