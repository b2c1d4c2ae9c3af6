package palette

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/esimov/colorquant"

	"github.com/mmuldo/chroma"
	"github.com/mmuldo/chroma/deltae"
	imgx "github.com/mmuldo/chroma/image"
)

// sampling stride used when counting quantized pixels
const censusStride = 5

// FromImage quantizes img down to n colors and returns one ColorVol
// per surviving color. The error case is an image with too little
// variation to fill out n distinct colors.
func FromImage(img image.Image, n int) ([]ColorVol, error) {
	b := img.Bounds()
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(img, o, n, false, true)

	m := imgx.Census(o, censusStride)
	if len(m) < n {
		return nil, fmt.Errorf("image does not have enough variation to support a base %d color palette", n)
	}

	cvs := make([]ColorVol, 0, len(m))
	for c, count := range m {
		cvs = append(cvs, ColorVol{c, Lab(c), count})
	}

	return cvs, nil
}

// Average reduces a group to a single ColorVol: channel-wise RMS of
// the member colors, with the counts summed.
func Average(cvs []ColorVol) ColorVol {
	var rt, gt, bt float64
	total := 0

	for _, cv := range cvs {
		r, g, b, _ := cv.RGB.RGBA()
		rt += sq(float64(uint8(r >> 8)))
		gt += sq(float64(uint8(g >> 8)))
		bt += sq(float64(uint8(b >> 8)))
		total += cv.Count
	}

	n := float64(len(cvs))
	rgb := chroma.RGB{
		math.Sqrt(rt / n),
		math.Sqrt(gt / n),
		math.Sqrt(bt / n),
	}

	return ColorVol{
		RGB:   nrgba(rgb),
		Lab:   rgb.Lab(),
		Count: total,
	}
}

// Group partitions cvs into clusters whose members sit within
// threshold CIEDE2000 units of the cluster's first color.
func Group(cvs []ColorVol, threshold float64) [][]ColorVol {
	groups := make([][]ColorVol, 0)
	done := make([]bool, len(cvs))

	for i := range cvs {
		if done[i] {
			continue
		}
		g := []ColorVol{cvs[i]}
		done[i] = true

		for j := i + 1; j < len(cvs); j++ {
			if done[j] {
				continue
			}
			if deltae.CIE2000(cvs[i].Lab, cvs[j].Lab, nil) < threshold {
				g = append(g, cvs[j])
				done[j] = true
			}
		}

		groups = append(groups, g)
	}

	return groups
}

// Consolidate repeatedly merges the two perceptually closest groups
// until at most n remain.
func Consolidate(groups [][]ColorVol, n int) [][]ColorVol {
	for len(groups) > n {
		var a, b int
		best := math.Inf(1)

		for i := 0; i < len(groups); i++ {
			for j := i + 1; j < len(groups); j++ {
				d := deltae.CIE2000(Average(groups[i]).Lab, Average(groups[j]).Lab, nil)
				if d < best {
					best = d
					a, b = i, j
				}
			}
		}

		groups[a] = append(groups[a], groups[b]...)
		groups = append(groups[:b], groups[b+1:]...)
	}

	return groups
}

func nrgba(c chroma.RGB) color.NRGBA {
	return color.NRGBA{
		uint8(math.Round(c.R())),
		uint8(math.Round(c.G())),
		uint8(math.Round(c.B())),
		255,
	}
}

func sq(v float64) float64 { return v * v }
