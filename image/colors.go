package image

import (
	"image"
	"image/color"
	"sort"
)

type ColorCount struct {
	Color color.Color
	Count int
}

type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int           { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool { return ccl[i].Count > ccl[j].Count }
func (ccl ColorCountList) Swap(i, j int)      { ccl[i], ccl[j] = ccl[j], ccl[i] }

// Census maps each color in img to the number of sampled pixels it
// occupies, visiting every stride-th pixel in each direction. Fully
// transparent pixels are skipped. A stride below 1 is treated as 1.
func Census(img image.Image, stride int) map[color.Color]int {
	if stride < 1 {
		stride = 1
	}
	m := make(map[color.Color]int)

	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x += stride {
		for y := b.Min.Y; y < b.Max.Y; y += stride {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); a == 0 {
				continue
			}
			m[c]++
		}
	}

	return m
}

// Rank converts a census to a ColorCountList ordered most-common
// first.
func Rank(m map[color.Color]int) ColorCountList {
	ccl := make(ColorCountList, 0, len(m))
	for c, n := range m {
		ccl = append(ccl, ColorCount{c, n})
	}
	sort.Sort(ccl)
	return ccl
}
