// Package theme turns extracted palettes into desktop themes and
// renders them through app config templates.
package theme

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/mmuldo/chroma"
	"github.com/mmuldo/chroma/palette"
)

// Palette represents a set of colors and their associated 'roles'
// (e.g. color0, color1, etc.).
type Palette map[int]palette.ColorVol

// Theme represents a desktop theme.
type Theme map[string]interface{}

// Create creates a new desktop theme based on a provided palette and
// other options.
func Create(p Palette, opts map[string]interface{}) (Theme, error) {
	t := make(Theme)

	keys := make([]int, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for _, k := range keys {
		t["color"+strconv.Itoa(k)] = hex(p[k])
	}

	for k, v := range opts {
		t[k] = v
	}

	setDefaults(t)

	return t, nil
}

// Delegate converts a ColorVol slice to a Palette. The darker half of
// the colors gets the low roles, the lighter half the high ones, each
// half ordered by prevalence.
func Delegate(cvs []palette.ColorVol) (Palette, error) {
	if len(cvs) == 0 {
		return nil, fmt.Errorf("cannot delegate an empty color list")
	}
	p := make(Palette)

	// group colors into darks and lights
	sorted := make([]palette.ColorVol, len(cvs))
	copy(sorted, cvs)
	sort.Sort(palette.ByDarkness(sorted))
	d := sorted[:len(sorted)/2]
	l := sorted[len(sorted)/2:]

	// assign roles by prevalence
	sort.Sort(palette.ByCount(d))
	sort.Sort(palette.ByCount(l))
	for i, c := range d {
		p[i] = c
	}
	for i, c := range l {
		p[len(d)+i] = c
	}

	return p, nil
}

func hex(cv palette.ColorVol) string {
	r, g, b, _ := cv.RGB.RGBA()
	return chroma.Hex(chroma.RGB{
		float64(uint8(r >> 8)),
		float64(uint8(g >> 8)),
		float64(uint8(b >> 8)),
	})
}

func setDefaults(t Theme) {
	if _, ok := t["background"]; !ok {
		t["background"] = t["color0"]
	}

	if _, ok := t["transparency"]; !ok {
		t["transparency"] = 1.0
	}

	if _, ok := t["foreground"]; !ok {
		t["foreground"] = t["color8"]
	}
}
