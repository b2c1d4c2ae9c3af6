package chroma

import "math"

// HSL converts c to hue/saturation/lightness.
func (c RGB) HSL() HSL {
	r, g, b := c[0]/255, c[1]/255, c[2]/255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		// achromatic: hue and saturation are both 0
		return HSL{0, 0, l}
	}

	delta := max - min
	var h float64
	switch max {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h = h / 6 * 2 * math.Pi

	// the two-branch form keeps saturation <= 1 for light colors
	var s float64
	if l > 0.5 {
		s = delta / (2 - max - min)
	} else {
		s = delta / (max + min)
	}

	return HSL{h, s, l}
}

// RGB converts c back to sRGB.
func (c HSL) RGB() RGB {
	h, s, l := c[0], c[1], c[2]
	if s == 0 {
		v := l * 255
		return RGB{v, v, v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	hk := h / (2 * math.Pi)
	r := hueToRGB(p, q, hk+1.0/3)
	g := hueToRGB(p, q, hk)
	b := hueToRGB(p, q, hk-1.0/3)

	return RGB{r * 255, g * 255, b * 255}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}
