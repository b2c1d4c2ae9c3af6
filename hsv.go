package chroma

import "math"

// HSV converts c to hue/saturation/value.
func (c RGB) HSV() HSV {
	r, g, b := c[0], c[1], c[2]
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))

	// hue in degrees until the final conversion
	var h float64
	switch {
	case max == min:
		// achromatic
		h = 0
	case max == r && g >= b:
		h = 60 * (g - b) / (max - min)
	case max == r:
		h = 360 + 60*(g-b)/(max-min)
	case max == g:
		h = 120 + 60*(b-r)/(max-min)
	default:
		h = 240 + 60*(r-g)/(max-min)
	}

	var s float64
	if max > 0 {
		s = 1 - min/max
	}

	return HSV{math.Mod(h*math.Pi/180, 2*math.Pi), s, max / 255}
}

// RGB converts c back to sRGB by the usual sector reconstruction.
func (c HSV) RGB() RGB {
	h, s, v := c[0], c[1], c[2]

	sector := math.Mod(h/(math.Pi/3), 6)
	if sector < 0 {
		sector += 6
	}
	i := math.Floor(sector)
	f := sector - i

	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return RGB{r * 255, g * 255, b * 255}
}
