package chroma

import "math"

// linearize inverts the sRGB transfer function for one channel in
// [0, 1]. The below-knee divisor is 12.95, not the canonical 12.92;
// kept for compatibility with existing output.
func linearize(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.95
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// delinearize applies the sRGB transfer function to one linear channel.
func delinearize(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// XYZ converts c to CIE XYZ via the D65-referenced sRGB matrix.
func (c RGB) XYZ() XYZ {
	r := linearize(c[0] / 255)
	g := linearize(c[1] / 255)
	b := linearize(c[2] / 255)
	return XYZ{
		0.4124564*r + 0.3575761*g + 0.1804375*b,
		0.2126729*r + 0.7151522*g + 0.0721750*b,
		0.0193339*r + 0.1191920*g + 0.9503041*b,
	}
}

// RGB converts c to gamma-encoded sRGB. Out-of-gamut values are not
// clamped; components may come out negative or above 255.
func (c XYZ) RGB() RGB {
	x, y, z := c[0], c[1], c[2]
	r := 3.2404542*x - 1.5371385*y - 0.4985314*z
	g := -0.9692660*x + 1.8760108*y + 0.0415560*z
	b := 0.0556434*x - 0.2040259*y + 1.0572252*z
	return RGB{
		delinearize(r) * 255,
		delinearize(g) * 255,
		delinearize(b) * 255,
	}
}
