package chroma

import "math"

// labF is the forward XYZ->Lab nonlinearity.
func labF(t float64) float64 {
	if t > CIEEps {
		return math.Cbrt(t)
	}
	return (CIEKappa*t + 16) / 116
}

// LabWhiteRef converts c to L*a*b* relative to the white point wp.
// Every component of wp must be strictly positive; a zero component
// divides to Inf and poisons the result with NaN.
func (c XYZ) LabWhiteRef(wp XYZ) Lab {
	fx := labF(c[0] / wp[0])
	fy := labF(c[1] / wp[1])
	fz := labF(c[2] / wp[2])
	return Lab{
		116*fy - 16,
		500 * (fx - fy),
		200 * (fy - fz),
	}
}

// Lab converts c to L*a*b* relative to D65.
func (c XYZ) Lab() Lab { return c.LabWhiteRef(D65) }

// XYZWhiteRef inverts LabWhiteRef. For any wp with strictly positive
// components the two are exact inverses up to rounding.
func (c Lab) XYZWhiteRef(wp XYZ) XYZ {
	fy := (c[0] + 16) / 116
	fx := c[1]/500 + fy
	fz := fy - c[2]/200

	var x, y, z float64
	if cube := fx * fx * fx; cube > CIEEps {
		x = cube
	} else {
		x = (116*fx - 16) / CIEKappa
	}
	if c[0] > CIEKappa*CIEEps {
		y = fy * fy * fy
	} else {
		y = c[0] / CIEKappa
	}
	if cube := fz * fz * fz; cube > CIEEps {
		z = cube
	} else {
		z = (116*fz - 16) / CIEKappa
	}

	return XYZ{x * wp[0], y * wp[1], z * wp[2]}
}

// XYZ converts c to XYZ relative to D65.
func (c Lab) XYZ() XYZ { return c.XYZWhiteRef(D65) }

// Lab converts c through XYZ to L*a*b* relative to D65.
func (c RGB) Lab() Lab { return c.XYZ().Lab() }

// LabWhiteRef converts c through XYZ to L*a*b* relative to wp.
func (c RGB) LabWhiteRef(wp XYZ) Lab { return c.XYZ().LabWhiteRef(wp) }

// RGB converts c through XYZ back to sRGB, relative to D65.
func (c Lab) RGB() RGB { return c.XYZ().RGB() }

// RGBWhiteRef converts c through XYZ back to sRGB, relative to wp.
func (c Lab) RGBWhiteRef(wp XYZ) RGB { return c.XYZWhiteRef(wp).RGB() }
