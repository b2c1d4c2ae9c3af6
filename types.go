package chroma

// RGB is a gamma-encoded sRGB color. Components are in [0, 255].
type RGB [3]float64

func (c RGB) R() float64 { return c[0] }
func (c RGB) G() float64 { return c[1] }
func (c RGB) B() float64 { return c[2] }

// HSV is a hue/saturation/value color. Hue is in radians in [0, 2π);
// saturation and value are in [0, 1].
type HSV [3]float64

func (c HSV) H() float64 { return c[0] }
func (c HSV) S() float64 { return c[1] }
func (c HSV) V() float64 { return c[2] }

// HSL is a hue/saturation/lightness color. Hue is in radians in
// [0, 2π); saturation and lightness are in [0, 1].
type HSL [3]float64

func (c HSL) H() float64 { return c[0] }
func (c HSL) S() float64 { return c[1] }
func (c HSL) L() float64 { return c[2] }

// XYZ is a CIE XYZ tristimulus value, scaled so that the reference
// white has Y = 1. XYZ also serves as the white-point type.
type XYZ [3]float64

func (c XYZ) X() float64 { return c[0] }
func (c XYZ) Y() float64 { return c[1] }
func (c XYZ) Z() float64 { return c[2] }

// Lab is a CIE L*a*b* color. L is nominally in [0, 100]; a and b are
// signed and unbounded in principle.
type Lab [3]float64

func (c Lab) L() float64 { return c[0] }
func (c Lab) A() float64 { return c[1] }
func (c Lab) B() float64 { return c[2] }

// D65 is the CIE standard illuminant D65 white point, the default
// reference white for every XYZ/Lab conversion here. Treat as
// read-only.
var D65 = XYZ{0.950455, 1.0, 1.088753}

// CIE-defined thresholds separating the linear and cube-root regimes
// of the XYZ/Lab nonlinearity.
const (
	CIEEps   = 216.0 / 24389.0
	CIEKappa = 24389.0 / 27.0
)
