// Package deltae measures perceptual distance between CIE L*a*b*
// colors using the CIEDE2000 formula.
package deltae

import (
	"math"

	"github.com/mmuldo/chroma"
)

// KLCh holds the parametric weighting factors that bias the lightness,
// chroma and hue contributions for non-reference viewing conditions.
type KLCh struct {
	KL, KC, KH float64
}

// KLChDefault is the weighting for reference viewing conditions.
var KLChDefault = KLCh{1, 1, 1}

const pow25To7 = 6103515625 // 25^7

// CIE2000 computes the CIEDE2000 distance between lab1 and lab2. A nil
// klch means KLChDefault. The metric is symmetric in its two color
// arguments and zero for identical inputs.
func CIE2000(lab1, lab2 chroma.Lab, klch *KLCh) float64 {
	if klch == nil {
		klch = &KLChDefault
	}
	l1, a1, b1 := lab1.L(), lab1.A(), lab1.B()
	l2, a2, b2 := lab2.L(), lab2.A(), lab2.B()

	c1 := math.Hypot(a1, b1)
	c2 := math.Hypot(a2, b2)
	cBar := (c1 + c2) / 2

	// neutral-axis compensation of a*
	g := 0.5 * (1 - math.Sqrt(pow7(cBar)/(pow7(cBar)+pow25To7)))
	a1p := (1 + g) * a1
	a2p := (1 + g) * a2
	c1p := math.Hypot(a1p, b1)
	c2p := math.Hypot(a2p, b2)
	h1p := hueAngle(a1p, b1)
	h2p := hueAngle(a2p, b2)

	dLp := l2 - l1
	dCp := c2p - c1p

	// hue is undefined for an achromatic color and must not contribute
	var dhp float64
	if c1p*c2p != 0 {
		dhp = h2p - h1p
		if dhp > math.Pi {
			dhp -= 2 * math.Pi
		} else if dhp < -math.Pi {
			dhp += 2 * math.Pi
		}
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(dhp/2)

	lBar := (l1 + l2) / 2
	cBarP := (c1p + c2p) / 2

	// mean hue, kept on the correct side of the circle when the two
	// hues straddle the 0/2π seam
	hSum := h1p + h2p
	var hBar float64
	switch {
	case c1p*c2p == 0:
		hBar = hSum
	case math.Abs(h1p-h2p) <= math.Pi:
		hBar = hSum / 2
	case hSum < 2*math.Pi:
		hBar = hSum/2 + math.Pi
	default:
		hBar = hSum/2 - math.Pi
	}

	t := 1 - 0.17*math.Cos(hBar-rad(30)) +
		0.24*math.Cos(2*hBar) +
		0.32*math.Cos(3*hBar+rad(6)) -
		0.20*math.Cos(4*hBar-rad(63))
	dTheta := rad(30) * math.Exp(-sq((hBar-rad(275))/rad(25)))
	rc := 2 * math.Sqrt(pow7(cBarP)/(pow7(cBarP)+pow25To7))
	sl := 1 + 0.015*sq(lBar-50)/math.Sqrt(20+sq(lBar-50))
	sc := 1 + 0.045*cBarP
	sh := 1 + 0.015*cBarP*t
	rt := -math.Sin(2*dTheta) * rc

	dL := dLp / (sl * klch.KL)
	dC := dCp / (sc * klch.KC)
	dH := dHp / (sh * klch.KH)

	return math.Sqrt(sq(dL) + sq(dC) + sq(dH) + rt*dC*dH)
}

// hueAngle reduces atan2 into [0, 2π), with hue 0 for the degenerate
// zero vector.
func hueAngle(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a)
	if h < 0 {
		h += 2 * math.Pi
	}
	return h
}

func sq(v float64) float64 { return v * v }

func pow7(v float64) float64 {
	v2 := v * v
	return v2 * v2 * v2 * v
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }
