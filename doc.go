// Package chroma converts colors between RGB, HSV, HSL, CIE XYZ and
// CIE L*a*b*. Each color space gets its own fixed-size value type so
// that a triplet from one space can't be passed where another is
// expected.
//
// All conversions are pure functions over small stack values: no
// allocation, no shared state, safe to call from any number of
// goroutines without coordination.
//
// Inputs are not range-checked. An RGB channel outside [0, 255] or a
// white point with a zero component simply flows through the
// arithmetic, which may yield NaN or Inf; callers that care must
// validate first. Division-by-zero hazards inside the formulas
// themselves (achromatic hue, zero-value saturation) are guarded and
// produce defined degenerate results instead.
package chroma
