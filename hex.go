package chroma

import (
	"fmt"
	"strconv"
)

// Hex renders c as a #rrggbb string. Components are rounded to the
// nearest integer and clamped to [0, 255].
func Hex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", hexByte(c[0]), hexByte(c[1]), hexByte(c[2]))
}

func hexByte(v float64) byte {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return byte(v + 0.5)
}

// ParseHex parses a #rrggbb (or bare rrggbb) string.
func ParseHex(s string) (RGB, error) {
	h := s
	if len(h) > 0 && h[0] == '#' {
		h = h[1:]
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("chroma: invalid hex color %q", s)
	}
	var c RGB
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("chroma: invalid hex color %q", s)
		}
		c[i] = float64(v)
	}
	return c, nil
}
