// Package lib8 holds the 8-bit fixed-point scaling primitives used by the
// color conversions. A scale of 255 means "almost 1.0"; all results truncate.
package lib8

// Scale8 returns i * (scale / 256).
func Scale8(i, scale uint8) uint8 {
	return uint8((uint16(i) * uint16(scale)) >> 8)
}

// Scale8Video is Scale8, except a nonzero input scaled by a nonzero factor
// never reaches zero.
func Scale8Video(i, scale uint8) uint8 {
	j := Scale8(i, scale)
	if i != 0 && scale != 0 {
		j++
	}
	return j
}

// NScale8x3 scales three channels in place by the same factor.
func NScale8x3(r, g, b *uint8, scale uint8) {
	*r = Scale8(*r, scale)
	*g = Scale8(*g, scale)
	*b = Scale8(*b, scale)
}

// NScale8x3Video scales three channels in place with the video rule:
// zero channels stay zero, nonzero channels get one added back unless scale
// is zero.
func NScale8x3Video(r, g, b *uint8, scale uint8) {
	var nonzero uint8
	if scale != 0 {
		nonzero = 1
	}
	*r = video(*r, scale, nonzero)
	*g = video(*g, scale, nonzero)
	*b = video(*b, scale, nonzero)
}

func video(c, scale, nonzero uint8) uint8 {
	if c == 0 {
		return 0
	}
	return Scale8(c, scale) + nonzero
}

// Dim8Raw squares x in 8-bit space, a cheap gamma-like dimming curve.
func Dim8Raw(x uint8) uint8 {
	return Scale8(x, x)
}

// Dim8Video is Dim8Raw that keeps every nonzero input nonzero.
func Dim8Video(x uint8) uint8 {
	return Scale8Video(x, x)
}
