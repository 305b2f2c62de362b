// Package hsv converts 8-bit hue/saturation/value colors into the 8-bit RGB
// triplets sent to LED strips. Everything is integer math; the conversions
// hold apparent brightness steady across the hue wheel instead of maximising
// brightness per hue.
package hsv

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/drichelson/hsvleds/lib8"
)

// CHSV is a color in 8-bit HSV. Hue 0..255 covers the whole wheel.
type CHSV struct {
	Hue uint8
	Sat uint8
	Val uint8
}

// CRGB is one pixel's channel intensities.
type CRGB struct {
	R uint8
	G uint8
	B uint8
}

// Black is all channels off.
var Black = CRGB{}

func (c CRGB) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBA implements image/color.Color. CRGB is always opaque.
func (c CRGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Scaled returns c dimmed by scale/256 using the video rule, so lit channels
// stay lit for any nonzero scale.
func (c CRGB) Scaled(scale uint8) CRGB {
	lib8.NScale8x3Video(&c.R, &c.G, &c.B, scale)
	return c
}

// Colorful returns c as a go-colorful color.
func (c CRGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Hex returns c as "#rrggbb".
func (c CRGB) Hex() string {
	return c.Colorful().Hex()
}

// FromColorful quantizes a go-colorful color to 8 bits per channel,
// clamping out-of-gamut values.
func FromColorful(c colorful.Color) CRGB {
	r, g, b := c.Clamped().RGB255()
	return CRGB{R: r, G: g, B: b}
}

// CHSVFromColorful maps a go-colorful color onto the 8-bit HSV wheel: hue
// degrees become 0..255, saturation and value 0..1 become 0..255.
func CHSVFromColorful(c colorful.Color) CHSV {
	h, s, v := c.Clamped().Hsv()
	hue := int(h*256.0/360.0+0.5) & 0xff
	return CHSV{
		Hue: uint8(hue),
		Sat: unit8(s),
		Val: unit8(v),
	}
}

func unit8(f float64) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f*255.0 + 0.5)
}
