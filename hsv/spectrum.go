package hsv

import "github.com/drichelson/hsvleds/lib8"

const (
	section3 = 0x40 // one third of the hue wheel
	section8 = 0x20 // one eighth
)

// HSV2RGB converts with three equal hue sections. Every channel gets at
// least the brightness floor set by desaturation; the remaining amplitude
// ramps linearly between the two channels of the current section.
func (c *Converter) HSV2RGB(hsv CHSV) CRGB {
	value := c.dim(hsv.Val)
	invsat := c.dim(255 - hsv.Sat)

	floor := lib8.Scale8(value, invsat)
	amplitude := value - floor

	return c.spectrum(hsv.Hue, floor, amplitude)
}

// Spectrum squeezes hue into the first three quarters of the wheel before
// converting, which drops the violet/magenta band that HSV2RGB draws
// between blue and red.
func (c *Converter) Spectrum(hsv CHSV) CRGB {
	hsv.Hue = lib8.Scale8(hsv.Hue, 192)
	return c.HSV2RGB(hsv)
}

func spectrumDivide(hue, floor, amplitude uint8) CRGB {
	section := hue / section3
	offset := hue % section3

	rampup := uint16(offset)
	rampdown := uint16(section3-1) - rampup

	up := uint8(rampup*uint16(amplitude)/section3) + floor
	down := uint8(rampdown*uint16(amplitude)/section3) + floor

	switch section {
	case 0:
		return CRGB{R: down, G: up, B: floor}
	case 1:
		return CRGB{R: floor, G: down, B: up}
	default:
		// Hues 0xC0..0xFF wrap onto the last section's layout.
		return CRGB{R: up, G: floor, B: down}
	}
}

func spectrumShift(hue, floor, amplitude uint8) CRGB {
	rampup := uint8(hue&(section3-1)) << 2
	rampdown := uint8(section3-1)<<2 - rampup

	up := lib8.Scale8(rampup, amplitude) + floor
	down := lib8.Scale8(rampdown, amplitude) + floor

	if hue&0x80 != 0 {
		return CRGB{R: up, G: floor, B: down}
	}
	if hue&0x40 != 0 {
		return CRGB{R: floor, G: down, B: up}
	}
	return CRGB{R: down, G: up, B: floor}
}
