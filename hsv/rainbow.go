package hsv

import "github.com/drichelson/hsvleds/lib8"

// sectionFunc computes the fully saturated, full brightness color of one eighth
// of the rainbow wheel. third ramps 0..82 across the section, offset 0..31.
type sectionFunc func(third, offset uint8) (r, g, b uint8)

// Rainbow converts with eight hand-tuned hue sections running
// red, orange, yellow, green, aqua, blue, purple, pink and back to red. It
// gives yellow and orange more room than HSV2RGB does, and its constants are
// tuned by eye, so they are not derivable from the spectrum math.
func (c *Converter) Rainbow(hsv CHSV) CRGB {
	val := lib8.Scale8(hsv.Val, hsv.Val)

	offset := hsv.Hue & (section8 - 1)
	third := lib8.Scale8(offset*8, 256/3)

	var rgb CRGB
	rgb.R, rgb.G, rgb.B = c.sections[hsv.Hue/section8](third, offset)

	lib8.NScale8x3Video(&rgb.R, &rgb.G, &rgb.B, hsv.Sat)

	desat := lib8.Scale8(255-hsv.Sat, 255-hsv.Sat)
	rgb.R += desat
	rgb.G += desat
	rgb.B += desat

	lib8.NScale8x3Video(&rgb.R, &rgb.G, &rgb.B, val)
	return rgb
}

// HueRainbow is Rainbow at full saturation and value.
func (c *Converter) HueRainbow(hue uint8) CRGB {
	return c.Rainbow(CHSV{Hue: hue, Sat: 255, Val: 255})
}

func rainbowSections(yellow YellowLevel, halveGreen bool) [8]sectionFunc {
	s := [8]sectionFunc{
		redToOrange,
		orangeToYellow,
		yellowToGreen,
		greenToAqua,
		aquaToBlue,
		blueToPurple,
		purpleToPink,
		pinkToRed,
	}
	if yellow == YellowStrong {
		s[1] = orangeToYellowStrong
		s[2] = yellowToGreenStrong
	}
	if !halveGreen {
		return s
	}
	s[0] = redToOrangeHalfGreen
	s[1] = orangeToYellowHalfGreen
	s[2] = yellowToGreenHalfGreen
	if yellow == YellowStrong {
		s[1] = orangeToYellowStrongHalfGreen
		s[2] = yellowToGreenStrongHalfGreen
	}
	s[3] = greenToAquaHalfGreen
	s[4] = aquaToBlueHalfGreen
	return s
}

func redToOrange(third, _ uint8) (r, g, b uint8) {
	return 255 - third, third, 0
}

func orangeToYellow(third, _ uint8) (r, g, b uint8) {
	return 171, 85 + third, 0
}

func yellowToGreen(third, _ uint8) (r, g, b uint8) {
	return 171 - third*2, 171 + third, 0
}

func orangeToYellowStrong(third, _ uint8) (r, g, b uint8) {
	return 171 + third, 85 + third*2, 0
}

func yellowToGreenStrong(_, offset uint8) (r, g, b uint8) {
	return 255 - offset*8, 255, 0
}

func greenToAqua(third, _ uint8) (r, g, b uint8) {
	return 0, 255 - third, third
}

func aquaToBlue(third, _ uint8) (r, g, b uint8) {
	return 0, 171 - third*2, 85 + third*2
}

func blueToPurple(third, _ uint8) (r, g, b uint8) {
	return third, 0, 255 - third
}

func purpleToPink(third, _ uint8) (r, g, b uint8) {
	return 85 + third, 0, 171 - third
}

func pinkToRed(third, _ uint8) (r, g, b uint8) {
	return 171 + third, 0, 85 - third
}

func redToOrangeHalfGreen(third, _ uint8) (r, g, b uint8) {
	return 255 - third, third / 2, 0
}

func orangeToYellowHalfGreen(third, _ uint8) (r, g, b uint8) {
	return 171, 85/2 + third, 0
}

func yellowToGreenHalfGreen(third, _ uint8) (r, g, b uint8) {
	return 171 - third*2, 255 / 2, 0
}

func orangeToYellowStrongHalfGreen(third, _ uint8) (r, g, b uint8) {
	return 171 + third, 85/2 + third, 0
}

func yellowToGreenStrongHalfGreen(_, offset uint8) (r, g, b uint8) {
	return 255 - offset*8, 255 / 2, 0
}

func greenToAquaHalfGreen(third, _ uint8) (r, g, b uint8) {
	return 0, (255 - third) / 2, third
}

func aquaToBlueHalfGreen(third, _ uint8) (r, g, b uint8) {
	return 0, 171/2 - third, 85 + third*2
}
