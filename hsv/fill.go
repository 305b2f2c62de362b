package hsv

// HSV2RGBSlice converts src into dst index by index. Like copy, it converts
// min(len(src), len(dst)) pixels and returns that count.
func (c *Converter) HSV2RGBSlice(src []CHSV, dst []CRGB) int {
	n := min(len(src), len(dst))
	for i := 0; i < n; i++ {
		dst[i] = c.HSV2RGB(src[i])
	}
	return n
}

// SpectrumSlice is HSV2RGBSlice using Spectrum.
func (c *Converter) SpectrumSlice(src []CHSV, dst []CRGB) int {
	n := min(len(src), len(dst))
	for i := 0; i < n; i++ {
		dst[i] = c.Spectrum(src[i])
	}
	return n
}

// RainbowSlice is HSV2RGBSlice using Rainbow.
func (c *Converter) RainbowSlice(src []CHSV, dst []CRGB) int {
	n := min(len(src), len(dst))
	for i := 0; i < n; i++ {
		dst[i] = c.Rainbow(src[i])
	}
	return n
}

// FillRainbow paints dst with a fully saturated rainbow sweep starting at
// initialHue and stepping deltaHue per pixel. The hue wraps at 256.
func (c *Converter) FillRainbow(dst []CRGB, initialHue, deltaHue uint8) {
	hsv := CHSV{Hue: initialHue, Sat: 255, Val: 255}
	for i := range dst {
		dst[i] = c.Rainbow(hsv)
		hsv.Hue += deltaHue
	}
}

// FillSolid sets every pixel of dst to color.
func FillSolid(dst []CRGB, color CRGB) {
	for i := range dst {
		dst[i] = color
	}
}

// HSV2RGB converts with the Default converter.
func HSV2RGB(hsv CHSV) CRGB { return Default.HSV2RGB(hsv) }

// Spectrum converts with the Default converter.
func Spectrum(hsv CHSV) CRGB { return Default.Spectrum(hsv) }

// Rainbow converts with the Default converter.
func Rainbow(hsv CHSV) CRGB { return Default.Rainbow(hsv) }

// HSV2RGBSlice converts a slice with the Default converter.
func HSV2RGBSlice(src []CHSV, dst []CRGB) int { return Default.HSV2RGBSlice(src, dst) }

// SpectrumSlice converts a slice with the Default converter.
func SpectrumSlice(src []CHSV, dst []CRGB) int { return Default.SpectrumSlice(src, dst) }

// RainbowSlice converts a slice with the Default converter.
func RainbowSlice(src []CHSV, dst []CRGB) int { return Default.RainbowSlice(src, dst) }

// FillRainbow fills with the Default converter.
func FillRainbow(dst []CRGB, initialHue, deltaHue uint8) {
	Default.FillRainbow(dst, initialHue, deltaHue)
}
