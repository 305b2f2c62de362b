package animation

import (
	"time"

	"github.com/drichelson/hsvleds/hsv"
)

// SpectrumAnimation stacks the spectrum from the north pole to the lowest
// row and lets it drift downwards. varB sets the saturation.
type SpectrumAnimation struct {
	control *Control
	conv    *hsv.Converter
	hsvs    []hsv.CHSV
}

func NewSpectrumAnimation(control *Control, conv *hsv.Converter) *SpectrumAnimation {
	return &SpectrumAnimation{
		control: control,
		conv:    conv,
		hsvs:    make([]hsv.CHSV, pixelCount),
	}
}

func (a *SpectrumAnimation) frame(px *Pixels, elapsed time.Duration, frameCount int) {
	shift := hueAt(elapsed, a.control.GetVar("speed"))
	sat := a.control.GetVar8("varB")
	for i, p := range px.all {
		a.hsvs[i] = hsv.CHSV{
			Hue: latitudeHue(p.Lat) + shift,
			Sat: sat,
			Val: 255,
		}
	}
	a.conv.SpectrumSlice(a.hsvs, px.colors)
}

// latitudeHue maps the visible latitudes onto 255..0, north to south.
func latitudeHue(lat float64) uint8 {
	f := (lat - minVisibleLatitude) / latitudeRange
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f * 255.0)
}
