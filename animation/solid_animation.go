package animation

import (
	"time"

	"github.com/drichelson/hsvleds/hsv"
)

// SolidAnimation paints the whole sphere with color A.
type SolidAnimation struct {
	control *Control
	conv    *hsv.Converter
}

func NewSolidAnimation(control *Control, conv *hsv.Converter) *SolidAnimation {
	return &SolidAnimation{control: control, conv: conv}
}

func (a *SolidAnimation) frame(px *Pixels, elapsed time.Duration, frameCount int) {
	hsv.FillSolid(px.colors, a.conv.HSV2RGB(a.control.GetHSV("A")))
}
