package animation

import (
	"time"

	"github.com/drichelson/hsvleds/hsv"
)

// RainbowAnimation wraps a full rainbow around every row and scrolls it.
// varA twists successive rows against each other.
type RainbowAnimation struct {
	control *Control
	conv    *hsv.Converter
}

func NewRainbowAnimation(control *Control, conv *hsv.Converter) *RainbowAnimation {
	return &RainbowAnimation{control: control, conv: conv}
}

func (a *RainbowAnimation) frame(px *Pixels, elapsed time.Duration, frameCount int) {
	hue := hueAt(elapsed, a.control.GetVar("speed"))
	twist := a.control.GetVar8("varA") / RowCount
	for r := 0; r < RowCount; r++ {
		a.conv.FillRainbow(px.row(r), hue+uint8(r)*twist, 256/ColumnCount)
	}
}
