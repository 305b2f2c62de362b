package animation

import (
	"time"

	"github.com/drichelson/hsvleds/hsv"
)

/*
Notes:
we end up sending each value as a byte, and the minimum visible value is not 1, but is 2.
This ramps red value from 0 on the first column to 255 on the last, to find
where each column becomes visible.
*/

type BrightnessTestAnimation struct {
	conv *hsv.Converter
}

func NewBrightnessTestAnimation(conv *hsv.Converter) *BrightnessTestAnimation {
	return &BrightnessTestAnimation{conv: conv}
}

func (a *BrightnessTestAnimation) frame(px *Pixels, elapsed time.Duration, frameCount int) {
	for i, p := range px.all {
		v := uint8(p.col * 255 / (ColumnCount - 1))
		px.colors[i] = a.conv.HSV2RGB(hsv.CHSV{Hue: 0, Sat: 255, Val: v})
	}
}
