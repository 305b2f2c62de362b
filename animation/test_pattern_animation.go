package animation

import (
	"time"

	"github.com/drichelson/hsvleds/hsv"
)

const patternFramesPerRow = 30

var patternColors = []hsv.CRGB{{R: 255}, {G: 255}, {B: 255}}

// TestPatternAnimation lights one row at a time, walking down the sphere in
// red, then green, then blue. Useful for checking the strip wiring.
type TestPatternAnimation struct{}

func NewTestPatternAnimation() *TestPatternAnimation {
	return &TestPatternAnimation{}
}

func (a *TestPatternAnimation) frame(px *Pixels, elapsed time.Duration, frameCount int) {
	step := frameCount / patternFramesPerRow
	row := step % RowCount
	c := patternColors[(step/RowCount)%len(patternColors)]
	hsv.FillSolid(px.row(row), c)
}
