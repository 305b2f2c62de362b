package hsv

import (
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

// Verify at compile time that CRGB implements color.Color.
var _ color.Color = CRGB{}

func TestFillSolid(t *testing.T) {
	guard := CRGB{1, 2, 3}
	buf := make([]CRGB, 7)
	FillSolid(buf, guard)

	FillSolid(buf[:5], CRGB{10, 20, 30})
	for i := 0; i < 5; i++ {
		assert.Equal(t, CRGB{10, 20, 30}, buf[i])
	}
	assert.Equal(t, guard, buf[5])
	assert.Equal(t, guard, buf[6])

	FillSolid(nil, guard)
}

func TestFillRainbow(t *testing.T) {
	got := make([]CRGB, 4)
	FillRainbow(got, 0, 64)
	want := []CRGB{
		Rainbow(CHSV{0, 255, 255}),
		Rainbow(CHSV{64, 255, 255}),
		Rainbow(CHSV{128, 255, 255}),
		Rainbow(CHSV{192, 255, 255}),
	}
	assert.Equal(t, want, got)
}

func TestFillRainbowWrapsHue(t *testing.T) {
	got := make([]CRGB, 3)
	FillRainbow(got, 200, 100)
	assert.Equal(t, Default.HueRainbow(200), got[0])
	assert.Equal(t, Default.HueRainbow(44), got[1])
	assert.Equal(t, Default.HueRainbow(144), got[2])
}

func TestSliceConversions(t *testing.T) {
	src := []CHSV{{0, 255, 255}, {90, 120, 200}, {250, 10, 30}}

	tt := []struct {
		name    string
		convert func([]CHSV, []CRGB) int
		single  func(CHSV) CRGB
	}{
		{"hsv2rgb", HSV2RGBSlice, HSV2RGB},
		{"spectrum", SpectrumSlice, Spectrum},
		{"rainbow", RainbowSlice, Rainbow},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			dst := make([]CRGB, len(src))
			assert.Equal(t, len(src), tc.convert(src, dst))
			for i := range src {
				assert.Equal(t, tc.single(src[i]), dst[i])
			}

			assert.Equal(t, 0, tc.convert(nil, dst))
			assert.Equal(t, 0, tc.convert(src, nil))

			short := make([]CRGB, 2)
			assert.Equal(t, 2, tc.convert(src, short))
			assert.Equal(t, tc.single(src[1]), short[1])
		})
	}
}

func TestColorfulBridge(t *testing.T) {
	c := CRGB{255, 128, 0}
	assert.Equal(t, "#ff8000", c.Hex())
	assert.Equal(t, c, FromColorful(c.Colorful()))
	assert.Equal(t, CRGB{255, 0, 0}, FromColorful(colorful.Color{R: 1.5, G: -1, B: 0}))

	r, g, b, a := CRGB{255, 0, 1}.RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0x0101, 0xffff}, []uint32{r, g, b, a})

	assert.Equal(t, CHSV{0, 255, 255}, CHSVFromColorful(colorful.Color{R: 1}))
	assert.Equal(t, CHSV{85, 255, 255}, CHSVFromColorful(colorful.Color{G: 1}))
	assert.Equal(t, CHSV{0, 0, 128}, CHSVFromColorful(colorful.Color{R: 0.5, G: 0.5, B: 0.5}))
}

func TestScaled(t *testing.T) {
	assert.Equal(t, CRGB{128, 1, 0}, CRGB{255, 1, 0}.Scaled(128))
	assert.Equal(t, Black, CRGB{255, 1, 0}.Scaled(0))
}
