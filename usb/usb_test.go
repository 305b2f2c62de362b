package usb

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drichelson/hsvleds/hsv"
)

func TestEncode(t *testing.T) {
	tt := []struct {
		name       string
		pixels     []hsv.CRGB
		brightness uint8
		want       []byte
	}{
		{
			"empty frame is just the header",
			nil,
			255,
			[]byte{'*', 238, 2},
		},
		{
			"full brightness",
			[]hsv.CRGB{{R: 255, G: 0, B: 0}, {R: 0, G: 255, B: 0}},
			255,
			[]byte{'*', 238, 2, 255, 0, 0, 0, 255, 0},
		},
		{
			"half brightness keeps dim pixels lit",
			[]hsv.CRGB{{R: 255, G: 128, B: 1}},
			128,
			[]byte{'*', 238, 2, 128, 65, 1},
		},
		{
			"zero brightness",
			[]hsv.CRGB{{R: 10, G: 20, B: 30}},
			0,
			[]byte{'*', 238, 2, 0, 0, 0},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Encode(RenderPackage{Pixels: tc.pixels, Brightness: tc.brightness}))
		})
	}
}

func TestEncodeLeavesPixelsAlone(t *testing.T) {
	pixels := []hsv.CRGB{{R: 200, G: 100, B: 50}}
	Encode(RenderPackage{Pixels: pixels, Brightness: 10})
	assert.Equal(t, hsv.CRGB{R: 200, G: 100, B: 50}, pixels[0])
}

func TestRenderBeforeInitialize(t *testing.T) {
	assert.ErrorIs(t, Render(RenderPackage{}), ErrNotInitialized)
}
