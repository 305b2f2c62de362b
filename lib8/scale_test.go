package lib8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScale8(t *testing.T) {
	tt := []struct {
		name  string
		i     uint8
		scale uint8
		want  uint8
	}{
		{"zero input", 0, 255, 0},
		{"zero scale", 255, 0, 0},
		{"full scale loses one", 255, 255, 254},
		{"half", 200, 128, 100},
		{"hue compression", 255, 192, 191},
		{"third", 248, 85, 82},
		{"truncates", 1, 255, 0},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Scale8(tc.i, tc.scale))
		})
	}
}

func TestScale8Video(t *testing.T) {
	assert.Equal(t, uint8(0), Scale8Video(0, 255))
	assert.Equal(t, uint8(0), Scale8Video(255, 0))
	assert.Equal(t, uint8(1), Scale8Video(1, 1))
	assert.Equal(t, uint8(255), Scale8Video(255, 255))
}

func TestNScale8x3(t *testing.T) {
	r, g, b := uint8(255), uint8(128), uint8(0)
	NScale8x3(&r, &g, &b, 128)
	assert.Equal(t, []uint8{127, 64, 0}, []uint8{r, g, b})
}

func TestNScale8x3Video(t *testing.T) {
	tt := []struct {
		name  string
		in    [3]uint8
		scale uint8
		want  [3]uint8
	}{
		{"zero channel stays zero", [3]uint8{255, 0, 0}, 255, [3]uint8{255, 0, 0}},
		{"zero scale blacks out", [3]uint8{255, 10, 1}, 0, [3]uint8{0, 0, 0}},
		{"dim channel survives", [3]uint8{1, 2, 3}, 1, [3]uint8{1, 1, 1}},
		{"mid scale", [3]uint8{171, 85, 0}, 254, [3]uint8{170, 85, 0}},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			r, g, b := tc.in[0], tc.in[1], tc.in[2]
			NScale8x3Video(&r, &g, &b, tc.scale)
			assert.Equal(t, tc.want, [3]uint8{r, g, b})
		})
	}
}

func TestVideoNeverClipsToBlack(t *testing.T) {
	for c := 1; c < 256; c++ {
		for s := 1; s < 256; s++ {
			r, g, b := uint8(c), uint8(c), uint8(c)
			NScale8x3Video(&r, &g, &b, uint8(s))
			if r == 0 {
				t.Fatalf("NScale8x3Video(%d, %d) = 0", c, s)
			}
			// Never brighter than the input.
			if r > uint8(c) {
				t.Fatalf("NScale8x3Video(%d, %d) = %d", c, s, r)
			}
		}
	}
}

func TestDimCurvesAreMonotonic(t *testing.T) {
	for _, curve := range []func(uint8) uint8{Dim8Raw, Dim8Video} {
		prev := curve(0)
		for x := 1; x < 256; x++ {
			v := curve(uint8(x))
			assert.GreaterOrEqual(t, v, prev)
			prev = v
		}
	}
	assert.Equal(t, uint8(64), Dim8Raw(128))
	assert.Equal(t, uint8(1), Dim8Video(1))
	assert.Equal(t, uint8(0), Dim8Raw(1))
}
