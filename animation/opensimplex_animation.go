package animation

import (
	"math"
	"time"

	"github.com/kpango/glg"
	"github.com/ojrac/opensimplex-go"
	"github.com/rcrowley/go-metrics"

	"github.com/drichelson/hsvleds/hsv"
)

const (
	histoLogEvery = 1000
	// Simplex noise clusters around zero; spreading it lines the hue
	// percentiles up with the wheel.
	noiseSpreader = 1.92
)

// OpenSimplexAnimation samples 4D simplex noise at every pixel, the fourth
// axis being time, and reads the result as a hue on the rainbow wheel.
// varA rotates the hues, varB sets saturation. min and max track the noise
// seen so far and are used to stretch it over the whole wheel.
type OpenSimplexAnimation struct {
	control *Control
	conv    *hsv.Converter
	noise   opensimplex.Noise
	histo   metrics.Histogram
	hsvs    []hsv.CHSV
	min     float64
	max     float64
}

func NewOpenSimplexAnimation(control *Control, conv *hsv.Converter, seed int64) *OpenSimplexAnimation {
	return &OpenSimplexAnimation{
		control: control,
		conv:    conv,
		noise:   opensimplex.New(seed),
		histo:   metrics.GetOrRegisterHistogram("noise.hue", metrics.DefaultRegistry, metrics.NewExpDecaySample(pixelCount*100, 0.015)),
		hsvs:    make([]hsv.CHSV, pixelCount),
	}
}

func (a *OpenSimplexAnimation) frame(px *Pixels, elapsed time.Duration, frameCount int) {
	t := (a.control.GetVar("speed") / 2.0) * elapsed.Seconds()
	rotate := a.control.GetVar8("varA")
	sat := a.control.GetVar8("varB")
	for i, p := range px.all {
		noiseVal := a.noise.Eval4(p.x, p.y, p.z, t)
		a.min = math.Min(a.min, noiseVal)
		a.max = math.Max(a.max, noiseVal)
		hue := noiseHue(a.normalizeNoiseValue(noiseVal))
		a.histo.Update(int64(hue))
		a.hsvs[i] = hsv.CHSV{Hue: hue + rotate, Sat: sat, Val: 255}
	}
	a.conv.RainbowSlice(a.hsvs, px.colors)

	if frameCount%histoLogEvery == histoLogEvery-1 {
		snapshot := a.histo.Snapshot()
		ps := snapshot.Percentiles([]float64{0.1, 0.5, 0.9})
		glg.Debugf("Noise hue histo: min: %d P10: %.0f P50: %.0f P90: %.0f max: %d",
			snapshot.Min(), ps[0], ps[1], ps[2], snapshot.Max())
	}
}

// normalizeNoiseValue spreads raw noise, clamps it to the range seen so far
// and rescales it to 0..1.
func (a *OpenSimplexAnimation) normalizeNoiseValue(noiseVal float64) float64 {
	histoDiff := a.max - a.min
	if histoDiff <= 0 {
		return 0.5
	}
	noiseVal = noiseVal * noiseSpreader
	noiseVal = math.Max(a.min, noiseVal)
	noiseVal = math.Min(a.max, noiseVal)
	return (noiseVal - a.min) / histoDiff
}

// noiseHue maps normalized noise in [0, 1] onto the hue wheel.
func noiseHue(n float64) uint8 {
	switch {
	case n <= 0:
		return 0
	case n >= 1:
		return 255
	}
	return uint8(n * 256.0)
}
