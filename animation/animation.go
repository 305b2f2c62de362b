package animation

import (
	"fmt"
	"time"

	"github.com/golang/geo/s2"
	"github.com/kpango/glg"
	"github.com/rcrowley/go-metrics"

	"github.com/drichelson/hsvleds/hsv"
	"github.com/drichelson/hsvleds/usb"
)

const (
	ColumnCount = 64
	RowCount    = 20
	pixelCount  = ColumnCount * RowCount

	fpsWindow = 1000
)

type Animation interface {
	frame(px *Pixels, elapsed time.Duration, frameCount int)
}

// Pixel is the fixed position of one LED on the sphere.
type Pixel struct {
	col   int
	row   int
	x     float64
	y     float64
	z     float64
	Point s2.Point
	Lat   float64
	Lon   float64
}

// Pixels holds the layout and the frame being drawn. colors is row-major,
// matching the strip wiring.
type Pixels struct {
	all    []Pixel
	colors []hsv.CRGB
}

// NewPixels lays the rows out evenly from the north pole down to the lowest
// visible latitude, and the columns evenly around the equator.
func NewPixels() *Pixels {
	p := &Pixels{
		all:    make([]Pixel, 0, pixelCount),
		colors: make([]hsv.CRGB, pixelCount),
	}
	for row := 0; row < RowCount; row++ {
		lat := 90.0 - (float64(row)+0.5)*latitudeRange/RowCount
		for col := 0; col < ColumnCount; col++ {
			lon := -180.0 + (float64(col)+0.5)*360.0/ColumnCount
			point := s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon))
			p.all = append(p.all, Pixel{
				col:   col,
				row:   row,
				x:     point.X,
				y:     point.Y,
				z:     point.Z,
				Point: point,
				Lat:   lat,
				Lon:   lon,
			})
		}
	}
	return p
}

func (p *Pixels) row(r int) []hsv.CRGB {
	return p.colors[r*ColumnCount : (r+1)*ColumnCount]
}

func (p *Pixels) reset() {
	hsv.FillSolid(p.colors, hsv.Black)
}

// Colors returns a copy of the current frame.
func (p *Pixels) Colors() []hsv.CRGB {
	out := make([]hsv.CRGB, len(p.colors))
	copy(out, p.colors)
	return out
}

// Names lists the animations NewAnimation knows.
var Names = []string{"rainbow", "solid", "spectrum", "noise", "mover", "brightness", "pattern"}

func NewAnimation(name string, control *Control, conv *hsv.Converter) (Animation, error) {
	switch name {
	case "rainbow":
		return NewRainbowAnimation(control, conv), nil
	case "solid":
		return NewSolidAnimation(control, conv), nil
	case "spectrum":
		return NewSpectrumAnimation(control, conv), nil
	case "noise":
		return NewOpenSimplexAnimation(control, conv, time.Now().UnixNano()), nil
	case "mover":
		return NewMoverAnimation(control, conv), nil
	case "brightness":
		return NewBrightnessTestAnimation(conv), nil
	case "pattern":
		return NewTestPatternAnimation(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAnimation, name)
}

// Start runs the named animation forever, handing frames to a USB goroutine
// that reconnects whenever a transfer fails.
func Start(name string, control *Control, conv *hsv.Converter) error {
	a, err := NewAnimation(name, control, conv)
	if err != nil {
		return err
	}

	renderCh := make(chan usb.RenderPackage, 1)
	go func() {
		for {
			usbErr := usb.Initialize()
			for usbErr != nil {
				glg.Warnf("USB not ready: %v", usbErr)
				time.Sleep(1 * time.Second)
				usbErr = usb.Initialize()
			}
			for {
				renderErr := usb.Render(<-renderCh)
				if renderErr != nil {
					glg.Errorf("Render failed, reconnecting: %v", renderErr)
					break
				}
			}
		}
	}()

	pixels := NewPixels()
	frameTimer := metrics.GetOrRegisterTimer("frame", metrics.DefaultRegistry)
	startTime := time.Now()
	checkPointTime := startTime
	frameCount := 0

	glg.Infof("Starting %s animation on %d pixels", name, pixelCount)
	for {
		frameStart := time.Now()
		a.frame(pixels, time.Since(startTime), frameCount)
		renderCh <- usb.RenderPackage{
			Pixels:     pixels.Colors(),
			Brightness: control.GetVar8("brightness"),
		}
		pixels.reset()
		frameTimer.UpdateSince(frameStart)
		frameCount++
		if frameCount%fpsWindow == 0 {
			newCheckPointTime := time.Now()
			glg.Infof("Avg FPS for past %d frames: %.1f (mean frame %.2fms)",
				fpsWindow,
				fpsWindow/newCheckPointTime.Sub(checkPointTime).Seconds(),
				frameTimer.Mean()/float64(time.Millisecond))
			checkPointTime = newCheckPointTime
		}
	}
}

// hueAt turns a running time into a hue that advances speed turns of the
// wheel per second.
func hueAt(elapsed time.Duration, speed float64) uint8 {
	return uint8(int64(elapsed.Seconds()*speed*256.0) & 0xff)
}
