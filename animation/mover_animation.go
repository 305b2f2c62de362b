package animation

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/golang/geo/s2"
	"github.com/kpango/glg"

	"github.com/drichelson/hsvleds/hsv"
)

const (
	moverArea     = 0.05   // steradians
	moverMaxStep  = 1000.0 // km per frame at full speed
	moverHueSteps = 1      // hue advance per frame
)

// MoverAnimation sends a lit cap travelling around the sphere along a
// geodesic. The cap's hue cycles as it goes.
type MoverAnimation struct {
	control *Control
	conv    *hsv.Converter
	movers  []mover
}

type mover struct {
	cap     s2.Cap
	hue     uint8
	bearing float64
}

func (m *mover) String() string {
	ll := s2.LatLngFromPoint(m.cap.Center())
	return fmt.Sprintf("%s bearing: %3.2f hue: %d", ll.String(), m.bearing, m.hue)
}

func NewMoverAnimation(control *Control, conv *hsv.Converter) *MoverAnimation {
	return &MoverAnimation{
		control: control,
		conv:    conv,
		movers:  []mover{newMover(rand.New(rand.NewSource(time.Now().UnixNano())))},
	}
}

func newMover(r *rand.Rand) mover {
	center := s2.PointFromLatLng(s2.LatLngFromDegrees(r.Float64()*latitudeRange+minVisibleLatitude, r.Float64()*360.0-180.0))
	return mover{
		cap:     s2.CapFromCenterArea(center, moverArea),
		hue:     uint8(r.Intn(256)),
		bearing: 360.0,
	}
}

// move steps distance km along the current bearing. Crossing a pole flips
// the geodesic's direction, so the bearing is reversed whenever the way
// back no longer points where we came from.
func (m *mover) move(distance float64) {
	oldCenter := m.cap.Center()
	newCenter := toPoint(oldCenter, distance, m.bearing)

	if !bearingsMatch(reverseBearing(m.bearing), bearingTo(newCenter, oldCenter)) {
		m.bearing = reverseBearing(m.bearing)
		glg.Debugf("mover crossed a pole, bearing now %3.2f", m.bearing)
	}

	m.cap = s2.CapFromCenterArea(newCenter, moverArea)
	m.hue += moverHueSteps
}

func (a *MoverAnimation) frame(px *Pixels, elapsed time.Duration, frameCount int) {
	step := a.control.GetVar("speed") * moverMaxStep
	for i := range a.movers {
		if step > 0 {
			a.movers[i].move(step)
		}
	}

	for _, m := range a.movers {
		c := a.conv.HSV2RGB(hsv.CHSV{Hue: m.hue, Sat: 255, Val: 255})
		for i, p := range px.all {
			if m.cap.ContainsPoint(p.Point) {
				px.colors[i] = c
			}
		}
	}
}
