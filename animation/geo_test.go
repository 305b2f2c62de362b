package animation

import (
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
)

//earth circum: 40,075 km

func TestToPointHeadingNorth(t *testing.T) {
	startPoint := s2.PointFromLatLng(s2.LatLngFromDegrees(0.0, 0.0))
	prevLat := 0.0
	for distance := 1000.0; distance <= 9000.0; distance += 1000.0 {
		end := s2.LatLngFromPoint(toPoint(startPoint, distance, 0.0))
		assert.Greater(t, end.Lat.Degrees(), prevLat)
		assert.InDelta(t, 0.0, end.Lng.Degrees(), 1e-6)
		prevLat = end.Lat.Degrees()
	}
	// A quarter meridian is about 10,002 km.
	assert.InDelta(t, 45.0, s2.LatLngFromPoint(toPoint(startPoint, 5001.0, 0.0)).Lat.Degrees(), 0.5)
}

func TestBearingTo(t *testing.T) {
	a := s2.PointFromLatLng(s2.LatLngFromDegrees(0.0, 0.0))
	east := s2.PointFromLatLng(s2.LatLngFromDegrees(0.0, 10.0))
	south := s2.PointFromLatLng(s2.LatLngFromDegrees(-10.0, 0.0))
	assert.InDelta(t, 90.0, bearingTo(a, east), 1e-3)
	assert.InDelta(t, 180.0, bearingTo(a, south), 1e-3)
}

func TestFloat64Equal(t *testing.T) {
	assert.True(t, float64Equal(0.0, 0.0))
	assert.True(t, float64Equal(180.0, 180.0))
	assert.True(t, float64Equal(180.0, 180.0000001))

	assert.False(t, float64Equal(-180.0, 180.0))
	assert.False(t, float64Equal(-180.0, 180.001))
}

func TestBearingsMatch(t *testing.T) {
	assert.True(t, bearingsMatch(0.0, 359.99999))
	assert.True(t, bearingsMatch(360.0, 0.0))
	assert.True(t, bearingsMatch(90.0, 90.0000001))
	assert.False(t, bearingsMatch(0.0, 180.0))
	assert.False(t, bearingsMatch(10.0, 10.1))
}

func TestReverseBearing(t *testing.T) {
	assert.Equal(t, 0.0, reverseBearing(180.0))
	assert.Equal(t, 180.0, reverseBearing(0.0))
	assert.Equal(t, 180.0, reverseBearing(360.0))
	assert.Equal(t, 270.0, reverseBearing(90.0))
}
