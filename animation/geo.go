package animation

import (
	"math"

	"github.com/StefanSchroeder/Golang-Ellipsoid/ellipsoid"
	"github.com/golang/geo/s2"
)

const (
	minVisibleLatitude = -48.75 //all points south of here don't have any pixels associated with them.
	latitudeRange      = 90.0 + 48.75
	epsilon            = 0.00001
)

var (
	// Create Ellipsoid object with WGS84-ellipsoid,
	geo = ellipsoid.Init(
		"WGS84",
		ellipsoid.Degrees,
		ellipsoid.Kilometer,
		ellipsoid.LongitudeIsSymmetric,
		ellipsoid.BearingNotSymmetric)
)

// toPoint travels distance km from start along bearing degrees.
func toPoint(start s2.Point, distance, bearing float64) s2.Point {
	startLatLong := s2.LatLngFromPoint(start)
	lat, lon := geo.At(startLatLong.Lat.Degrees(), startLatLong.Lng.Degrees(), distance, bearing)
	return s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon))
}

// bearingTo is the initial bearing in degrees of the geodesic from a to b.
func bearingTo(a, b s2.Point) float64 {
	all := s2.LatLngFromPoint(a)
	bll := s2.LatLngFromPoint(b)
	_, bearing := geo.To(all.Lat.Degrees(), all.Lng.Degrees(), bll.Lat.Degrees(), bll.Lng.Degrees())
	return bearing
}

func float64Equal(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a-b) / math.Abs(a)
	return diff < epsilon
}

// bearingsMatch compares bearings modulo a full turn, so 0 matches 359.99999.
func bearingsMatch(a, b float64) bool {
	if float64Equal(a, b) {
		return true
	}
	d := math.Mod(math.Abs(a-b), 360.0)
	return math.Min(d, 360.0-d) < 360.0*epsilon
}

func reverseBearing(bearing float64) float64 {
	if bearing >= 180.0 {
		return bearing - 180.0
	}
	return bearing + 180.0
}
