package geo

import "github.com/golang/geo/s2"

const earthRadiusKm = 6371.0

// BBox is a geographic bounding box in degrees.
type BBox struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

// SanFrancisco is the fixed extent the map canvas covers. Every projection in the
// browser is fit to this box, not to the loaded data.
var SanFrancisco = BBox{
	MinLon: -122.52469,
	MinLat: 37.69862,
	MaxLon: -122.35698,
	MaxLat: 37.83858,
}

// Center returns the box midpoint in degrees.
func (b BBox) Center() (lon, lat float64) {
	return (b.MinLon + b.MaxLon) / 2, (b.MinLat + b.MaxLat) / 2
}

// DiagonalKm is the great-circle length of the box diagonal.
func (b BBox) DiagonalKm() float64 {
	lo := s2.LatLngFromDegrees(b.MinLat, b.MinLon)
	hi := s2.LatLngFromDegrees(b.MaxLat, b.MaxLon)
	return lo.Distance(hi).Radians() * earthRadiusKm
}
