package geo

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"
)

// kmPerDegreeLat is the meridian arc length of one degree, good enough at city scale.
const kmPerDegreeLat = 111.32

// Projection maps longitude/latitude onto a fixed pixel canvas. It is fit once so the
// bounding box diagonal lands exactly on the canvas corners and is immutable after;
// repeated Project calls with equal input return bit-identical output.
type Projection struct {
	merc   s2.Projection
	box    BBox
	lo, hi r2.Point // projected box corners
	sx, sy float64  // pixels per projected unit
	w, h   float64
}

// NewProjection fits a Mercator projection of box onto a width x height canvas.
func NewProjection(box BBox, width, height float64) *Projection {
	merc := s2.NewMercatorProjection(180)
	lo := merc.FromLatLng(s2.LatLngFromDegrees(box.MinLat, box.MinLon))
	hi := merc.FromLatLng(s2.LatLngFromDegrees(box.MaxLat, box.MaxLon))
	return &Projection{
		merc: merc,
		box:  box,
		lo:   lo,
		hi:   hi,
		sx:   width / (hi.X - lo.X),
		sy:   height / (hi.Y - lo.Y),
		w:    width,
		h:    height,
	}
}

// Project returns canvas coordinates for a longitude/latitude pair. North is up: the
// box's max latitude maps to y=0, its min longitude to x=0.
func (p *Projection) Project(lon, lat float64) (x, y float64) {
	pt := p.merc.FromLatLng(s2.LatLngFromDegrees(lat, lon))
	return (pt.X - p.lo.X) * p.sx, (p.hi.Y - pt.Y) * p.sy
}

// Width reports the canvas width the projection was fit to.
func (p *Projection) Width() float64 { return p.w }

// Height reports the canvas height the projection was fit to.
func (p *Projection) Height() float64 { return p.h }

// KmToPixels converts a ground distance to canvas pixels. The conversion linearizes
// at the box's center latitude: one degree of longitude there spans
// cos(lat) * kmPerDegreeLat km, so projecting a one-km eastward offset measures the
// pixel delta. Only valid near the map's center latitude.
func (p *Projection) KmToPixels(km float64) float64 {
	clon, clat := p.box.Center()
	degPerKm := 1 / (kmPerDegreeLat * math.Cos(clat*math.Pi/180))
	x0, _ := p.Project(clon, clat)
	x1, _ := p.Project(clon+degPerKm, clat)
	return km * math.Abs(x1-x0)
}

// PixelsToKm is the inverse of KmToPixels.
func (p *Projection) PixelsToKm(px float64) float64 {
	unit := p.KmToPixels(1)
	if unit == 0 {
		return 0
	}
	return px / unit
}
