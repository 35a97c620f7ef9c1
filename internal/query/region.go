package query

// Canvas and control defaults for a browser session. The canvas is virtual: the
// renderer letterboxes it into whatever cell grid the terminal offers, so region
// geometry never depends on terminal size.
const (
	CanvasWidth  = 960.0
	CanvasHeight = 600.0

	DefaultRadius = 80.0
	RadiusMin     = 10.0
	RadiusMax     = 200.0
)

// Region is one circular query area. Center and radius are canvas pixels. Exactly two
// regions exist per session, owned by Session; they are only ever mutated from the
// UI goroutine.
type Region struct {
	X, Y float64
	R    float64

	w, h         float64 // clamp bounds
	homeX, homeY float64 // reset center
}

func newRegion(homeX, homeY, w, h float64) Region {
	return Region{X: homeX, Y: homeY, R: DefaultRadius, w: w, h: h, homeX: homeX, homeY: homeY}
}

// SetCenter clamps the center into the canvas; called continuously during drags.
func (r *Region) SetCenter(x, y float64) {
	r.X = clamp(x, 0, r.w)
	r.Y = clamp(y, 0, r.h)
}

// SetRadius stores the control value as-is; slider bounds belong to the caller.
func (r *Region) SetRadius(v float64) { r.R = v }

// Contains tests membership by squared distance. The boundary is inside.
func (r *Region) Contains(px, py float64) bool {
	dx, dy := px-r.X, py-r.Y
	return dx*dx+dy*dy <= r.R*r.R
}

// Reset restores the home center and default radius.
func (r *Region) Reset() {
	r.X, r.Y = r.homeX, r.homeY
	r.R = DefaultRadius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
