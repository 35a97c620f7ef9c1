package query

import "github.com/finnstaeblein/cs448b-assignment2/internal/film"

// Session owns the two query regions and the criteria snapshot. All mutation funnels
// through it from the single UI goroutine; there is never a second writer.
type Session struct {
	A, B     Region
	Criteria Criteria
}

// NewSession places region A a third of the way across the canvas and B two thirds,
// both vertically centered.
func NewSession() *Session {
	return &Session{
		A:        newRegion(CanvasWidth/3, CanvasHeight/2, CanvasWidth, CanvasHeight),
		B:        newRegion(2*CanvasWidth/3, CanvasHeight/2, CanvasWidth, CanvasHeight),
		Criteria: DefaultCriteria(),
	}
}

// Region returns the region for index 0 (A) or 1 (B).
func (s *Session) Region(i int) *Region {
	if i == 0 {
		return &s.A
	}
	return &s.B
}

// BothContain is the intersection test; region order does not matter. Disjoint
// regions simply make it constant false.
func (s *Session) BothContain(px, py float64) bool {
	return s.A.Contains(px, py) && s.B.Contains(px, py)
}

// Reset restores both regions and the criteria defaults.
func (s *Session) Reset() {
	s.A.Reset()
	s.B.Reset()
	s.Criteria = DefaultCriteria()
}

// Visibility is the per-location outcome of one evaluation pass.
type Visibility struct {
	Visible bool
	Matches int
}

// Evaluate recomputes visibility for every location from scratch: a location shows
// iff its cached canvas point lies in both regions and at least one member record
// passes the criteria. The total sums matching members over visible locations. The
// result slice is parallel to locations.
func (s *Session) Evaluate(locations []*film.Location) ([]Visibility, int) {
	out := make([]Visibility, len(locations))
	total := 0
	for i, loc := range locations {
		if !s.BothContain(loc.X, loc.Y) {
			continue
		}
		n := 0
		for _, rec := range loc.Records {
			if s.Criteria.Matches(rec) {
				n++
			}
		}
		if n > 0 {
			out[i] = Visibility{Visible: true, Matches: n}
			total += n
		}
	}
	return out, total
}
