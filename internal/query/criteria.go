package query

import "github.com/finnstaeblein/cs448b-assignment2/internal/film"

// All is the categorical wildcard.
const All = "all"

// Year slider bounds.
const (
	YearFloor = 1915
	YearCeil  = 2023
)

// Criteria is the scalar and categorical filter snapshot.
type Criteria struct {
	YearMin      int
	YearMax      int
	Director     string
	Neighborhood string
}

func DefaultCriteria() Criteria {
	return Criteria{YearMin: YearFloor, YearMax: YearCeil, Director: All, Neighborhood: All}
}

// SetYearMin keeps yearMin <= yearMax by clamping the bound being changed.
func (c *Criteria) SetYearMin(v int) {
	if v > c.YearMax {
		v = c.YearMax
	}
	c.YearMin = v
}

// SetYearMax keeps yearMin <= yearMax by clamping the bound being changed.
func (c *Criteria) SetYearMax(v int) {
	if v < c.YearMin {
		v = c.YearMin
	}
	c.YearMax = v
}

// Matches reports whether one record passes the snapshot. A record without a year
// passes any range.
func (c Criteria) Matches(r *film.Record) bool {
	if r.HasYear() && (r.Year < c.YearMin || r.Year > c.YearMax) {
		return false
	}
	if c.Director != All && r.Director != c.Director {
		return false
	}
	if c.Neighborhood != All && r.Neighborhood != c.Neighborhood {
		return false
	}
	return true
}
