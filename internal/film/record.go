package film

import "strconv"

// Record is one row of the film-locations dataset. Immutable after load.
type Record struct {
	Title        string
	Year         int // 0 when the source year is absent or malformed
	Director     string
	Actors       []string
	Site         string // free-text shooting-place description
	Neighborhood string
	FunFacts     string
	Lon          float64
	Lat          float64

	coordKey string // raw source coordinate text
}

// HasYear reports whether the source row carried a usable release year.
func (r *Record) HasYear() bool { return r.Year > 0 }

// Key is the exact-match grouping key: the coordinate text as it appeared in the
// source, so "-122.40" and "-122.4" stay distinct locations. Records built without
// source text fall back to a canonical float form.
func (r *Record) Key() string {
	if r.coordKey != "" {
		return r.coordKey
	}
	return strconv.FormatFloat(r.Lon, 'f', -1, 64) + "," + strconv.FormatFloat(r.Lat, 'f', -1, 64)
}
