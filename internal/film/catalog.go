package film

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/finnstaeblein/cs448b-assignment2/internal/geo"
)

// Display radius range for location dots, canvas pixels.
const (
	dotRadiusMin = 3.0
	dotRadiusMax = 10.0
)

// Projector maps geographic coordinates to canvas coordinates.
type Projector interface {
	Project(lon, lat float64) (x, y float64)
}

// Location is every record sharing one raw source coordinate. The member list keeps
// first-seen order; canvas position and display radius are fixed at aggregation and
// never change afterwards.
type Location struct {
	Lon, Lat float64
	X, Y     float64
	Radius   float64
	Records  []*Record
}

// Catalog is the loaded working set plus the option lists derived from it.
type Catalog struct {
	Name          string
	Records       []*Record
	Locations     []*Location
	Directors     []string
	Neighborhoods []string
	Dropped       int
	Extent        geo.BBox
}

// Load reads a dataset (.csv, .geojson or .json by extension) and builds the catalog.
func Load(path string, proj Projector) (*Catalog, error) {
	var (
		records []*Record
		dropped int
		err     error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		records, dropped, err = LoadCSV(path)
	case ".geojson", ".json":
		records, dropped, err = LoadGeoJSON(path)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", ext)
	}
	if err != nil {
		return nil, err
	}
	c := &Catalog{
		Name:          filepath.Base(path),
		Records:       records,
		Locations:     Aggregate(records, proj),
		Directors:     distinct(records, func(r *Record) string { return r.Director }),
		Neighborhoods: distinct(records, func(r *Record) string { return r.Neighborhood }),
		Dropped:       dropped,
		Extent:        extent(records),
	}
	return c, nil
}

// Aggregate groups records by raw coordinate key, preserving first-seen order both
// across locations and inside each member list, and derives every location's canvas
// position and display radius. One pass, hash-keyed.
func Aggregate(records []*Record, proj Projector) []*Location {
	byKey := make(map[string]*Location, len(records))
	var locs []*Location
	for _, rec := range records {
		loc := byKey[rec.Key()]
		if loc == nil {
			x, y := proj.Project(rec.Lon, rec.Lat)
			loc = &Location{Lon: rec.Lon, Lat: rec.Lat, X: x, Y: y}
			byKey[rec.Key()] = loc
			locs = append(locs, loc)
		}
		loc.Records = append(loc.Records, rec)
	}
	maxMembers := 0
	for _, loc := range locs {
		if len(loc.Records) > maxMembers {
			maxMembers = len(loc.Records)
		}
	}
	for _, loc := range locs {
		loc.Radius = dotRadius(len(loc.Records), maxMembers)
	}
	return locs
}

// dotRadius is a square-root scale from member count over [1, max] to the display
// radius range, so dot area tracks count. A [1, 1] domain collapses to the low end
// of the range instead of dividing by zero.
func dotRadius(count, max int) float64 {
	if max <= 1 {
		return dotRadiusMin
	}
	t := (math.Sqrt(float64(count)) - 1) / (math.Sqrt(float64(max)) - 1)
	return dotRadiusMin + t*(dotRadiusMax-dotRadiusMin)
}

// distinct collects the sorted unique non-empty values of one field.
func distinct(records []*Record, field func(*Record) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range records {
		v := field(r)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// extent is the data bounding box. It only feeds the load log line; rendering always
// uses the fixed city box.
func extent(records []*Record) geo.BBox {
	var b geo.BBox
	for i, r := range records {
		if i == 0 {
			b = geo.BBox{MinLon: r.Lon, MinLat: r.Lat, MaxLon: r.Lon, MaxLat: r.Lat}
			continue
		}
		if r.Lon < b.MinLon {
			b.MinLon = r.Lon
		}
		if r.Lat < b.MinLat {
			b.MinLat = r.Lat
		}
		if r.Lon > b.MaxLon {
			b.MaxLon = r.Lon
		}
		if r.Lat > b.MaxLat {
			b.MaxLat = r.Lat
		}
	}
	return b
}
