package film

import (
	"fmt"
	"os"

	geojson "github.com/paulmach/go.geojson"
)

// ParseGeoJSON reads film rows from a FeatureCollection of Point features whose
// properties carry the same names the CSV columns use. Non-Point features and
// features without finite coordinates are dropped and counted.
func ParseGeoJSON(data []byte) (records []*Record, dropped int, err error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, 0, fmt.Errorf("decode geojson: %w", err)
	}
	for _, f := range fc.Features {
		if f.Geometry == nil || !f.Geometry.IsPoint() || len(f.Geometry.Point) < 2 {
			dropped++
			continue
		}
		lon, lat := f.Geometry.Point[0], f.Geometry.Point[1]
		if !finite(lon) || !finite(lat) {
			dropped++
			continue
		}
		rec := &Record{
			Title:        f.PropertyMustString("Title", ""),
			Year:         propYear(f),
			Director:     f.PropertyMustString("Director", ""),
			Site:         f.PropertyMustString("Locations", ""),
			Neighborhood: f.PropertyMustString("Analysis Neighborhood", ""),
			FunFacts:     f.PropertyMustString("Fun Facts", ""),
			Lon:          lon,
			Lat:          lat,
		}
		for _, key := range []string{"Actor 1", "Actor 2", "Actor 3"} {
			if v := f.PropertyMustString(key, ""); v != "" {
				rec.Actors = append(rec.Actors, v)
			}
		}
		records = append(records, rec)
	}
	return records, dropped, nil
}

// LoadGeoJSON reads a film dataset file.
func LoadGeoJSON(path string) ([]*Record, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open dataset: %w", err)
	}
	return ParseGeoJSON(data)
}

// propYear accepts the release year as either a JSON number or a string property.
func propYear(f *geojson.Feature) int {
	if v := f.PropertyMustFloat64("Release Year", 0); finite(v) && v > 0 {
		return int(v)
	}
	return parseYear(f.PropertyMustString("Release Year", ""))
}
