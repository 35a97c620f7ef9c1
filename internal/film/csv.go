package film

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Recognized header names, matched case-insensitively after trimming.
const (
	colTitle        = "title"
	colYear         = "release year"
	colDirector     = "director"
	colActor1       = "actor 1"
	colActor2       = "actor 2"
	colActor3       = "actor 3"
	colSite         = "locations"
	colNeighborhood = "analysis neighborhood"
	colFunFacts     = "fun facts"
	colLon          = "longitude"
	colLat          = "latitude"
)

// ParseCSV reads film rows. Rows whose coordinates do not parse to finite numbers are
// dropped and counted, never returned; every other field is optional.
func ParseCSV(r io.Reader) (records []*Record, dropped int, err error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, 0, errors.New("empty csv")
	}
	idx := map[string]int{}
	for i, h := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	if _, ok := idx[colLon]; !ok {
		return nil, 0, errors.New("csv: longitude column not found")
	}
	if _, ok := idx[colLat]; !ok {
		return nil, 0, errors.New("csv: latitude column not found")
	}
	field := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	for _, row := range rows[1:] {
		rawLon := field(row, colLon)
		rawLat := field(row, colLat)
		lon, errLon := strconv.ParseFloat(rawLon, 64)
		lat, errLat := strconv.ParseFloat(rawLat, 64)
		if errLon != nil || errLat != nil || !finite(lon) || !finite(lat) {
			dropped++
			continue
		}
		rec := &Record{
			Title:        field(row, colTitle),
			Year:         parseYear(field(row, colYear)),
			Director:     field(row, colDirector),
			Site:         field(row, colSite),
			Neighborhood: field(row, colNeighborhood),
			FunFacts:     field(row, colFunFacts),
			Lon:          lon,
			Lat:          lat,
			coordKey:     rawLon + "," + rawLat,
		}
		for _, col := range []string{colActor1, colActor2, colActor3} {
			if v := field(row, col); v != "" {
				rec.Actors = append(rec.Actors, v)
			}
		}
		records = append(records, rec)
	}
	return records, dropped, nil
}

// LoadCSV reads a film dataset file.
func LoadCSV(path string) ([]*Record, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return ParseCSV(f)
}

// parseYear coerces the source year text; anything non-numeric means absent.
func parseYear(s string) int {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !finite(v) || v <= 0 {
		return 0
	}
	return int(v)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
