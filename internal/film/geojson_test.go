package film

import "testing"

const sampleGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "geometry": {"type": "Point", "coordinates": [-122.4262, 37.7647]},
      "properties": {
        "Title": "Vertigo", "Release Year": 1958, "Director": "Alfred Hitchcock",
        "Actor 1": "James Stewart", "Locations": "Mission Dolores",
        "Analysis Neighborhood": "Mission"
      }
    },
    {
      "type": "Feature",
      "geometry": {"type": "LineString", "coordinates": [[-122.4, 37.7], [-122.5, 37.8]]},
      "properties": {"Title": "Not A Point"}
    },
    {
      "type": "Feature",
      "geometry": {"type": "Point", "coordinates": [-122.4230, 37.8267]},
      "properties": {"Title": "The Rock", "Release Year": "1996", "Director": "Michael Bay"}
    }
  ]
}`

func TestParseGeoJSON(t *testing.T) {
	records, dropped, err := ParseGeoJSON([]byte(sampleGeoJSON))
	if err != nil {
		t.Fatalf("ParseGeoJSON: %v", err)
	}
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1 (the LineString)", dropped)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	v := records[0]
	if v.Title != "Vertigo" || v.Year != 1958 || v.Neighborhood != "Mission" {
		t.Errorf("first record = %+v", v)
	}
	if len(v.Actors) != 1 || v.Actors[0] != "James Stewart" {
		t.Errorf("actors = %v", v.Actors)
	}
	// the year arrives as a JSON string here
	if records[1].Year != 1996 {
		t.Errorf("string-typed year = %d, want 1996", records[1].Year)
	}
}

func TestParseGeoJSONRejectsGarbage(t *testing.T) {
	if _, _, err := ParseGeoJSON([]byte("{not json")); err == nil {
		t.Error("want a decode error")
	}
}
