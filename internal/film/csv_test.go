package film

import (
	"strings"
	"testing"
)

const sampleCSV = `Title,Release Year,Director,Actor 1,Actor 2,Actor 3,Locations,Analysis Neighborhood,Fun Facts,Longitude,Latitude
Vertigo,1958,Alfred Hitchcock,James Stewart,Kim Novak,,Mission Dolores,Mission,,-122.4262,37.7647
The Rock,1996,Michael Bay,Sean Connery,Nicolas Cage,Ed Harris,Alcatraz Island,North Beach,Closed set,-122.4230,37.8267
Broken Row,1990,,,,,Nowhere,,,not-a-number,37.77
Gap Row,,,,,,"Pier 39",,,-122.4103,
Bullitt,1968,Peter Yates,Steve McQueen,,,Taylor Street,Nob Hill,,-122.4262,37.7647
`

func TestParseCSV(t *testing.T) {
	records, dropped, err := ParseCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if dropped != 2 {
		t.Errorf("dropped = %d, want 2 (bad longitude, missing latitude)", dropped)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}

	v := records[0]
	if v.Title != "Vertigo" || v.Year != 1958 || v.Director != "Alfred Hitchcock" {
		t.Errorf("first record = %+v", v)
	}
	if len(v.Actors) != 2 || v.Actors[0] != "James Stewart" {
		t.Errorf("actors = %v, want the two non-empty names", v.Actors)
	}
	if v.Site != "Mission Dolores" || v.Neighborhood != "Mission" {
		t.Errorf("site/neighborhood = %q/%q", v.Site, v.Neighborhood)
	}
	if v.Lon != -122.4262 || v.Lat != 37.7647 {
		t.Errorf("coords = (%v, %v)", v.Lon, v.Lat)
	}
}

func TestParseCSVHeaderCaseInsensitive(t *testing.T) {
	in := "TITLE,release year,LONGITUDE,Latitude\nFoo,2001,-122.4,37.77\n"
	records, dropped, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if dropped != 0 || len(records) != 1 {
		t.Fatalf("records = %d dropped = %d, want 1 and 0", len(records), dropped)
	}
	if records[0].Title != "Foo" || records[0].Year != 2001 {
		t.Errorf("record = %+v", records[0])
	}
}

func TestParseCSVMissingCoordinateColumns(t *testing.T) {
	if _, _, err := ParseCSV(strings.NewReader("Title,Director\nFoo,Bar\n")); err == nil {
		t.Error("want an error when the coordinate columns are absent")
	}
}

func TestParseCSVKeyKeepsRawText(t *testing.T) {
	// Same numeric value, different source text: distinct grouping keys.
	in := "Title,Longitude,Latitude\nA,-122.40,37.77\nB,-122.4,37.77\n"
	records, _, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if records[0].Key() == records[1].Key() {
		t.Errorf("keys must preserve the raw text: %q vs %q", records[0].Key(), records[1].Key())
	}
}

func TestParseYear(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"1958", 1958},
		{"1958.0", 1958},
		{"", 0},
		{"unknown", 0},
		{"-3", 0},
		{"NaN", 0},
	}
	for _, c := range cases {
		if got := parseYear(c.in); got != c.want {
			t.Errorf("parseYear(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
