package tui

import (
	"testing"

	"github.com/finnstaeblein/cs448b-assignment2/internal/film"
)

func TestFieldCounts(t *testing.T) {
	records := []*film.Record{
		{Director: "Hitchcock"},
		{Director: "Hitchcock"},
		{Director: "Bay"},
		{Director: ""},
	}
	counts := fieldCounts(records, func(r *film.Record) string { return r.Director })
	if counts["Hitchcock"] != 2 || counts["Bay"] != 1 {
		t.Errorf("counts = %v", counts)
	}
	if _, ok := counts[""]; ok {
		t.Error("empty values must not be counted")
	}
}

func TestNewPickerWildcardFirst(t *testing.T) {
	l := newPicker("Directors", []string{"Bay", "Hitchcock"}, map[string]int{"Bay": 1, "Hitchcock": 2})
	items := l.Items()
	if len(items) != 3 {
		t.Fatalf("items = %d, want wildcard + 2 options", len(items))
	}
	first, ok := items[0].(pickItem)
	if !ok || first.label != pickerAll {
		t.Errorf("first item = %#v, want the %q sentinel", items[0], pickerAll)
	}
	second := items[1].(pickItem)
	if second.label != "Bay" || second.count != 1 {
		t.Errorf("second item = %+v", second)
	}
}
