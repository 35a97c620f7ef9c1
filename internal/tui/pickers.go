package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"

	"github.com/finnstaeblein/cs448b-assignment2/internal/film"
)

// pickerAll is the display label of the wildcard entry.
const pickerAll = "All"

// pickItem is one dropdown option with its record count.
type pickItem struct {
	label string
	count int
}

func (p pickItem) Title() string { return p.label }
func (p pickItem) Description() string {
	if p.count < 0 {
		return "every record"
	}
	return fmt.Sprintf("%d records", p.count)
}
func (p pickItem) FilterValue() string { return p.label }

// newPicker builds the filterable overlay list for one categorical control. Options
// arrive distinct and sorted from the catalog; the wildcard goes first.
func newPicker(title string, options []string, counts map[string]int) list.Model {
	items := make([]list.Item, 0, len(options)+1)
	items = append(items, pickItem{label: pickerAll, count: -1})
	for _, o := range options {
		items = append(items, pickItem{label: o, count: counts[o]})
	}
	d := list.NewDefaultDelegate()
	l := list.New(items, d, 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	return l
}

// fieldCounts tallies records per distinct non-empty value of one field.
func fieldCounts(records []*film.Record, field func(*film.Record) string) map[string]int {
	out := map[string]int{}
	for _, r := range records {
		if v := field(r); v != "" {
			out[v]++
		}
	}
	return out
}
