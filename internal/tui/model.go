package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/finnstaeblein/cs448b-assignment2/internal/film"
	"github.com/finnstaeblein/cs448b-assignment2/internal/geo"
	"github.com/finnstaeblein/cs448b-assignment2/internal/query"
)

// overlay identifies which modal pane owns key input.
type overlay int

const (
	overlayNone overlay = iota
	overlayDirectors
	overlayHoods
	overlayDetail
	overlayHelp
)

// Movement steps per key press, canvas pixels.
const (
	moveStep = 10.0
	sizeStep = 5.0
)

type Model struct {
	width  int
	height int

	catalog *film.Catalog
	proj    *geo.Projection
	session *query.Session

	// last evaluation pass, parallel to catalog.Locations
	results []query.Visibility
	matched int

	active int // 0 = region A, 1 = region B
	status string

	// mouse drag state
	dragging   bool
	dragRegion int

	// hovered location, -1 when none
	hoverLoc int

	// overlays
	mode      overlay
	directors list.Model
	hoods     list.Model
	detail    table.Model
	detailLoc int
}

// New builds the initial model and runs the first evaluation pass.
func New(catalog *film.Catalog, proj *geo.Projection, session *query.Session) Model {
	m := Model{
		catalog:   catalog,
		proj:      proj,
		session:   session,
		hoverLoc:  -1,
		detailLoc: -1,
	}
	m.directors = newPicker("Directors", catalog.Directors,
		fieldCounts(catalog.Records, func(r *film.Record) string { return r.Director }))
	m.hoods = newPicker("Neighborhoods", catalog.Neighborhoods,
		fieldCounts(catalog.Records, func(r *film.Record) string { return r.Neighborhood }))
	m.detail = table.New(table.WithFocused(true))
	m.detail.SetHeight(12)
	m.status = fmt.Sprintf("loaded %s: %d records at %d locations", catalog.Name, len(catalog.Records), len(catalog.Locations))
	if catalog.Dropped > 0 {
		m.status += fmt.Sprintf(" (%d rows dropped)", catalog.Dropped)
	}
	m.refilter()
	return m
}

// refilter reruns the evaluation pass; called after every region or criteria change.
func (m *Model) refilter() {
	m.results, m.matched = m.session.Evaluate(m.catalog.Locations)
}

func (m Model) regionName() string {
	if m.active == 0 {
		return "A"
	}
	return "B"
}

func (m Model) Init() tea.Cmd { return nil }
