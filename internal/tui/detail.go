package tui

import (
	"fmt"
	"strconv"

	"github.com/apex/log"
	table "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/finnstaeblein/cs448b-assignment2/internal/film"
)

// openDetail fills the record table for one location and raises the overlay.
// Matching rows under the current criteria are marked in the first column.
func (m *Model) openDetail(idx int) {
	if idx < 0 || idx >= len(m.catalog.Locations) {
		return
	}
	loc := m.catalog.Locations[idx]
	cols := []table.Column{
		{Title: "", Width: 2},
		{Title: "Title", Width: 28},
		{Title: "Year", Width: 5},
		{Title: "Director", Width: 20},
		{Title: "Neighborhood", Width: 18},
	}
	rows := make([]table.Row, 0, len(loc.Records))
	for _, rec := range loc.Records {
		mark := ""
		if m.session.Criteria.Matches(rec) {
			mark = "●"
		}
		year := ""
		if rec.HasYear() {
			year = strconv.Itoa(rec.Year)
		}
		rows = append(rows, table.Row{mark, rec.Title, year, rec.Director, rec.Neighborhood})
	}
	// clear rows before swapping columns to avoid a transient width mismatch
	m.detail.SetRows(nil)
	m.detail.SetColumns(cols)
	m.detail.SetRows(rows)
	m.detail.SetHeight(min(len(rows)+1, 14))
	m.detailLoc = idx
	m.mode = overlayDetail
	m.status = "inspecting " + locLabel(loc)
	log.WithFields(log.Fields{"site": locLabel(loc), "films": len(loc.Records)}).Debug("inspect")
}

// renderDetail draws the detail overlay box for the currently inspected location.
func (m Model) renderDetail(w, h int) string {
	if m.detailLoc < 0 || m.detailLoc >= len(m.catalog.Locations) {
		return ""
	}
	loc := m.catalog.Locations[m.detailLoc]
	matches := 0
	for _, rec := range loc.Records {
		if m.session.Criteria.Matches(rec) {
			matches++
		}
	}
	title := titleStyle.Render(locLabel(loc)) +
		dimStyle.Render(fmt.Sprintf("  %d films, %d matching", len(loc.Records), matches))
	body := lipgloss.JoinVertical(lipgloss.Left, title, m.detail.View())
	return boxStyle.MaxWidth(w - 2).Render(body)
}

// locLabel names a location by its first member's place text. Member lists are never
// empty after aggregation.
func locLabel(loc *film.Location) string {
	if loc.Records[0].Site != "" {
		return loc.Records[0].Site
	}
	return loc.Records[0].Title
}
