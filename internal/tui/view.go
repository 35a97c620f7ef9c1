package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// mapViewport computes the map pane geometry. Mouse handling and View must agree on
// it, so both go through here. Returns the viewport plus the pane origin in terminal
// cells.
func (m Model) mapViewport() (viewport, int, int) {
	headerHeight := 1
	footerHeight := 3
	w := max(10, m.width)
	h := m.height - headerHeight - footerHeight
	if h < 4 {
		h = 4
	}
	return newViewport(w, h), 0, headerHeight
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	v, _, _ := m.mapViewport()
	contentWidth := max(10, m.width)

	// Header
	header := titleStyle.Render(" filmscout ─ san francisco film locations ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	// Body: map pane, or whichever overlay owns the screen
	var body string
	switch m.mode {
	case overlayDirectors, overlayHoods:
		l := m.directors
		if m.mode == overlayHoods {
			l = m.hoods
		}
		l.SetSize(min(44, contentWidth-6), clampInt(v.h-2, 4, 22))
		body = lipgloss.Place(contentWidth, v.h, lipgloss.Center, lipgloss.Center, boxStyle.Render(l.View()))
	case overlayDetail:
		body = lipgloss.Place(contentWidth, v.h, lipgloss.Center, lipgloss.Center, m.renderDetail(contentWidth, v.h))
	case overlayHelp:
		body = lipgloss.Place(contentWidth, v.h, lipgloss.Center, lipgloss.Center, boxStyle.Render(m.renderHelp()))
	default:
		body = lipgloss.NewStyle().Width(v.w).Height(v.h).Render(m.renderMap(v.w, v.h))
	}

	footer := m.renderFooter(contentWidth)
	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderFooter(w int) string {
	a, b := &m.session.A, &m.session.B
	c := m.session.Criteria

	regA := fmt.Sprintf("A (%.0f,%.0f) r=%.0fpx %.1fkm", a.X, a.Y, a.R, m.proj.PixelsToKm(a.R))
	regB := fmt.Sprintf("B (%.0f,%.0f) r=%.0fpx %.1fkm", b.X, b.Y, b.R, m.proj.PixelsToKm(b.R))
	if m.active == 0 {
		regA = regionAStyle.Render("● " + regA)
		regB = dimStyle.Render("  " + regB)
	} else {
		regA = dimStyle.Render("  " + regA)
		regB = regionBStyle.Render("● " + regB)
	}
	line1 := lipgloss.NewStyle().Width(w).Render(" " + regA + "   " + regB)

	crit := fmt.Sprintf(" years %d-%d  director %s  neighborhood %s", c.YearMin, c.YearMax, c.Director, c.Neighborhood)
	counts := fmt.Sprintf("%d/%d records · %d locations", m.matched, len(m.catalog.Records), len(m.catalog.Locations))
	if m.catalog.Dropped > 0 {
		counts += fmt.Sprintf(" · %d dropped", m.catalog.Dropped)
	}
	counts += " "
	spacer := max(0, w-lipgloss.Width(crit)-lipgloss.Width(counts))
	line2 := crit + strings.Repeat(" ", spacer) + dimStyle.Render(counts)

	status := dimStyle.Render(" " + m.status)
	right := ""
	if m.hoverLoc >= 0 && m.hoverLoc < len(m.catalog.Locations) {
		loc := m.catalog.Locations[m.hoverLoc]
		right = dimStyle.Render(fmt.Sprintf("%s · %d films ", locLabel(loc), len(loc.Records)))
	} else {
		hint := "tab a b regions · arrows move · +/- size · d n pickers · r reset · ? help · q quit "
		if lipgloss.Width(status)+lipgloss.Width(hint) <= w {
			right = dimStyle.Render(hint)
		}
	}
	spacer = max(0, w-lipgloss.Width(status)-lipgloss.Width(right))
	line3 := status + strings.Repeat(" ", spacer) + right

	return lipgloss.JoinVertical(lipgloss.Left, line1, line2, line3)
}

func (m Model) renderHelp() string {
	lines := []string{
		"filmscout keys",
		"",
		"tab / a / b   switch the active region",
		"arrows        move the active region",
		"+ / -         grow / shrink its radius",
		"[ / ]         lower / raise the min year",
		"{ / }         lower / raise the max year",
		"d / n         director / neighborhood picker",
		"i             inspect the location nearest the active region",
		"r             reset regions and criteria",
		"mouse         drag a circle, wheel resizes, click a dot for details",
		"q             quit",
	}
	return strings.Join(lines, "\n")
}
