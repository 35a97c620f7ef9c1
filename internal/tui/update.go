package tui

import (
	"fmt"

	"github.com/apex/log"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/finnstaeblein/cs448b-assignment2/internal/query"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		log.WithFields(log.Fields{"w": msg.Width, "h": msg.Height}).Debug("resize")
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case overlayDirectors, overlayHoods:
		return m.handlePickerKey(msg)
	case overlayDetail:
		switch msg.String() {
		case "esc", "q", "enter":
			m.mode = overlayNone
			return m, nil
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	case overlayHelp:
		// any key closes
		m.mode = overlayNone
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.active = 1 - m.active
		m.status = "region " + m.regionName() + " active"
	case "a":
		m.active = 0
		m.status = "region A active"
	case "b":
		m.active = 1
		m.status = "region B active"
	case "up":
		m.moveActive(0, -moveStep)
	case "down":
		m.moveActive(0, moveStep)
	case "left":
		m.moveActive(-moveStep, 0)
	case "right":
		m.moveActive(moveStep, 0)
	case "+", "=":
		m.resizeActive(sizeStep)
	case "-", "_":
		m.resizeActive(-sizeStep)
	case "[":
		m.shiftYearMin(-1)
	case "]":
		m.shiftYearMin(1)
	case "{":
		m.shiftYearMax(-1)
	case "}":
		m.shiftYearMax(1)
	case "d":
		m.directors.ResetFilter()
		m.mode = overlayDirectors
	case "n":
		m.hoods.ResetFilter()
		m.mode = overlayHoods
	case "i":
		reg := m.session.Region(m.active)
		if idx := m.nearestLocation(reg.X, reg.Y, 60); idx >= 0 {
			m.openDetail(idx)
		} else {
			m.status = "no location near region " + m.regionName()
		}
	case "r":
		m.session.Reset()
		m.refilter()
		m.status = "defaults restored"
	case "?":
		m.mode = overlayHelp
	}
	return m, nil
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	l := &m.directors
	if m.mode == overlayHoods {
		l = &m.hoods
	}
	// While a filter is being typed the list owns every key.
	if l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		*l, cmd = l.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "esc":
		m.mode = overlayNone
		return m, nil
	case "enter":
		if it, ok := l.SelectedItem().(pickItem); ok {
			m.applyPick(it.label)
		}
		m.mode = overlayNone
		return m, nil
	}
	var cmd tea.Cmd
	*l, cmd = l.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != overlayNone {
		return m, nil
	}
	v, ox, oy := m.mapViewport()
	cx, cy := msg.X-ox, msg.Y-oy
	inMap := cx >= 0 && cx < v.w && cy >= 0 && cy < v.h
	x, y, onCanvas := v.toCanvas(cx, cy)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.resizeActive(sizeStep)
			return m, nil
		case tea.MouseButtonWheelDown:
			m.resizeActive(-sizeStep)
			return m, nil
		}
		if msg.Button != tea.MouseButtonLeft || !inMap || !onCanvas {
			return m, nil
		}
		if i := m.hitRegion(x, y); i >= 0 {
			m.active = i
			m.dragging = true
			m.dragRegion = i
			m.status = "dragging region " + m.regionName()
			return m, nil
		}
		if idx := m.nearestLocation(x, y, 12); idx >= 0 {
			m.openDetail(idx)
		}
	case tea.MouseActionMotion:
		if m.dragging {
			if inMap {
				reg := m.session.Region(m.dragRegion)
				reg.SetCenter(x, y)
				m.refilter()
			}
			return m, nil
		}
		if inMap && onCanvas {
			m.hoverLoc = m.nearestLocation(x, y, 10)
		} else {
			m.hoverLoc = -1
		}
	case tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
			reg := m.session.Region(m.dragRegion)
			m.status = fmt.Sprintf("region %s at (%.0f, %.0f)", m.regionName(), reg.X, reg.Y)
		}
	}
	return m, nil
}

// hitRegion returns the region whose circle covers the canvas point, preferring the
// nearer center when both do.
func (m Model) hitRegion(x, y float64) int {
	a, b := &m.session.A, &m.session.B
	inA, inB := a.Contains(x, y), b.Contains(x, y)
	switch {
	case inA && inB:
		if sqDist(x, y, a.X, a.Y) <= sqDist(x, y, b.X, b.Y) {
			return 0
		}
		return 1
	case inA:
		return 0
	case inB:
		return 1
	}
	return -1
}

func (m *Model) moveActive(dx, dy float64) {
	reg := m.session.Region(m.active)
	reg.SetCenter(reg.X+dx, reg.Y+dy)
	m.refilter()
	m.status = fmt.Sprintf("region %s at (%.0f, %.0f)", m.regionName(), reg.X, reg.Y)
}

func (m *Model) resizeActive(d float64) {
	reg := m.session.Region(m.active)
	reg.SetRadius(clampF(reg.R+d, query.RadiusMin, query.RadiusMax))
	m.refilter()
	m.status = fmt.Sprintf("region %s radius %.0f px (%.2f km)", m.regionName(), reg.R, m.proj.PixelsToKm(reg.R))
}

func (m *Model) shiftYearMin(d int) {
	c := &m.session.Criteria
	c.SetYearMin(clampInt(c.YearMin+d, query.YearFloor, query.YearCeil))
	m.refilter()
	m.status = fmt.Sprintf("years %d-%d", c.YearMin, c.YearMax)
}

func (m *Model) shiftYearMax(d int) {
	c := &m.session.Criteria
	c.SetYearMax(clampInt(c.YearMax+d, query.YearFloor, query.YearCeil))
	m.refilter()
	m.status = fmt.Sprintf("years %d-%d", c.YearMin, c.YearMax)
}

func (m *Model) applyPick(label string) {
	v := label
	if label == pickerAll {
		v = query.All
	}
	c := &m.session.Criteria
	if m.mode == overlayDirectors {
		c.Director = v
		m.status = "director: " + label
	} else {
		c.Neighborhood = v
		m.status = "neighborhood: " + label
	}
	m.refilter()
}
