package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/finnstaeblein/cs448b-assignment2/internal/query"
)

// viewport letterboxes the virtual canvas into a map pane of w x h cells, using one
// uniform scale so circles stay circular on the 2x4 braille microgrid.
type viewport struct {
	w, h  int     // cells
	scale float64 // micro-pixels per canvas pixel
	offX  int     // micro offsets centering the canvas
	offY  int
}

func newViewport(w, h int) viewport {
	wMic := float64(w * 2)
	hMic := float64(h * 4)
	s := math.Min(wMic/query.CanvasWidth, hMic/query.CanvasHeight)
	return viewport{
		w:     w,
		h:     h,
		scale: s,
		offX:  int((wMic - query.CanvasWidth*s) / 2),
		offY:  int((hMic - query.CanvasHeight*s) / 2),
	}
}

// toMicro maps canvas coordinates to micro-pixel coordinates.
func (v viewport) toMicro(x, y float64) (int, int) {
	return v.offX + int(x*v.scale+0.5), v.offY + int(y*v.scale+0.5)
}

// toCanvas maps a map-pane cell back to canvas coordinates (cell center). ok reports
// whether the point falls on the canvas rather than the letterbox margin.
func (v viewport) toCanvas(cx, cy int) (x, y float64, ok bool) {
	mx := float64(cx*2) + 0.5 - float64(v.offX)
	my := float64(cy*4) + 1.5 - float64(v.offY)
	x = mx / v.scale
	y = my / v.scale
	ok = x >= 0 && x <= query.CanvasWidth && y >= 0 && y <= query.CanvasHeight
	return x, y, ok
}

// scaleR converts a canvas radius to micro-pixels, never collapsing to zero.
func (v viewport) scaleR(r float64) int {
	px := int(r*v.scale + 0.5)
	if px < 1 {
		px = 1
	}
	return px
}

func (m Model) renderMap(w, h int) string {
	v := newViewport(w, h)
	br := newBrailleBuf(w, h)

	// Dim base layer for every location, matches on top as filled discs sized by
	// the location's display radius.
	for i, loc := range m.catalog.Locations {
		mx, my := v.toMicro(loc.X, loc.Y)
		if i < len(m.results) && m.results[i].Visible {
			br.fillDisc(mx, my, v.scaleR(loc.Radius), layerMatch)
		} else {
			br.setPixel(mx, my, layerDim)
		}
	}

	// Region circles, A under B.
	for i := 0; i < 2; i++ {
		reg := m.session.Region(i)
		layer := layerRegionA
		if i == 1 {
			layer = layerRegionB
		}
		cx, cy := v.toMicro(reg.X, reg.Y)
		br.drawCircle(cx, cy, v.scaleR(reg.R), layer)
		br.setPixel(cx, cy, layer)
	}

	// Crosshair on the active region's center.
	reg := m.session.Region(m.active)
	cx, cy := v.toMicro(reg.X, reg.Y)
	br.drawLineMicro(cx-3, cy, cx+3, cy, layerMarker)
	br.drawLineMicro(cx, cy-2, cx, cy+2, layerMarker)

	// Hover ring around the location named in the status line.
	if m.hoverLoc >= 0 && m.hoverLoc < len(m.catalog.Locations) {
		loc := m.catalog.Locations[m.hoverLoc]
		hx, hy := v.toMicro(loc.X, loc.Y)
		br.drawCircle(hx, hy, 3, layerMarker)
	}

	palette := map[uint8]lipgloss.Style{
		layerDim:     dimStyle,
		layerMatch:   matchStyle,
		layerRegionA: regionAStyle,
		layerRegionB: regionBStyle,
		layerMarker:  activeStyle,
	}
	return strings.Join(br.toLines(palette), "\n")
}

// nearestLocation returns the index of the location closest to the canvas point, or
// -1 when none is within maxDist canvas pixels.
func (m Model) nearestLocation(x, y, maxDist float64) int {
	best := -1
	bestD := maxDist * maxDist
	for i, loc := range m.catalog.Locations {
		if d := sqDist(x, y, loc.X, loc.Y); d <= bestD {
			bestD = d
			best = i
		}
	}
	return best
}
