package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Paint layers, low to high priority. A cell keeps the color of the highest layer
// that touched it while dot masks accumulate across layers.
const (
	layerNone uint8 = iota
	layerDim
	layerMatch
	layerRegionA
	layerRegionB
	layerMarker
)

type brailleBuf struct {
	w, h  int       // in cells
	mask  [][]uint8 // per-cell 8-bit dot mask
	layer [][]uint8 // per-cell winning layer
}

func newBrailleBuf(w, h int) *brailleBuf {
	mask := make([][]uint8, h)
	layer := make([][]uint8, h)
	for i := range mask {
		mask[i] = make([]uint8, w)
		layer[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, mask: mask, layer: layer}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell) on the given layer.
func (b *brailleBuf) setPixel(mx, my int, layer uint8) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.mask[cy][cx] |= bit
	if layer > b.layer[cy][cx] {
		b.layer[cy][cx] = layer
	}
}

// drawLineMicro draws a line on the microgrid using Bresenham.
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, layer uint8) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, layer)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawCircle draws a circle outline with the midpoint algorithm.
func (b *brailleBuf) drawCircle(cx, cy, r int, layer uint8) {
	if r <= 0 {
		b.setPixel(cx, cy, layer)
		return
	}
	x, y := r, 0
	err := 1 - r
	for x >= y {
		b.setPixel(cx+x, cy+y, layer)
		b.setPixel(cx+y, cy+x, layer)
		b.setPixel(cx-y, cy+x, layer)
		b.setPixel(cx-x, cy+y, layer)
		b.setPixel(cx-x, cy-y, layer)
		b.setPixel(cx-y, cy-x, layer)
		b.setPixel(cx+y, cy-x, layer)
		b.setPixel(cx+x, cy-y, layer)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// fillDisc paints a filled circle of radius r micro-pixels.
func (b *brailleBuf) fillDisc(cx, cy, r int, layer uint8) {
	if r <= 0 {
		b.setPixel(cx, cy, layer)
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				b.setPixel(cx+dx, cy+dy, layer)
			}
		}
	}
}

// toLines renders the buffer, styling each run of equal-layer cells in one chunk.
func (b *brailleBuf) toLines(palette map[uint8]lipgloss.Style) []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		runLayer := layerNone
		var run []rune
		flush := func() {
			if len(run) == 0 {
				return
			}
			s := string(run)
			if st, ok := palette[runLayer]; ok && runLayer != layerNone {
				s = st.Render(s)
			}
			sb.WriteString(s)
			run = run[:0]
		}
		for x := 0; x < b.w; x++ {
			r := ' '
			l := layerNone
			if mask := b.mask[y][x]; mask != 0 {
				r = rune(0x2800 + int(mask))
				l = b.layer[y][x]
			}
			if l != runLayer {
				flush()
				runLayer = l
			}
			run = append(run, r)
		}
		flush()
		out[y] = sb.String()
	}
	return out
}
