package tui

import (
	"math"
	"testing"

	"github.com/finnstaeblein/cs448b-assignment2/internal/query"
)

func TestSetPixelBitLayout(t *testing.T) {
	// Braille dot numbering: column 0 holds dots 1-3 and 7, column 1 dots 4-6 and 8.
	cases := []struct {
		mx, my int
		want   uint8
	}{
		{0, 0, 0x01}, {0, 1, 0x02}, {0, 2, 0x04}, {0, 3, 0x40},
		{1, 0, 0x08}, {1, 1, 0x10}, {1, 2, 0x20}, {1, 3, 0x80},
	}
	for _, c := range cases {
		b := newBrailleBuf(1, 1)
		b.setPixel(c.mx, c.my, layerDim)
		if b.mask[0][0] != c.want {
			t.Errorf("micro (%d, %d): mask = %#02x, want %#02x", c.mx, c.my, b.mask[0][0], c.want)
		}
	}
}

func TestSetPixelAllDotsMakeFullCell(t *testing.T) {
	b := newBrailleBuf(2, 2)
	for mx := 2; mx < 4; mx++ {
		for my := 4; my < 8; my++ {
			b.setPixel(mx, my, layerMatch)
		}
	}
	if b.mask[1][1] != 0xFF {
		t.Errorf("mask = %#02x, want full 0xFF", b.mask[1][1])
	}
	lines := b.toLines(nil)
	if []rune(lines[1])[1] != '⣿' {
		t.Errorf("cell rune = %q, want ⣿", lines[1])
	}
	for _, r := range lines[0] {
		if r != ' ' {
			t.Errorf("untouched row rendered %q, want blanks", lines[0])
		}
	}
}

func TestSetPixelOutOfRangeIgnored(t *testing.T) {
	b := newBrailleBuf(2, 2)
	b.setPixel(-1, 0, layerDim)
	b.setPixel(0, -3, layerDim)
	b.setPixel(4, 0, layerDim)
	b.setPixel(0, 8, layerDim)
	for y := range b.mask {
		for x := range b.mask[y] {
			if b.mask[y][x] != 0 {
				t.Fatalf("cell (%d, %d) touched by out-of-range pixel", x, y)
			}
		}
	}
}

func TestLayerPriority(t *testing.T) {
	b := newBrailleBuf(1, 1)
	b.setPixel(0, 0, layerRegionB)
	b.setPixel(1, 0, layerDim)
	if b.layer[0][0] != layerRegionB {
		t.Errorf("layer = %d, a lower layer must not override %d", b.layer[0][0], layerRegionB)
	}
	if b.mask[0][0] != 0x01|0x08 {
		t.Errorf("mask = %#02x, dots must accumulate across layers", b.mask[0][0])
	}
}

func TestDrawCircleStaysOnRing(t *testing.T) {
	b := newBrailleBuf(20, 10)
	const cx, cy, r = 20, 20, 10
	b.drawCircle(cx, cy, r, layerRegionA)
	found := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			if b.mask[y][x] == 0 {
				continue
			}
			found++
		}
	}
	if found == 0 {
		t.Fatal("circle drew nothing")
	}
	// cardinal points of the ring must be set
	for _, p := range [][2]int{{cx + r, cy}, {cx - r, cy}, {cx, cy + r}, {cx, cy - r}} {
		mcx, mcy := p[0]/2, p[1]/4
		if b.mask[mcy][mcx] == 0 {
			t.Errorf("ring point micro (%d, %d) not set", p[0], p[1])
		}
	}
}

func TestFillDiscCoversCenter(t *testing.T) {
	b := newBrailleBuf(10, 10)
	b.fillDisc(10, 20, 3, layerMatch)
	if b.mask[5][5] == 0 {
		t.Error("disc center cell empty")
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := newViewport(120, 40)
	pts := [][2]float64{
		{0, 0},
		{query.CanvasWidth / 2, query.CanvasHeight / 2},
		{query.CanvasWidth - 4, query.CanvasHeight - 4},
		{333, 47},
	}
	cellW := 1 / v.scale * 2 // canvas pixels per cell horizontally
	cellH := 1 / v.scale * 4
	for _, p := range pts {
		mx, my := v.toMicro(p[0], p[1])
		x, y, ok := v.toCanvas(mx/2, my/4)
		if !ok {
			t.Errorf("canvas point (%v, %v) mapped off-canvas", p[0], p[1])
			continue
		}
		if math.Abs(x-p[0]) > cellW || math.Abs(y-p[1]) > cellH {
			t.Errorf("round trip (%v, %v) -> (%v, %v), off by more than one cell", p[0], p[1], x, y)
		}
	}
}

func TestViewportUniformScale(t *testing.T) {
	v := newViewport(200, 10) // much wider than tall: height limits the scale
	if want := 40.0 / query.CanvasHeight; math.Abs(v.scale-want) > 1e-12 {
		t.Errorf("scale = %v, want %v", v.scale, want)
	}
	if v.offX <= 0 {
		t.Error("wide pane must letterbox horizontally")
	}
}

func TestViewportLetterboxOffCanvas(t *testing.T) {
	v := newViewport(200, 10)
	if _, _, ok := v.toCanvas(0, 0); ok {
		t.Error("far-left letterbox cell must report off-canvas")
	}
	if _, _, ok := v.toCanvas(100, 5); !ok {
		t.Error("pane center must be on-canvas")
	}
}
