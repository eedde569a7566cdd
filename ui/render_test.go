package ui

import (
	"image/color"
	"testing"

	"github.com/chewxy/math32"

	"mvm/gfx"
	"mvm/tank"
)

const (
	fbWidth  = 128
	fbHeight = 64
)

// testFB records which pixels are lit.
type testFB struct {
	pix [fbHeight][fbWidth]bool
}

func (f *testFB) Size() (int16, int16) { return fbWidth, fbHeight }

func (f *testFB) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= fbWidth || y < 0 || y >= fbHeight {
		return
	}
	f.pix[y][x] = c.R != 0 || c.G != 0 || c.B != 0
}

func (f *testFB) ClearBuffer() {
	f.pix = [fbHeight][fbWidth]bool{}
}

func (f *testFB) Display() error { return nil }

func (f *testFB) anyLit() bool {
	for y := range f.pix {
		for x := range f.pix[y] {
			if f.pix[y][x] {
				return true
			}
		}
	}
	return false
}

func renderOnce(c *Controller) *testFB {
	fb := &testFB{}
	c.Render(gfx.NewCanvas(fb))
	return fb
}

func TestRenderMainBar(t *testing.T) {
	c, store, _ := newTestController(30)
	*store.Active() = tank.Profile{MinHeight: 50, Diameter: 20, TargetCapacity: 10}

	fb := renderOnce(c)

	// Outline: x in [2, 125], y in [43, 50].
	const barY = (fbHeight-barHeight)/2 + 15
	for _, x := range []int16{barMargin, fbWidth - barMargin - 1} {
		if !fb.pix[barY][x] || !fb.pix[barY+barHeight-1][x] {
			t.Fatalf("bar outline missing at x=%d", x)
		}
	}

	// Volume is about 1.26 of 10, so the fill covers roughly the first
	// eighth of the bar interior and no more.
	if !fb.pix[barY+3][barMargin+5] {
		t.Fatal("expected fill near the left of the bar")
	}
	if fb.pix[barY+3][fbWidth/2] {
		t.Fatal("unexpected fill past the target fraction")
	}
}

func TestRenderMainUnconfigured(t *testing.T) {
	c, _, _ := newTestController(30)
	// Zero profile: volume is 0 with a valid sample but NaN with a NaN
	// sample; force the NaN path through the sensor.
	c.sensor.(*fakeSensor).cm = math32.NaN()

	fb := renderOnce(c)
	if !fb.anyLit() {
		t.Fatal("expected the setup prompt to draw something")
	}
	const barY = (fbHeight-barHeight)/2 + 15
	for x := 0; x < fbWidth; x++ {
		if fb.pix[barY][x] {
			t.Fatalf("bar drawn on the unconfigured screen at x=%d", x)
		}
	}
}

func TestRenderMainZeroTarget(t *testing.T) {
	c, store, _ := newTestController(30)
	*store.Active() = tank.Profile{MinHeight: 50, Diameter: 20}

	fb := renderOnce(c)
	const barY = (fbHeight-barHeight)/2 + 15
	if !fb.pix[barY][barMargin] {
		t.Fatal("bar outline missing")
	}
	if fb.pix[barY+3][barMargin+5] {
		t.Fatal("unexpected fill with a zero target")
	}
}

func TestRenderMenuHighlight(t *testing.T) {
	c, _, _ := newTestController(30)
	press(c, sel, down, down) // menu, item 1

	fb := renderOnce(c)
	rowY := int16(1*rowHeight + rowTop)
	if !fb.pix[rowY][fbWidth-1] {
		t.Fatal("highlighted row not filled")
	}
	if fb.pix[rowTop][fbWidth-1] {
		t.Fatal("unhighlighted row filled")
	}
}

func TestRenderAllScreensDraw(t *testing.T) {
	screens := []struct {
		name string
		nav  []Input
	}{
		{"menu", []Input{sel}},
		{"view", []Input{sel, down, down, sel}},
		{"edit", []Input{sel, down, down, down, sel}},
		{"load", []Input{sel, down, down, down, down, sel}},
	}
	for _, tt := range screens {
		c, _, _ := newTestController(30)
		press(c, tt.nav...)
		if fb := renderOnce(c); !fb.anyLit() {
			t.Errorf("%s screen rendered nothing", tt.name)
		}
	}
}
