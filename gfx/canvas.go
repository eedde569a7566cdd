package gfx

import (
	"image/color"
	"strconv"

	"tinygo.org/x/tinyfont"

	"mvm/hal"
)

var (
	White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Black = color.RGBA{A: 0xFF}
)

// Canvas adds cursor-addressed text and rectangle primitives on top of
// a monochrome framebuffer. Rendering goes through SetPixel only, so
// the same code drives the OLED and the host window.
type Canvas struct {
	fb hal.Framebuffer

	font   tinyfont.Fonter
	ascent int16
	lineH  int16

	curX, curY int16
	color      color.RGBA

	// Number formatting reuses one buffer so the device build does not
	// churn the heap every frame (fmt is avoided for the same reason).
	numBuf [24]byte
}

// NewCanvas wraps fb with the default small UI font.
func NewCanvas(fb hal.Framebuffer) *Canvas {
	c := &Canvas{fb: fb, color: White}
	c.SetFont(&tinyfont.Org01, 7, 10)
	return c
}

func (c *Canvas) Width() int16 {
	w, _ := c.fb.Size()
	return w
}

func (c *Canvas) Height() int16 {
	_, h := c.fb.Size()
	return h
}

func (c *Canvas) Clear() {
	c.fb.ClearBuffer()
	c.curX, c.curY = 0, 0
	c.color = White
}

func (c *Canvas) Present() error { return c.fb.Display() }

// SetFont selects the glyph set; ascent is the baseline offset from the
// cursor line and lineH the Println advance.
func (c *Canvas) SetFont(f tinyfont.Fonter, ascent, lineH int16) {
	c.font = f
	c.ascent = ascent
	c.lineH = lineH
}

// SetCursor positions the top-left corner of the next printed text.
func (c *Canvas) SetCursor(x, y int16) {
	c.curX, c.curY = x, y
}

func (c *Canvas) SetColor(col color.RGBA) { c.color = col }

// Print draws s at the cursor and advances the cursor past it.
func (c *Canvas) Print(s string) {
	tinyfont.WriteLine(c.fb, c.font, c.curX, c.curY+c.ascent, s, c.color)
	c.curX += c.TextWidth(s)
}

// Println draws s and moves the cursor to the start of the next line.
func (c *Canvas) Println(s string) {
	tinyfont.WriteLine(c.fb, c.font, c.curX, c.curY+c.ascent, s, c.color)
	c.curX = 0
	c.curY += c.lineH
}

func (c *Canvas) PrintInt(v int) {
	c.Print(string(strconv.AppendInt(c.numBuf[:0], int64(v), 10)))
}

// PrintFloat1 prints v with one decimal place.
func (c *Canvas) PrintFloat1(v float32) {
	c.Print(string(strconv.AppendFloat(c.numBuf[:0], float64(v), 'f', 1, 32)))
}

// TextWidth returns the advance width of s in the current font.
func (c *Canvas) TextWidth(s string) int16 {
	_, outbox := tinyfont.LineWidth(c.font, s)
	return int16(outbox)
}

// DrawLine draws in the current color; axis-aligned lines take the
// fast path, everything else is Bresenham.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int16) {
	switch {
	case y0 == y1:
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			c.fb.SetPixel(x, y0, c.color)
		}
	case x0 == x1:
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			c.fb.SetPixel(x0, y, c.color)
		}
	default:
		dx := abs16(x1 - x0)
		dy := -abs16(y1 - y0)
		sx := int16(1)
		if x0 > x1 {
			sx = -1
		}
		sy := int16(1)
		if y0 > y1 {
			sy = -1
		}
		e := dx + dy
		for {
			c.fb.SetPixel(x0, y0, c.color)
			if x0 == x1 && y0 == y1 {
				return
			}
			e2 := 2 * e
			if e2 >= dy {
				e += dy
				x0 += sx
			}
			if e2 <= dx {
				e += dx
				y0 += sy
			}
		}
	}
}

// DrawRect outlines a w x h rectangle at (x, y).
func (c *Canvas) DrawRect(x, y, w, h int16) {
	if w <= 0 || h <= 0 {
		return
	}
	c.DrawLine(x, y, x+w-1, y)
	c.DrawLine(x, y+h-1, x+w-1, y+h-1)
	c.DrawLine(x, y, x, y+h-1)
	c.DrawLine(x+w-1, y, x+w-1, y+h-1)
}

// FillRect fills a w x h rectangle at (x, y) with the current color.
func (c *Canvas) FillRect(x, y, w, h int16) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			c.fb.SetPixel(xx, yy, c.color)
		}
	}
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
