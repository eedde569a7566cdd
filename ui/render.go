package ui

import (
	"github.com/chewxy/math32"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"

	"mvm/gfx"
	"mvm/tank"
)

// Screen layout on the 128x64 panel: title row, separator at y=10,
// list rows every 10 pixels from y=11.
const (
	sepY      = 10
	rowHeight = 10
	rowTop    = 11

	barHeight = 8
	barMargin = 2
)

var (
	rowFont = &tinyfont.Org01
	bigFont = &freesans.Bold9pt7b
)

var menuLabels = [menuItems]string{"Main Screen", "View Settings", "Edit Settings", "Load Settings"}
var editLabels = [editItems]string{"Min Height: ", "Diameter: ", "Target Capacity: ", "Save Settings"}

// Render draws the current screen. It is a pure function of the
// controller state, the active profile and a live sensor sample; the
// only side effect is the drawing itself.
func (c *Controller) Render(cv *gfx.Canvas) {
	cv.Clear()
	cv.SetFont(rowFont, 7, rowHeight)
	switch c.screen {
	case ScreenMain:
		c.renderMain(cv)
	case ScreenMenu:
		c.renderMenu(cv)
	case ScreenView:
		c.renderView(cv)
	case ScreenEdit:
		c.renderEdit(cv)
	case ScreenLoad:
		c.renderLoad(cv)
	}
	_ = cv.Present()
}

func (c *Controller) renderMain(cv *gfx.Canvas) {
	p := *c.store.Active()
	volume := tank.Volume(p, c.sensor.DistanceCm())

	if math32.IsNaN(volume) {
		cv.SetCursor(0, 0)
		cv.Print("please set up tank")
		return
	}
	volume = tank.DisplayVolume(volume)

	cv.SetFont(bigFont, 13, 18)
	w := cv.Width()
	cv.SetCursor((w-cv.TextWidth("888.8 L"))/2, 15)
	cv.PrintFloat1(volume)
	cv.Print(" L")

	barW := w - 2*barMargin
	barY := (cv.Height()-barHeight)/2 + 15
	cv.DrawRect(barMargin, barY, barW, barHeight)
	fill := tank.BarFill(volume, p.TargetCapacity, int(barW))
	cv.FillRect(barMargin, barY, int16(fill), barHeight)
}

func (c *Controller) renderMenu(cv *gfx.Canvas) {
	c.title(cv, "Menu")
	for i, label := range menuLabels {
		c.row(cv, i)
		cv.Print(label)
	}
	cv.SetColor(gfx.White)
}

func (c *Controller) renderView(cv *gfx.Canvas) {
	c.title(cv, "View Settings")
	p := *c.store.Active()
	cv.SetCursor(0, 14)
	cv.Print("Min Height: ")
	cv.PrintInt(truncInt(p.MinHeight))
	cv.Println("")
	cv.Print("Diameter: ")
	cv.PrintInt(truncInt(p.Diameter))
	cv.Println("")
	cv.Print("Target Capacity: ")
	cv.PrintInt(truncInt(p.TargetCapacity))
}

func (c *Controller) renderEdit(cv *gfx.Canvas) {
	c.title(cv, "Edit Settings")
	p := *c.store.Active()
	values := [3]float32{p.MinHeight, p.Diameter, p.TargetCapacity}
	for i, label := range editLabels {
		c.row(cv, i)
		cv.Print(label)
		if i < len(values) {
			cv.PrintInt(truncInt(values[i]))
		}
	}
	cv.SetColor(gfx.White)
}

func (c *Controller) renderLoad(cv *gfx.Canvas) {
	c.title(cv, "Load Settings")

	c.row(cv, 0)
	cv.Print("index: ")
	cv.PrintInt(c.store.ActiveIndex())

	c.row(cv, 1)
	cv.Print("Load Settings")

	cv.SetColor(gfx.White)
}

func (c *Controller) title(cv *gfx.Canvas, s string) {
	w := cv.Width()
	cv.SetCursor((w-cv.TextWidth(s))/2, 0)
	cv.Print(s)
	cv.DrawLine(0, sepY, w-1, sepY)
}

// row prepares list row i: highlighted rows get a filled bar and
// inverted text color, and the cursor lands at the row start.
func (c *Controller) row(cv *gfx.Canvas, i int) {
	y := int16(i*rowHeight + rowTop)
	if i == c.menuItem {
		cv.SetColor(gfx.White)
		cv.FillRect(0, y, cv.Width(), rowHeight)
		cv.SetColor(gfx.Black)
	} else {
		cv.SetColor(gfx.White)
	}
	cv.SetCursor(0, y+1)
}

// truncInt matches the panel's integer-truncated field display; stored
// NaN garbage renders as 0 rather than a runtime-defined integer.
func truncInt(v float32) int {
	if math32.IsNaN(v) {
		return 0
	}
	return int(v)
}
