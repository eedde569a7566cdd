// Package ui is the five-screen navigation state machine and its
// renderer.
package ui

import (
	"time"

	"github.com/chewxy/math32"

	"mvm/hal"
	"mvm/tank"
)

// Screen is the controller's current display state.
type Screen uint8

const (
	ScreenMain Screen = iota
	ScreenMenu
	ScreenView
	ScreenEdit
	ScreenLoad
)

const (
	menuItems = 4
	editItems = 4
	loadItems = 2

	// Input timing constants carried over from the panel wiring.
	// Long-press and debounce are not part of the control flow; the
	// loop level-samples buttons at the cycle rate.
	debounceDelay   = 100 * time.Millisecond
	longPressTime   = 2500 * time.Millisecond
	postPressIgnore = 10
)

// fieldStep is how far one Left/Right press moves a numeric field.
const fieldStep float32 = 10

// Input is one cycle's sampled button levels.
type Input struct {
	Up, Down, Left, Right, Select bool
}

// ReadInput samples all five buttons once.
func ReadInput(b hal.Buttons) Input {
	return Input{
		Up:     b.Pressed(hal.ButtonUp),
		Down:   b.Pressed(hal.ButtonDown),
		Left:   b.Pressed(hal.ButtonLeft),
		Right:  b.Pressed(hal.ButtonRight),
		Select: b.Pressed(hal.ButtonSelect),
	}
}

// Controller owns the transient UI state (screen, highlighted item)
// and mutates the profile store in response to input. Rendering lives
// in render.go and mutates nothing.
type Controller struct {
	store  *tank.Store
	sensor hal.DistanceSensor

	screen   Screen
	menuItem int
}

func NewController(store *tank.Store, sensor hal.DistanceSensor) *Controller {
	return &Controller{store: store, sensor: sensor, screen: ScreenMain, menuItem: -1}
}

func (c *Controller) Screen() Screen { return c.screen }
func (c *Controller) MenuItem() int  { return c.menuItem }

// Step advances the state machine by one control cycle. Checks run in
// the original panel's order — Up, then Down, then the branch for the
// item the cursor landed on — so simultaneous presses resolve the same
// way the shipped firmware resolved them.
func (c *Controller) Step(in Input) {
	switch c.screen {
	case ScreenMain:
		if in.Select {
			c.screen = ScreenMenu
			c.menuItem = -1
		}

	case ScreenMenu:
		if in.Up {
			c.menuItem = cycle(c.menuItem, menuItems-1, menuItems)
		}
		if in.Down {
			c.menuItem = cycle(c.menuItem, 1, menuItems)
		}
		if in.Select {
			c.menuAction()
		}

	case ScreenView:
		if in.Select {
			c.screen = ScreenMenu
		}

	case ScreenEdit:
		if in.Up {
			c.menuItem = cycle(c.menuItem, editItems-1, editItems)
		}
		if in.Down {
			c.menuItem = cycle(c.menuItem, 1, editItems)
		}
		switch {
		case c.menuItem == 0:
			if in.Select {
				c.adjustField(true)
			}
		case c.menuItem < 3:
			if in.Left {
				c.adjustField(false)
			} else if in.Right {
				c.adjustField(true)
			}
		default:
			if in.Select {
				_ = c.store.Save(c.store.ActiveIndex())
				c.screen = ScreenMenu
				c.menuItem = -1
			}
		}

	case ScreenLoad:
		// Up and Down both step forward here; the shipped panel wired
		// it that way and the behavior is kept.
		if in.Up {
			c.menuItem = cycle(c.menuItem, 1, loadItems)
		}
		if in.Down {
			c.menuItem = cycle(c.menuItem, 1, loadItems)
		}
		if c.menuItem == 0 {
			if in.Left {
				c.adjustActiveIndex(-1)
			} else if in.Right {
				c.adjustActiveIndex(1)
			}
		} else {
			if in.Select {
				_ = c.store.SaveActiveIndex()
				_ = c.store.LoadAll()
				c.screen = ScreenMenu
				c.menuItem = -1
			}
		}
	}
}

// menuAction dispatches the highlighted menu row to its screen. Any
// other value, including the -1 sentinel, falls through and only
// resets the highlight.
func (c *Controller) menuAction() {
	switch c.menuItem {
	case 0:
		c.screen = ScreenMain
	case 1:
		c.screen = ScreenView
	case 2:
		c.screen = ScreenEdit
	case 3:
		c.screen = ScreenLoad
	}
	c.menuItem = -1
}

// adjustField edits the highlighted field of the active profile.
// The minimum height is not incremented: it is replaced wholesale by a
// live sensor sample, so setting it means "the tank is at max fill
// right now". Numeric fields recover from stored NaN by resetting to
// zero before the arithmetic, and never go negative.
func (c *Controller) adjustField(increase bool) {
	p := c.store.Active()
	adj := fieldStep
	if !increase {
		adj = -fieldStep
	}
	switch c.menuItem {
	case 0:
		p.MinHeight = c.sensor.DistanceCm()
	case 1:
		if math32.IsNaN(p.Diameter) {
			p.Diameter = 0
		}
		p.Diameter += adj
		if p.Diameter < 0 {
			p.Diameter = 0
		}
	case 2:
		if math32.IsNaN(p.TargetCapacity) {
			p.TargetCapacity = 0
		}
		p.TargetCapacity += adj
		if p.TargetCapacity < 0 {
			p.TargetCapacity = 0
		}
	}
}

func (c *Controller) adjustActiveIndex(delta int) {
	i := c.store.ActiveIndex() + delta
	if i < 0 {
		i = 0
	}
	if i >= tank.ProfileCount {
		i = tank.ProfileCount - 1
	}
	c.store.SetActiveIndex(i)
}

// cycle steps item by delta within [0, n), wrapping correctly even
// from the -1 sentinel. Go's % keeps the dividend's sign, so the
// result is re-biased into range.
func cycle(item, delta, n int) int {
	return ((item+delta)%n + n) % n
}
