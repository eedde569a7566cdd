// Package app wires the HAL into the control cycle.
package app

import (
	"strconv"
	"time"

	"mvm/gfx"
	"mvm/hal"
	"mvm/internal/buildinfo"
	"mvm/tank"
	"mvm/ui"
)

// cycleInterval is the fixed control-cycle period: read buttons,
// step the state machine, render, wait.
const cycleInterval = 100 * time.Millisecond

// New boots the appliance and returns a step function; callers invoke
// it at their tick rate and the control cycle runs every cycleInterval.
func New(h hal.HAL) func() error {
	log := h.Logger()
	store := tank.NewStore(h.NVRAM())

	if healed, err := store.LoadActiveIndex(); err != nil {
		log.WriteLineString("eeprom: active index unreadable, using slot 0")
	} else if healed {
		log.WriteLineString("eeprom: active index out of range, reset to 0")
	}
	if err := store.LoadAll(); err != nil {
		log.WriteLineString("eeprom: profile load failed, using defaults")
	}
	log.WriteLineString("mvm " + buildinfo.Short() + ": ready, active slot " + strconv.Itoa(store.ActiveIndex()))

	ctrl := ui.NewController(store, h.Sensor())
	canvas := gfx.NewCanvas(h.Display())
	btns := h.Buttons()
	led := h.LED()

	var last time.Time
	ledOn := false
	return func() error {
		now := time.Now()
		if !last.IsZero() && now.Sub(last) < cycleInterval {
			return nil
		}
		last = now

		ctrl.Step(ui.ReadInput(btns))
		ctrl.Render(canvas)

		// Heartbeat: the on-board LED toggles every cycle.
		ledOn = !ledOn
		if ledOn {
			led.High()
		} else {
			led.Low()
		}
		return nil
	}
}

// Run drives the control loop directly (TinyGo entrypoint).
func Run(h hal.HAL) {
	step := New(h)
	for {
		_ = step()
		time.Sleep(cycleInterval)
	}
}
