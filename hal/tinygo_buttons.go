//go:build tinygo && baremetal

package hal

import (
	"machine"
)

// pinButtons reads five active-low pins with internal pull-ups.
type pinButtons struct {
	pins [ButtonCount]machine.Pin
}

func newPinButtons() *pinButtons {
	b := &pinButtons{
		pins: [ButtonCount]machine.Pin{
			ButtonUp:     pinUp,
			ButtonDown:   pinDown,
			ButtonLeft:   pinLeft,
			ButtonRight:  pinRight,
			ButtonSelect: pinSelect,
		},
	}
	for _, p := range b.pins {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	return b
}

func (b *pinButtons) Pressed(btn Button) bool {
	if btn >= ButtonCount {
		return false
	}
	return !b.pins[btn].Get()
}
