//go:build !tinygo

package hal

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// hostButtons mirrors the level of the mapped keyboard keys. The window
// refreshes the state each frame; the control loop samples it once per
// cycle, exactly like the pull-up pins on the device.
type hostButtons struct {
	mu    sync.Mutex
	state [ButtonCount]bool
}

func newHostButtons() *hostButtons {
	return &hostButtons{}
}

func (b *hostButtons) Pressed(btn Button) bool {
	if btn >= ButtonCount {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state[btn]
}

// Arrow keys navigate, Enter is Select.
func (b *hostButtons) poll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state[ButtonUp] = ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	b.state[ButtonDown] = ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	b.state[ButtonLeft] = ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	b.state[ButtonRight] = ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	b.state[ButtonSelect] = ebiten.IsKeyPressed(ebiten.KeyEnter)
}
