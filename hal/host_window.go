//go:build !tinygo

package hal

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mvm/internal/buildinfo"
	"mvm/internal/simcfg"
)

const windowScale = 4

// RunWindow starts a desktop window that displays the framebuffer and
// forwards keyboard input. It blocks until the window closes.
//
// Beyond the five panel buttons (arrows + Enter), F fills the simulated
// tank, D drains it, and N toggles sensor dropout.
func RunWindow(cfg *simcfg.Config, newApp func(HAL) func() error) error {
	h := New(cfg).(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step, last: time.Now()}
	ebiten.SetWindowTitle("MVM (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(int(h.fb.width)*windowScale, int(h.fb.height)*windowScale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	fbImg   *ebiten.Image
	pix     []byte
	scratch []byte
	step    func() error
	last    time.Time
}

func (g *hostGame) Update() error {
	now := time.Now()
	dt := now.Sub(g.last)
	g.last = now

	g.h.btns.poll()
	g.h.sensor.step(ebiten.IsKeyPressed(ebiten.KeyF), ebiten.IsKeyPressed(ebiten.KeyD), dt)
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.h.sensor.toggleNaN()
	}

	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	w := int(fb.width)
	h := int(fb.height)
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(w, h)
		g.pix = make([]byte, w*h*4)
		g.scratch = make([]byte, len(fb.buf))
	}

	fb.snapshot(g.scratch)
	for i, on := range g.scratch {
		j := i * 4
		v := byte(0)
		if on != 0 {
			v = 0xFF
		}
		g.pix[j+0] = v
		g.pix[j+1] = v
		g.pix[j+2] = v
		g.pix[j+3] = 0xFF
	}
	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.h.fb.width), int(g.h.fb.height)
}
