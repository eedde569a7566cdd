//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"

	"mvm/internal/simcfg"
)

type hostHAL struct {
	logger *hostLogger
	led    *hostLED
	fb     *hostFramebuffer
	btns   *hostButtons
	sensor *simSensor
	nv     *hostNVRAM
}

// New returns a host HAL implementation: an in-memory OLED framebuffer,
// keyboard-backed buttons, a simulated tank as the distance source and
// a file-backed EEPROM image.
func New(cfg *simcfg.Config) HAL {
	logger := &hostLogger{w: os.Stdout}
	return &hostHAL{
		logger: logger,
		led:    &hostLED{logger: logger},
		fb:     newHostFramebuffer(displayWidth, displayHeight),
		btns:   newHostButtons(),
		sensor: newSimSensor(cfg),
		nv:     newHostNVRAM(cfg, logger),
	}
}

const (
	displayWidth  = 128
	displayHeight = 64
)

func (h *hostHAL) Logger() Logger         { return h.logger }
func (h *hostHAL) LED() LED               { return h.led }
func (h *hostHAL) Display() Framebuffer   { return h.fb }
func (h *hostHAL) Buttons() Buttons       { return h.btns }
func (h *hostHAL) Sensor() DistanceSensor { return h.sensor }
func (h *hostHAL) NVRAM() NVRAM           { return h.nv }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
}
