package hal

import (
	"errors"
	"image/color"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// Button identifies one of the five front-panel buttons.
type Button uint8

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonSelect

	ButtonCount = 5
)

// Buttons exposes the instantaneous level of each front-panel button.
//
// The control loop samples once per cycle; no edge detection or
// debouncing happens below this interface.
type Buttons interface {
	Pressed(b Button) bool
}

// DistanceSensor measures sensor-to-surface distance in centimeters.
//
// A failed or timed-out measurement returns NaN. The call may block
// until the echo arrives or the hardware timeout elapses.
type DistanceSensor interface {
	DistanceCm() float32
}

// Framebuffer is a monochrome pixel buffer plus a "present" hook.
//
// The method set matches the tinygo.org/x/drivers displayer contract,
// so hardware display drivers satisfy it directly. Any pixel with a
// non-zero color channel is lit.
type Framebuffer interface {
	Size() (w, h int16)
	SetPixel(x, y int16, c color.RGBA)
	ClearBuffer()
	Display() error
}

// NVRAM is byte-addressable non-volatile storage.
//
// It is intentionally low-level: a flat byte region, no records.
type NVRAM interface {
	Size() int
	ReadAt(p []byte, off int64) (int, error)
	WriteAt(p []byte, off int64) (int, error)
}

// HAL provides the only contact point between the appliance and the
// outside world.
type HAL interface {
	Logger() Logger
	LED() LED
	Display() Framebuffer
	Buttons() Buttons
	Sensor() DistanceSensor
	NVRAM() NVRAM
}
