//go:build tinygo && baremetal

package hal

import (
	"machine"
)

// Pin map for the Pico carrier board.
const (
	pinTrig = machine.GP2
	pinEcho = machine.GP3

	pinSDA = machine.GP4
	pinSCL = machine.GP5

	pinUp     = machine.GP10
	pinDown   = machine.GP11
	pinLeft   = machine.GP12
	pinRight  = machine.GP13
	pinSelect = machine.GP14
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	fb     Framebuffer
	btns   *pinButtons
	sensor DistanceSensor
	nv     NVRAM
}

// New returns the Pico HAL implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// OLED: SSD1306 128x64 on I2C0 (GP4/GP5), address 0x3C.
// Sensor: HC-SR04 on GP2 (trigger) / GP3 (echo).
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	fb, err := newOLEDFramebuffer()
	if err != nil {
		fb = newStubFramebuffer()
	}

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		led:    &pinLED{pin: ledPin},
		fb:     fb,
		btns:   newPinButtons(),
		sensor: newUltrasonicSensor(),
		nv:     newDeviceNVRAM(),
	}
}

func (h *tinyGoHAL) Logger() Logger         { return h.logger }
func (h *tinyGoHAL) LED() LED               { return h.led }
func (h *tinyGoHAL) Display() Framebuffer   { return h.fb }
func (h *tinyGoHAL) Buttons() Buttons       { return h.btns }
func (h *tinyGoHAL) Sensor() DistanceSensor { return h.sensor }
func (h *tinyGoHAL) NVRAM() NVRAM           { return h.nv }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }
