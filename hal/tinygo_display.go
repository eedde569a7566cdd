//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ssd1306"
)

// newOLEDFramebuffer brings up the SSD1306 over I2C0. The driver's
// Device already carries the Size/SetPixel/ClearBuffer/Display method
// set, so it is the Framebuffer.
func newOLEDFramebuffer() (Framebuffer, error) {
	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA: pinSDA,
		SCL: pinSCL,
	})
	if err != nil {
		return nil, err
	}

	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{
		Width:    displayWidth,
		Height:   displayHeight,
		Address:  0x3C,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	dev.ClearBuffer()
	return &dev, nil
}

const (
	displayWidth  = 128
	displayHeight = 64
)

// stubFramebuffer keeps the control loop alive when the panel is
// missing or miswired; the appliance still logs over UART.
type stubFramebuffer struct{}

func newStubFramebuffer() Framebuffer { return stubFramebuffer{} }

func (stubFramebuffer) Size() (int16, int16)              { return displayWidth, displayHeight }
func (stubFramebuffer) SetPixel(x, y int16, c color.RGBA) {}
func (stubFramebuffer) ClearBuffer()                      {}
func (stubFramebuffer) Display() error                    { return ErrNotImplemented }
