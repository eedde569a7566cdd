//go:build tinygo && baremetal

package hal

import (
	"github.com/chewxy/math32"

	"tinygo.org/x/drivers/hcsr04"
)

// ultrasonicSensor wraps the HC-SR04 driver. The driver reports
// millimeters and zero on echo timeout; timeouts surface as NaN so
// the UI's setup prompt fires instead of a bogus reading.
type ultrasonicSensor struct {
	dev hcsr04.Device
}

func newUltrasonicSensor() *ultrasonicSensor {
	dev := hcsr04.New(pinTrig, pinEcho)
	dev.Configure()
	return &ultrasonicSensor{dev: dev}
}

func (s *ultrasonicSensor) DistanceCm() float32 {
	mm := s.dev.ReadDistance()
	if mm <= 0 {
		return math32.NaN()
	}
	return float32(mm) / 10
}
