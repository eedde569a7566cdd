//go:build !tinygo

package hal

import (
	"math/rand"
	"sync"
	"time"

	"github.com/chewxy/math32"

	"mvm/internal/simcfg"
)

// simSensor models the ultrasonic sensor over a virtual tank: the
// liquid level moves when fill/drain keys are held, samples carry
// gaussian noise, and a configurable fraction of reads drops out to
// NaN the way a missed echo does.
type simSensor struct {
	mu sync.Mutex

	heightCm float32
	levelCm  float32
	fillRate float32 // cm per second
	noiseCm  float32
	dropout  float32

	forceNaN bool
	rng      *rand.Rand
}

func newSimSensor(cfg *simcfg.Config) *simSensor {
	return &simSensor{
		heightCm: cfg.Tank.SensorHeightCm,
		levelCm:  cfg.Tank.StartLevelCm,
		fillRate: cfg.Tank.FillRateCmSec,
		noiseCm:  cfg.Sensor.NoiseCm,
		dropout:  cfg.Sensor.DropoutProb,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *simSensor) DistanceCm() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forceNaN {
		return math32.NaN()
	}
	if s.dropout > 0 && s.rng.Float32() < s.dropout {
		return math32.NaN()
	}
	d := s.heightCm - s.levelCm
	if s.noiseCm > 0 {
		d += float32(s.rng.NormFloat64()) * s.noiseCm
	}
	if d < 0 {
		d = 0
	}
	return d
}

// step integrates the liquid level while a fill or drain key is held.
func (s *simSensor) step(fill, drain bool, dt time.Duration) {
	if fill == drain {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delta := s.fillRate * float32(dt.Seconds())
	if drain {
		delta = -delta
	}
	s.levelCm += delta
	if s.levelCm < 0 {
		s.levelCm = 0
	}
	if s.levelCm > s.heightCm {
		s.levelCm = s.heightCm
	}
}

func (s *simSensor) toggleNaN() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forceNaN = !s.forceNaN
}
