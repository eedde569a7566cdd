package tank

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
)

// memNVRAM is a throwaway in-memory EEPROM image.
type memNVRAM struct {
	buf []byte
}

func newMemNVRAM() *memNVRAM {
	return &memNVRAM{buf: make([]byte, StorageBytes)}
}

func (m *memNVRAM) Size() int { return len(m.buf) }

func (m *memNVRAM) ReadAt(p []byte, off int64) (int, error) {
	return copy(p, m.buf[off:]), nil
}

func (m *memNVRAM) WriteAt(p []byte, off int64) (int, error) {
	return copy(m.buf[off:], p), nil
}

func TestSaveLoadRoundTrip(t *testing.T) {
	nv := newMemNVRAM()
	s := NewStore(nv)

	s.SetActiveIndex(2)
	*s.Active() = Profile{MinHeight: 120.5, Diameter: 80, TargetCapacity: 500}
	if err := s.Save(2); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s2 := NewStore(nv)
	if err := s2.LoadAll(); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	s2.SetActiveIndex(2)
	got := *s2.Active()
	want := Profile{MinHeight: 120.5, Diameter: 80, TargetCapacity: 500}
	if got != want {
		t.Fatalf("slot 2 after reload = %+v, want %+v", got, want)
	}

	// Neighboring slots stay zeroed.
	s2.SetActiveIndex(1)
	if *s2.Active() != (Profile{}) {
		t.Fatalf("slot 1 = %+v, want zero", *s2.Active())
	}
}

func TestSaveOutOfRangeIsNoOp(t *testing.T) {
	nv := newMemNVRAM()
	s := NewStore(nv)
	*s.Active() = Profile{Diameter: 10}

	before := append([]byte(nil), nv.buf...)
	if err := s.Save(-1); err != nil {
		t.Fatalf("Save(-1): %v", err)
	}
	if err := s.Save(ProfileCount); err != nil {
		t.Fatalf("Save(%d): %v", ProfileCount, err)
	}
	for i := range before {
		if nv.buf[i] != before[i] {
			t.Fatalf("storage changed at byte %d", i)
		}
	}
}

func TestLoadActiveIndexHealsGarbage(t *testing.T) {
	for _, stored := range []int{-3, ProfileCount, 99} {
		nv := newMemNVRAM()
		EncodeIndex(nv.buf[IndexOffset:], stored)

		s := NewStore(nv)
		healed, err := s.LoadActiveIndex()
		if err != nil {
			t.Fatalf("stored=%d: LoadActiveIndex: %v", stored, err)
		}
		if !healed {
			t.Fatalf("stored=%d: expected heal", stored)
		}
		if s.ActiveIndex() != 0 {
			t.Fatalf("stored=%d: active = %d, want 0", stored, s.ActiveIndex())
		}
		// The correction must be persisted immediately.
		if got := DecodeIndex(nv.buf[IndexOffset:]); got != 0 {
			t.Fatalf("stored=%d: persisted index = %d, want 0", stored, got)
		}
	}
}

func TestLoadActiveIndexValid(t *testing.T) {
	nv := newMemNVRAM()
	EncodeIndex(nv.buf[IndexOffset:], 4)

	s := NewStore(nv)
	healed, err := s.LoadActiveIndex()
	if err != nil {
		t.Fatalf("LoadActiveIndex: %v", err)
	}
	if healed {
		t.Fatal("unexpected heal for a valid index")
	}
	if s.ActiveIndex() != 4 {
		t.Fatalf("active = %d, want 4", s.ActiveIndex())
	}
}

func TestLoadAllPassesNaNThrough(t *testing.T) {
	nv := newMemNVRAM()
	nanBits := math.Float32bits(float32(math.NaN()))
	for f := 0; f < 3; f++ {
		off := ProfileOffset(3) + f*4
		nv.buf[off+0] = byte(nanBits)
		nv.buf[off+1] = byte(nanBits >> 8)
		nv.buf[off+2] = byte(nanBits >> 16)
		nv.buf[off+3] = byte(nanBits >> 24)
	}

	s := NewStore(nv)
	if err := s.LoadAll(); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	s.SetActiveIndex(3)
	p := *s.Active()
	if !math32.IsNaN(p.MinHeight) || !math32.IsNaN(p.Diameter) || !math32.IsNaN(p.TargetCapacity) {
		t.Fatalf("NaN storage did not survive load: %+v", p)
	}
}

func TestSetActiveIndexGuardsArray(t *testing.T) {
	s := NewStore(newMemNVRAM())
	s.SetActiveIndex(3)
	s.SetActiveIndex(-1)
	if s.ActiveIndex() != 3 {
		t.Fatalf("active = %d, want 3", s.ActiveIndex())
	}
	s.SetActiveIndex(ProfileCount)
	if s.ActiveIndex() != 3 {
		t.Fatalf("active = %d, want 3", s.ActiveIndex())
	}
}
