package tank

import (
	"fmt"

	"mvm/hal"
)

// Store owns the five profile slots and the active-slot index, and
// mirrors them to non-volatile storage on explicit save calls.
type Store struct {
	nv       hal.NVRAM
	profiles [ProfileCount]Profile
	active   int
}

func NewStore(nv hal.NVRAM) *Store {
	return &Store{nv: nv}
}

// LoadAll reads every slot from storage into memory. Field values are
// not validated; see DecodeProfile.
func (s *Store) LoadAll() error {
	var buf [ProfileBytes]byte
	for i := 0; i < ProfileCount; i++ {
		if _, err := s.nv.ReadAt(buf[:], int64(ProfileOffset(i))); err != nil {
			return fmt.Errorf("load profile %d: %w", i, err)
		}
		s.profiles[i] = DecodeProfile(buf[:])
	}
	return nil
}

// Save persists slot i. An out-of-range index is a silent no-op, as on
// the original appliance.
func (s *Store) Save(i int) error {
	if i < 0 || i >= ProfileCount {
		return nil
	}
	var buf [ProfileBytes]byte
	EncodeProfile(buf[:], s.profiles[i])
	if _, err := s.nv.WriteAt(buf[:], int64(ProfileOffset(i))); err != nil {
		return fmt.Errorf("save profile %d: %w", i, err)
	}
	return nil
}

// Active returns the in-memory active profile for reads and edits.
func (s *Store) Active() *Profile {
	return &s.profiles[s.active]
}

func (s *Store) ActiveIndex() int { return s.active }

// SetActiveIndex changes the in-memory index. Callers clamp; the store
// only guards its own array access.
func (s *Store) SetActiveIndex(i int) {
	if i < 0 || i >= ProfileCount {
		return
	}
	s.active = i
}

// SaveActiveIndex persists the active-slot record.
func (s *Store) SaveActiveIndex() error {
	var buf [4]byte
	EncodeIndex(buf[:], s.active)
	if _, err := s.nv.WriteAt(buf[:], IndexOffset); err != nil {
		return fmt.Errorf("save active index: %w", err)
	}
	return nil
}

// LoadActiveIndex reads the persisted index at boot. A stored value
// outside [0, ProfileCount) — uninitialized or corrupted storage — is
// reset to 0 and written back immediately. healed reports whether that
// self-repair ran.
func (s *Store) LoadActiveIndex() (healed bool, err error) {
	var buf [4]byte
	if _, err := s.nv.ReadAt(buf[:], IndexOffset); err != nil {
		s.active = 0
		return false, fmt.Errorf("load active index: %w", err)
	}
	i := DecodeIndex(buf[:])
	if i < 0 || i >= ProfileCount {
		s.active = 0
		if err := s.SaveActiveIndex(); err != nil {
			return true, err
		}
		return true, nil
	}
	s.active = i
	return false, nil
}
