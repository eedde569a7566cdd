// Package tank holds the tank-profile model, its storage codec and the
// volume math.
package tank

import (
	"encoding/binary"
	"math"
)

const (
	// ProfileCount is the number of profile slots in storage.
	ProfileCount = 5

	// ProfileBytes is one stored record: three little-endian float32,
	// no padding.
	ProfileBytes = 12

	// IndexOffset is where the active-slot record sits, immediately
	// after the profile slots.
	IndexOffset = ProfileCount * ProfileBytes

	// StorageBytes is the full EEPROM image size.
	StorageBytes = IndexOffset + 4
)

// Profile is one tank configuration slot. The zero value means unset.
type Profile struct {
	MinHeight      float32 // sensor-to-surface distance at max fill, cm
	Diameter       float32 // tank internal diameter, cm
	TargetCapacity float32 // nominal full capacity, liters
}

// ProfileOffset returns the storage offset of slot i.
func ProfileOffset(i int) int { return i * ProfileBytes }

// EncodeProfile writes p into b, which must hold ProfileBytes.
func EncodeProfile(b []byte, p Profile) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(p.MinHeight))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(p.Diameter))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(p.TargetCapacity))
}

// DecodeProfile reads a record from b. Field values are taken as-is:
// uninitialized storage decodes to garbage floats, including NaN, and
// the UI layer is responsible for surviving them.
func DecodeProfile(b []byte) Profile {
	return Profile{
		MinHeight:      math.Float32frombits(binary.LittleEndian.Uint32(b[0:])),
		Diameter:       math.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
		TargetCapacity: math.Float32frombits(binary.LittleEndian.Uint32(b[8:])),
	}
}

// EncodeIndex writes the active-slot record.
func EncodeIndex(b []byte, i int) {
	binary.LittleEndian.PutUint32(b, uint32(int32(i)))
}

// DecodeIndex reads the active-slot record without validation.
func DecodeIndex(b []byte) int {
	return int(int32(binary.LittleEndian.Uint32(b)))
}
