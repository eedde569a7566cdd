//go:build tinygo && baremetal && (rp2040 || rp2350)

package hal

import (
	"fmt"
	"machine"
	"os"
)

// rp2NVRAM emulates a small byte-addressable EEPROM in the last erase
// block of the on-board flash. Writes read the whole block into RAM,
// patch it, erase and rewrite; at a 10 Hz control cycle with saves only
// on explicit menu actions, wear is not a concern.
type rp2NVRAM struct {
	base  int64
	block []byte
	size  int
}

func newDeviceNVRAM() NVRAM {
	bs := machine.Flash.EraseBlockSize()
	total := machine.Flash.Size()
	if bs <= 0 || total <= bs {
		return nullNVRAM{}
	}
	return &rp2NVRAM{
		base:  total - bs,
		block: make([]byte, bs),
		size:  int(bs),
	}
}

func (n *rp2NVRAM) Size() int { return n.size }

func (n *rp2NVRAM) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(n.size) {
		return 0, fmt.Errorf("eeprom read at %d: %w", off, os.ErrInvalid)
	}
	if maxN := int(int64(n.size) - off); len(p) > maxN {
		p = p[:maxN]
	}
	nr, err := machine.Flash.ReadAt(p, n.base+off)
	if err != nil {
		return nr, fmt.Errorf("eeprom read at %d: %w", off, err)
	}
	return nr, nil
}

func (n *rp2NVRAM) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(n.size) {
		return 0, fmt.Errorf("eeprom write at %d: %w", off, os.ErrInvalid)
	}
	if maxN := int(int64(n.size) - off); len(p) > maxN {
		p = p[:maxN]
	}

	if _, err := machine.Flash.ReadAt(n.block, n.base); err != nil {
		return 0, fmt.Errorf("eeprom read before write: %w", err)
	}
	copy(n.block[off:], p)

	bs := int64(len(n.block))
	if err := machine.Flash.EraseBlocks(n.base/bs, 1); err != nil {
		return 0, fmt.Errorf("eeprom erase: %w", err)
	}
	if _, err := machine.Flash.WriteAt(n.block, n.base); err != nil {
		return 0, fmt.Errorf("eeprom write at %d: %w", off, err)
	}
	return len(p), nil
}

// nullNVRAM backs targets without usable flash; every boot starts from
// defaults and saves are lost.
type nullNVRAM struct{}

func (nullNVRAM) Size() int                                { return 0 }
func (nullNVRAM) ReadAt(p []byte, off int64) (int, error)  { return 0, ErrNotImplemented }
func (nullNVRAM) WriteAt(p []byte, off int64) (int, error) { return 0, ErrNotImplemented }
