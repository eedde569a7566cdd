//go:build tinygo && baremetal && !rp2040 && !rp2350

package hal

// Non-RP2 targets get volatile storage: the appliance runs, profiles
// just do not survive a power cycle.
func newDeviceNVRAM() NVRAM {
	return &memNVRAM{buf: make([]byte, 256)}
}

type memNVRAM struct {
	buf []byte
}

func (m *memNVRAM) Size() int { return len(m.buf) }

func (m *memNVRAM) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(m.buf)) {
		return 0, ErrNotImplemented
	}
	return copy(p, m.buf[off:]), nil
}

func (m *memNVRAM) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(m.buf)) {
		return 0, ErrNotImplemented
	}
	return copy(m.buf[off:], p), nil
}
