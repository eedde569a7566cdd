//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"

	"mvm/internal/simcfg"
)

const hostNVRAMEnv = "MVM_EEPROM_PATH"

// hostNVRAM is the EEPROM image as a plain file, byte for byte the
// layout the device build reads.
type hostNVRAM struct {
	mu   sync.Mutex
	f    *os.File
	size int
}

func newHostNVRAM(cfg *simcfg.Config, logger *hostLogger) *hostNVRAM {
	path := os.Getenv(hostNVRAMEnv)
	if path == "" {
		path = cfg.EEPROM.Path
	}
	size := cfg.EEPROM.Size

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		logger.WriteLineString("eeprom: open " + path + " failed; storage disabled")
		return &hostNVRAM{size: size}
	}
	if st, err := f.Stat(); err != nil || st.Size() < int64(size) {
		if err := f.Truncate(int64(size)); err != nil {
			logger.WriteLineString("eeprom: truncate " + path + " failed; storage disabled")
			_ = f.Close()
			return &hostNVRAM{size: size}
		}
	}
	return &hostNVRAM{f: f, size: size}
}

func (n *hostNVRAM) Size() int { return n.size }

func (n *hostNVRAM) ReadAt(p []byte, off int64) (int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.f == nil {
		return 0, ErrNotImplemented
	}
	if off < 0 || off >= int64(n.size) {
		return 0, fmt.Errorf("eeprom read at %d: %w", off, os.ErrInvalid)
	}
	if maxN := int(int64(n.size) - off); len(p) > maxN {
		p = p[:maxN]
	}
	return n.f.ReadAt(p, off)
}

func (n *hostNVRAM) WriteAt(p []byte, off int64) (int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.f == nil {
		return 0, ErrNotImplemented
	}
	if off < 0 || off >= int64(n.size) {
		return 0, fmt.Errorf("eeprom write at %d: %w", off, os.ErrInvalid)
	}
	if maxN := int(int64(n.size) - off); len(p) > maxN {
		p = p[:maxN]
	}
	return n.f.WriteAt(p, off)
}
