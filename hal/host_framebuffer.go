//go:build !tinygo

package hal

import (
	"image/color"
	"sync"
)

// hostFramebuffer is a 1bpp framebuffer stored one byte per pixel.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int16
	height int16
	buf    []byte
}

func newHostFramebuffer(width, height int16) *hostFramebuffer {
	return &hostFramebuffer{
		width:  width,
		height: height,
		buf:    make([]byte, int(width)*int(height)),
	}
}

func (f *hostFramebuffer) Size() (int16, int16) { return f.width, f.height }

func (f *hostFramebuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if c.R|c.G|c.B != 0 {
		f.buf[int(y)*int(f.width)+int(x)] = 1
	} else {
		f.buf[int(y)*int(f.width)+int(x)] = 0
	}
}

func (f *hostFramebuffer) ClearBuffer() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.buf {
		f.buf[i] = 0
	}
}

// Display is a no-op on host; the window samples the buffer each frame.
func (f *hostFramebuffer) Display() error { return nil }

func (f *hostFramebuffer) snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}
