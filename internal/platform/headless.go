// internal/platform/headless.go
package platform

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go-vector-demo/internal/interfaces"
	"go-vector-demo/pkg/render"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz int
	// Ticks ends the run with success after this many ticks; 0 runs until
	// ctx is cancelled or the driver stops.
	Ticks uint64
}

// MemoryDevice keeps presented frames in memory.
type MemoryDevice struct {
	width, height int

	mu      sync.Mutex
	surface *MemorySurface
}

func NewMemoryDevice(width, height int) *MemoryDevice {
	return &MemoryDevice{width: width, height: height}
}

func (d *MemoryDevice) Size() (int, int) { return d.width, d.height }

func (d *MemoryDevice) NewSurface(w, h int) (render.Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", render.ErrInvalidSize, w, h)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.surface = &MemorySurface{width: w, height: h, pix: make([]byte, w*h*4)}
	return d.surface, nil
}

// Surface returns the last surface created, or nil.
func (d *MemoryDevice) Surface() *MemorySurface {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.surface
}

// MemorySurface holds the last uploaded frame as tightly packed RGBA.
type MemorySurface struct {
	mu            sync.Mutex
	width, height int
	pix           []byte
	presents      int
	released      bool
}

func (s *MemorySurface) Upload(pix []byte, stride int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return render.ErrClosed
	}
	row := s.width * 4
	for y := 0; y < s.height; y++ {
		copy(s.pix[y*row:(y+1)*row], pix[y*stride:y*stride+row])
	}
	return nil
}

func (s *MemorySurface) Present() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return render.ErrClosed
	}
	s.presents++
	return nil
}

func (s *MemorySurface) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.released = true
	return nil
}

// Presents reports how many frames were presented.
func (s *MemorySurface) Presents() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presents
}

// Released reports whether Release was called.
func (s *MemorySurface) Released() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.released
}

// Pixel returns the premultiplied RGBA bytes at (x, y).
func (s *MemorySurface) Pixel(x, y int) [4]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := (y*s.width + x) * 4
	return [4]byte{s.pix[i], s.pix[i+1], s.pix[i+2], s.pix[i+3]}
}

// RunHeadless ticks d on a timer without any window. Reaching the tick
// budget or cancelling ctx quits the driver.
func RunHeadless(ctx context.Context, d interfaces.Driver, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	period := time.Second / time.Duration(cfg.Hz)
	if period <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(period)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			d.Quit()
			return nil
		case <-t.C:
			if st := d.Tick(); st.Terminal() {
				return nil
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				d.Quit()
				return nil
			}
		}
	}
}
