// internal/platform/window.go
package platform

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-vector-demo/internal/interfaces"
	"go-vector-demo/pkg/render"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	TPS    int
}

// WindowDevice presents frames through an ebiten image. Surfaces must be
// created inside the game loop, which holds because startup runs on the
// first Tick.
type WindowDevice struct {
	width, height int
	surface       *windowSurface
}

func NewWindowDevice(width, height int) *WindowDevice {
	return &WindowDevice{width: width, height: height}
}

func (d *WindowDevice) Size() (int, int) { return d.width, d.height }

func (d *WindowDevice) NewSurface(w, h int) (render.Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", render.ErrInvalidSize, w, h)
	}
	d.surface = &windowSurface{img: ebiten.NewImage(w, h), width: w, height: h}
	return d.surface, nil
}

type windowSurface struct {
	img           *ebiten.Image
	width, height int
	scratch       []byte
	presented     bool
	released      bool
}

// Upload copies premultiplied RGBA rows into the image.
func (s *windowSurface) Upload(pix []byte, stride int) error {
	if s.released {
		return render.ErrClosed
	}
	s.img.WritePixels(packRows(pix, stride, s.width, s.height, &s.scratch))
	return nil
}

func (s *windowSurface) Present() error {
	if s.released {
		return render.ErrClosed
	}
	s.presented = true
	return nil
}

func (s *windowSurface) Release() error {
	if s.released {
		return nil
	}
	s.released = true
	s.img.Deallocate()
	return nil
}

// packRows returns pix without row padding, reusing *buf when it must copy.
func packRows(pix []byte, stride, width, height int, buf *[]byte) []byte {
	row := width * 4
	if stride == row {
		return pix[:row*height]
	}
	if cap(*buf) < row*height {
		*buf = make([]byte, row*height)
	}
	out := (*buf)[:row*height]
	for y := 0; y < height; y++ {
		copy(out[y*row:(y+1)*row], pix[y*stride:y*stride+row])
	}
	return out
}

// RunWindow opens a window and ticks d at cfg.TPS until the run ends.
// Escape or closing the window quits. It blocks until the window closes.
func RunWindow(d interfaces.Driver, dev *WindowDevice, cfg WindowConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(dev.width, dev.height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowClosingHandled(true)

	err := ebiten.RunGame(&windowGame{driver: d, dev: dev})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type windowGame struct {
	driver interfaces.Driver
	dev    *WindowDevice
}

func (g *windowGame) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.driver.Quit()
	}
	if st := g.driver.Tick(); st.Terminal() {
		return ebiten.Termination
	}
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	s := g.dev.surface
	if s == nil || !s.presented || s.released {
		return
	}
	screen.DrawImage(s.img, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.dev.width, g.dev.height
}
