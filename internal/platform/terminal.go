// internal/platform/terminal.go
package platform

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-vector-demo/internal/interfaces"
	"go-vector-demo/pkg/render"
)

// halfBlock paints the upper half of a cell with the foreground colour and
// the lower half with the background, giving two square-ish pixels per cell.
const halfBlock = '▀'

// TerminalConfig controls the terminal runner.
type TerminalConfig struct {
	TPS int
}

// TerminalDevice renders into a tcell screen. The canvas keeps its own
// size and is scaled to fit the terminal on every upload, so resizes need
// no new surface.
type TerminalDevice struct {
	screen        tcell.Screen
	width, height int
}

func NewTerminalDevice(screen tcell.Screen, width, height int) *TerminalDevice {
	return &TerminalDevice{screen: screen, width: width, height: height}
}

func (d *TerminalDevice) Size() (int, int) { return d.width, d.height }

func (d *TerminalDevice) NewSurface(w, h int) (render.Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", render.ErrInvalidSize, w, h)
	}
	return &terminalSurface{screen: d.screen, width: w, height: h}, nil
}

type terminalSurface struct {
	screen        tcell.Screen
	width, height int
	released      bool
}

// Upload scales the canvas into the cell grid, centred and with its aspect
// ratio kept. Cells outside the picture are black.
func (s *terminalSurface) Upload(pix []byte, stride int) error {
	if s.released {
		return render.ErrClosed
	}
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}

	gw, gh := cols, rows*2
	scale := math.Min(float64(gw)/float64(s.width), float64(gh)/float64(s.height))
	ow := int(float64(s.width) * scale)
	oh := int(float64(s.height) * scale)
	ox, oy := (gw-ow)/2, (gh-oh)/2

	sample := func(gx, gy int) tcell.Color {
		if gx < ox || gy < oy || gx >= ox+ow || gy >= oy+oh {
			return tcell.ColorBlack
		}
		sx := min(int((float64(gx-ox)+0.5)/scale), s.width-1)
		sy := min(int((float64(gy-oy)+0.5)/scale), s.height-1)
		i := sy*stride + sx*4
		return tcell.NewRGBColor(int32(pix[i]), int32(pix[i+1]), int32(pix[i+2]))
	}

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			style := tcell.StyleDefault.
				Foreground(sample(cx, cy*2)).
				Background(sample(cx, cy*2+1))
			s.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	return nil
}

func (s *terminalSurface) Present() error {
	if s.released {
		return render.ErrClosed
	}
	s.screen.Show()
	return nil
}

// Release leaves the screen alone; whoever called Init calls Fini.
func (s *terminalSurface) Release() error {
	s.released = true
	return nil
}

// RunTerminal ticks d at cfg.TPS and feeds it keyboard input from screen.
// Esc, q and Ctrl-C quit; cancelling ctx quits too. It returns once the
// status is terminal.
func RunTerminal(ctx context.Context, d interfaces.Driver, screen tcell.Screen, cfg TerminalConfig) error {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(cfg.TPS))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			d.Quit()
			return nil
		case ev := <-events:
			handleTerminalEvent(d, screen, ev)
		case <-ticker.C:
			if st := d.Tick(); st.Terminal() {
				return nil
			}
		}
	}
}

func handleTerminalEvent(d interfaces.Driver, screen tcell.Screen, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			d.Quit()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			d.Quit()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0:
			d.Quit()
		}
	case *tcell.EventResize:
		screen.Sync()
	}
}
