// pkg/render/context.go
package render

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"go-vector-demo/internal/component"
)

// maxCanvasPixels bounds the canvas allocation (8K UHD).
const maxCanvasPixels = 7680 * 4320

// Options configures a Context. Zero Width/Height take the device size.
type Options struct {
	Width, Height int
	Background    component.Color
	FontSize      float64
	Logger        *slog.Logger
}

// Context owns the destination surface, the vector canvas and the loaded
// font. Each tick opens one Frame with Begin and hands it back with End.
type Context struct {
	log        *slog.Logger
	background component.Color
	width      int
	height     int

	surface    Surface
	pixmap     *gg.Pixmap
	canvas     *gg.Context
	fontSource *text.FontSource
	face       text.Face

	frame  *Frame
	frames uint64
	closed bool
}

// NewContext acquires, in order, the surface, the canvas, the font face and
// the sized font. A failure releases whatever was already acquired and
// returns a *ResourceError naming the resource.
func NewContext(dev Device, fontData []byte, opts Options) (*Context, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	w, h := opts.Width, opts.Height
	if w == 0 && h == 0 {
		w, h = dev.Size()
	}
	if w <= 0 || h <= 0 {
		return nil, &ResourceError{Resource: "surface", Err: fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)}
	}

	c := &Context{
		log:        logger,
		background: opts.Background,
		width:      w,
		height:     h,
	}

	surface, err := dev.NewSurface(w, h)
	if err != nil {
		return nil, &ResourceError{Resource: "surface", Err: err}
	}
	c.surface = surface

	if w*h > maxCanvasPixels {
		c.release()
		return nil, &ResourceError{Resource: "canvas", Err: fmt.Errorf("%w: %dx%d exceeds canvas limit", ErrInvalidSize, w, h)}
	}
	c.pixmap = gg.NewPixmap(w, h)
	c.canvas = gg.NewContext(w, h, gg.WithPixmap(c.pixmap))

	src, err := text.NewFontSource(fontData)
	if err != nil {
		c.release()
		return nil, &ResourceError{Resource: "font face", Err: err}
	}
	c.fontSource = src

	if opts.FontSize <= 0 {
		c.release()
		return nil, &ResourceError{Resource: "font", Err: fmt.Errorf("%w: %v", ErrInvalidFontSize, opts.FontSize)}
	}
	c.face = src.Face(opts.FontSize)
	c.canvas.SetFont(c.face)

	logger.Debug("render context ready",
		"width", w, "height", h,
		"font", src.Name(), "size", opts.FontSize,
		"background", opts.Background)
	return c, nil
}

func (c *Context) Size() (width, height int) { return c.width, c.height }

// Frames returns how many frames were presented.
func (c *Context) Frames() uint64 { return c.frames }

// Begin clears the canvas to the background and opens the frame handle.
// Only one frame may be open at a time.
func (c *Context) Begin() (*Frame, error) {
	if c.closed {
		return nil, ErrClosed
	}
	if c.frame != nil {
		return nil, ErrFrameOpen
	}
	c.canvas.ClearPath()
	c.canvas.Identity()
	c.canvas.ClearWithColor(clearColor(c.background))

	c.frame = &Frame{ctx: c}
	return c.frame, nil
}

// End closes f, copies the whole canvas into the surface and presents it.
// The frame is closed and the canvas reset even when the blit fails.
func (c *Context) End(f *Frame) error {
	if f == nil || f != c.frame {
		return ErrNoFrame
	}
	defer func() {
		f.closed = true
		c.frame = nil
		c.canvas.ClearPath()
		c.canvas.Identity()
	}()

	if err := c.canvas.FlushGPU(); err != nil {
		return fmt.Errorf("render: flush canvas: %w", err)
	}
	if err := c.surface.Upload(c.pixmap.Data(), c.width*4); err != nil {
		return fmt.Errorf("render: upload frame: %w", err)
	}
	if err := c.surface.Present(); err != nil {
		return fmt.Errorf("render: present frame: %w", err)
	}
	c.frames++
	return nil
}

// Snapshot copies the current canvas pixels, or returns nil once closed.
func (c *Context) Snapshot() *image.RGBA {
	if c.pixmap == nil {
		return nil
	}
	return c.pixmap.ToImage()
}

// SavePNG writes the current canvas to path.
func (c *Context) SavePNG(path string) error {
	if c.closed {
		return ErrClosed
	}
	return c.pixmap.SavePNG(path)
}

// Close releases the font, the canvas and the surface, in that order.
// Calling it again is a no-op.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.frame != nil {
		c.frame.closed = true
		c.frame = nil
	}
	return c.release()
}

func (c *Context) release() error {
	var errs []error
	if c.fontSource != nil {
		if err := c.fontSource.Close(); err != nil {
			errs = append(errs, fmt.Errorf("release font: %w", err))
		}
		c.fontSource = nil
		c.face = nil
		c.log.Debug("render resource released", "resource", "font")
	}
	if c.canvas != nil {
		if err := c.canvas.Close(); err != nil {
			errs = append(errs, fmt.Errorf("release canvas: %w", err))
		}
		c.canvas = nil
		c.pixmap = nil
		c.log.Debug("render resource released", "resource", "canvas")
	}
	if c.surface != nil {
		if err := c.surface.Release(); err != nil {
			errs = append(errs, fmt.Errorf("release surface: %w", err))
		}
		c.surface = nil
		c.log.Debug("render resource released", "resource", "surface")
	}
	return errors.Join(errs...)
}

// Discard closes f without touching the surface. Used when a frame is
// abandoned part way; the canvas is reset for the next Begin.
func (c *Context) Discard(f *Frame) error {
	if f == nil || f != c.frame {
		return ErrNoFrame
	}
	f.closed = true
	c.frame = nil
	c.canvas.ClearPath()
	c.canvas.Identity()
	return nil
}
