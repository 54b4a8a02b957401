// internal/app/renderer.go
package app

import (
	"image"

	"go-vector-demo/internal/interfaces"
	"go-vector-demo/pkg/render"
)

// Renderer is the scheduler's view of the render context: one open frame
// at a time, handed out as a Painter.
type Renderer interface {
	BeginFrame() (interfaces.Painter, error)
	// EndFrame presents the open frame.
	EndFrame() error
	// AbortFrame drops the open frame without presenting it.
	AbortFrame() error
	Frames() uint64
	Close() error
}

// Snapshotter is implemented by renderers that can copy out the last frame.
type Snapshotter interface {
	Snapshot() *image.RGBA
	SavePNG(path string) error
}

// RendererFactory builds the Renderer at startup.
type RendererFactory func(dev render.Device, font []byte, opts render.Options) (Renderer, error)

// NewContextRenderer is the default factory, backed by render.Context.
func NewContextRenderer(dev render.Device, font []byte, opts render.Options) (Renderer, error) {
	ctx, err := render.NewContext(dev, font, opts)
	if err != nil {
		return nil, err
	}
	return &contextRenderer{ctx: ctx}, nil
}

type contextRenderer struct {
	ctx   *render.Context
	frame *render.Frame
}

func (r *contextRenderer) BeginFrame() (interfaces.Painter, error) {
	f, err := r.ctx.Begin()
	if err != nil {
		return nil, err
	}
	r.frame = f
	return f, nil
}

func (r *contextRenderer) EndFrame() error {
	f := r.frame
	r.frame = nil
	return r.ctx.End(f)
}

func (r *contextRenderer) AbortFrame() error {
	f := r.frame
	r.frame = nil
	return r.ctx.Discard(f)
}

func (r *contextRenderer) Frames() uint64 { return r.ctx.Frames() }

func (r *contextRenderer) Close() error { return r.ctx.Close() }

func (r *contextRenderer) Snapshot() *image.RGBA { return r.ctx.Snapshot() }

func (r *contextRenderer) SavePNG(path string) error { return r.ctx.SavePNG(path) }
