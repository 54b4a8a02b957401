// pkg/render/frame.go
package render

import (
	"fmt"
	"math"

	"go-vector-demo/internal/component"
)

// Frame is the drawing handle for one tick. It is only valid between the
// Begin that returned it and the matching End.
type Frame struct {
	ctx    *Context
	closed bool
}

// FillCircle fills a circle centred on (x, y).
func (f *Frame) FillCircle(x, y, radius float64, c component.Color) error {
	if f.closed {
		return ErrFrameClosed
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return fmt.Errorf("%w: radius %v", ErrInvalidGeometry, radius)
	}
	canvas := f.ctx.canvas
	canvas.SetColor(fillColor(c))
	canvas.DrawCircle(x, y, radius)
	return canvas.Fill()
}

// FillText fills s with the loaded font. (x, y) is the baseline origin;
// the text is neither wrapped nor clipped.
func (f *Frame) FillText(x, y float64, s []byte, c component.Color) error {
	if f.closed {
		return ErrFrameClosed
	}
	canvas := f.ctx.canvas
	canvas.SetColor(fillColor(c))
	canvas.DrawString(string(s), x, y)
	return nil
}
