// internal/interfaces/painter.go
package interfaces

import "go-vector-demo/internal/component"

// Painter receives the draw calls of one frame. *render.Frame implements it.
type Painter interface {
	FillCircle(x, y, radius float64, c component.Color) error
	FillText(x, y float64, s []byte, c component.Color) error
}
