// pkg/render/color.go
package render

import (
	"image/color"

	"github.com/gogpu/gg"

	"go-vector-demo/internal/component"
)

// DefaultBackground is opaque black, the colour the canvas is cleared to
// when no backdrop is configured.
const DefaultBackground component.Color = 0xFF000000

// fillColor converts a packed colour into the paint colour gg expects.
func fillColor(c component.Color) color.Color {
	return c.NRGBA()
}

// clearColor converts a packed colour into the premultiplied value
// written by a canvas clear.
func clearColor(c component.Color) gg.RGBA {
	return gg.FromColor(c.NRGBA())
}

// PremultipliedBytes returns c as the four premultiplied RGBA bytes a
// cleared canvas holds for it.
func PremultipliedBytes(c component.Color) [4]uint8 {
	p := color.RGBAModel.Convert(c.NRGBA()).(color.RGBA)
	return [4]uint8{p.R, p.G, p.B, p.A}
}
