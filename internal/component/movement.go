// internal/component/movement.go
package component

// Shape is the anchor attribute of every drawable entity.
// OffsetX and OffsetY belong to animation systems; draw systems only read them.
type Shape struct {
	X, Y             float64
	OffsetX, OffsetY float64
	Color            Color
}

// Anchor returns the base position shifted by the animation offsets.
func (s Shape) Anchor() (x, y float64) {
	return s.X + s.OffsetX, s.Y + s.OffsetY
}

// Moving marks a shape for the oscillation animation.
// Phase is added to the clock (in milliseconds) before sampling the wave.
type Moving struct {
	Phase float64
}
