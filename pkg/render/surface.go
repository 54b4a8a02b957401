// pkg/render/surface.go
package render

// Device is the output device a window or terminal backend hands to the
// render context. Its size is fixed for the process lifetime.
type Device interface {
	Size() (width, height int)
	NewSurface(width, height int) (Surface, error)
}

// Surface receives finished frames.
type Surface interface {
	// Upload copies a full frame of premultiplied RGBA pixels.
	Upload(pix []byte, stride int) error
	// Present asks the device to show the last uploaded frame.
	Present() error
	Release() error
}
