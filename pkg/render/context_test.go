package render

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"go-vector-demo/internal/component"
)

type fakeSurface struct {
	uploads   int
	presents  int
	releases  int
	last      []byte
	stride    int
	uploadErr error
}

func (s *fakeSurface) Upload(pix []byte, stride int) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	s.uploads++
	s.last = append(s.last[:0], pix...)
	s.stride = stride
	return nil
}

func (s *fakeSurface) Present() error { s.presents++; return nil }
func (s *fakeSurface) Release() error { s.releases++; return nil }

type fakeDevice struct {
	w, h    int
	surface *fakeSurface
	err     error
}

func (d *fakeDevice) Size() (int, int) { return d.w, d.h }

func (d *fakeDevice) NewSurface(w, h int) (Surface, error) {
	if d.err != nil {
		return nil, d.err
	}
	d.surface = &fakeSurface{}
	return d.surface, nil
}

func newTestContext(t *testing.T, dev *fakeDevice, bg component.Color) *Context {
	t.Helper()
	c, err := NewContext(dev, goregular.TTF, Options{Background: bg, FontSize: 24})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func pixelAt(pix []byte, stride, x, y int) [4]uint8 {
	i := y*stride + x*4
	return [4]uint8{pix[i], pix[i+1], pix[i+2], pix[i+3]}
}

func TestNewContextResourceFailures(t *testing.T) {
	tests := []struct {
		name     string
		dev      *fakeDevice
		font     []byte
		size     float64
		resource string
		released bool
	}{
		{"zero size", &fakeDevice{}, goregular.TTF, 24, "surface", false},
		{"surface error", &fakeDevice{w: 8, h: 8, err: errors.New("no texture")}, goregular.TTF, 24, "surface", false},
		{"canvas too large", &fakeDevice{w: 100000, h: 100000}, goregular.TTF, 24, "canvas", true},
		{"bad font bytes", &fakeDevice{w: 8, h: 8}, []byte("not a font"), 24, "font face", true},
		{"empty font", &fakeDevice{w: 8, h: 8}, nil, 24, "font face", true},
		{"font size", &fakeDevice{w: 8, h: 8}, goregular.TTF, 0, "font", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContext(tt.dev, tt.font, Options{FontSize: tt.size})
			if c != nil {
				t.Fatal("NewContext returned a context on failure")
			}
			var rerr *ResourceError
			if !errors.As(err, &rerr) {
				t.Fatalf("err = %v, want *ResourceError", err)
			}
			if rerr.Resource != tt.resource {
				t.Errorf("Resource = %q, want %q", rerr.Resource, tt.resource)
			}
			if tt.released {
				if tt.dev.surface == nil || tt.dev.surface.releases != 1 {
					t.Errorf("surface not released exactly once: %+v", tt.dev.surface)
				}
			}
		})
	}
}

func TestEmptyFrameIsBackground(t *testing.T) {
	const bg component.Color = 0xFF203040
	dev := &fakeDevice{w: 16, h: 12}
	c := newTestContext(t, dev, bg)
	want := PremultipliedBytes(bg)

	var frames [][]byte
	for i := 0; i < 2; i++ {
		f, err := c.Begin()
		if err != nil {
			t.Fatalf("Begin: %v", err)
		}
		if err := c.End(f); err != nil {
			t.Fatalf("End: %v", err)
		}
		frames = append(frames, append([]byte(nil), dev.surface.last...))
	}

	s := dev.surface
	if s.uploads != 2 || s.presents != 2 || s.stride != 16*4 {
		t.Fatalf("uploads=%d presents=%d stride=%d", s.uploads, s.presents, s.stride)
	}
	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			if got := pixelAt(frames[0], s.stride, x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if !bytes.Equal(frames[0], frames[1]) {
		t.Error("empty frames differ across ticks")
	}
}

func TestFillCirclePaintsCentre(t *testing.T) {
	dev := &fakeDevice{w: 64, h: 64}
	c := newTestContext(t, dev, DefaultBackground)

	f, _ := c.Begin()
	if err := f.FillCircle(32, 32, 10, 0xFF0000FF); err != nil {
		t.Fatalf("FillCircle: %v", err)
	}
	if err := c.End(f); err != nil {
		t.Fatalf("End: %v", err)
	}

	s := dev.surface
	// 0xFF0000FF is opaque blue in 0xAARRGGBB.
	if got := pixelAt(s.last, s.stride, 32, 32); got[0] > 4 || got[1] > 4 || got[2] < 250 || got[3] != 0xFF {
		t.Errorf("centre pixel = %v, want opaque blue", got)
	}
	if got := pixelAt(s.last, s.stride, 2, 2); got != PremultipliedBytes(DefaultBackground) {
		t.Errorf("corner pixel = %v, want background", got)
	}
}

func TestFillTextPaintsAboveBaseline(t *testing.T) {
	dev := &fakeDevice{w: 120, h: 60}
	c := newTestContext(t, dev, DefaultBackground)

	f, _ := c.Begin()
	if err := f.FillText(10, 40, []byte("Hi"), 0xFFFFFFFF); err != nil {
		t.Fatalf("FillText: %v", err)
	}
	if err := c.End(f); err != nil {
		t.Fatalf("End: %v", err)
	}

	s := dev.surface
	bg := PremultipliedBytes(DefaultBackground)
	painted := 0
	for y := 15; y < 40; y++ {
		for x := 10; x < 60; x++ {
			if pixelAt(s.last, s.stride, x, y) != bg {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("no glyph pixels above the baseline")
	}
	for x := 0; x < 120; x++ {
		if pixelAt(s.last, s.stride, x, 55) != bg {
			t.Fatalf("pixel (%d,55) painted well below the baseline", x)
		}
	}
}

func TestFrameProtocolErrors(t *testing.T) {
	dev := &fakeDevice{w: 8, h: 8}
	c := newTestContext(t, dev, DefaultBackground)

	f, err := c.Begin()
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if _, err := c.Begin(); !errors.Is(err, ErrFrameOpen) {
		t.Errorf("second Begin = %v, want ErrFrameOpen", err)
	}
	if err := c.End(&Frame{ctx: c}); !errors.Is(err, ErrNoFrame) {
		t.Errorf("End(foreign) = %v, want ErrNoFrame", err)
	}
	if err := f.FillCircle(1, 1, 0, 0xFFFFFFFF); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("zero radius = %v, want ErrInvalidGeometry", err)
	}
	if err := c.End(f); err != nil {
		t.Fatalf("End: %v", err)
	}
	if err := f.FillCircle(1, 1, 1, 0xFFFFFFFF); !errors.Is(err, ErrFrameClosed) {
		t.Errorf("draw after End = %v, want ErrFrameClosed", err)
	}
	if err := f.FillText(1, 1, []byte("x"), 0xFFFFFFFF); !errors.Is(err, ErrFrameClosed) {
		t.Errorf("text after End = %v, want ErrFrameClosed", err)
	}
	if err := c.End(f); !errors.Is(err, ErrNoFrame) {
		t.Errorf("double End = %v, want ErrNoFrame", err)
	}
}

func TestEndClosesFrameWhenUploadFails(t *testing.T) {
	dev := &fakeDevice{w: 8, h: 8}
	c := newTestContext(t, dev, DefaultBackground)
	dev.surface.uploadErr = errors.New("device lost")

	f, _ := c.Begin()
	if err := c.End(f); err == nil {
		t.Fatal("End succeeded despite upload failure")
	}
	if err := f.FillCircle(1, 1, 1, 0xFFFFFFFF); !errors.Is(err, ErrFrameClosed) {
		t.Errorf("frame still usable after failed End: %v", err)
	}
	dev.surface.uploadErr = nil
	if _, err := c.Begin(); err != nil {
		t.Errorf("Begin after failed End: %v", err)
	}
	if c.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0", c.Frames())
	}
}

func TestCloseReleasesOnceInReverseOrder(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	dev := &fakeDevice{w: 8, h: 8}
	c, err := NewContext(dev, goregular.TTF, Options{FontSize: 12, Logger: logger})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, err := c.Begin(); !errors.Is(err, ErrClosed) {
		t.Errorf("Begin after Close = %v, want ErrClosed", err)
	}
	if dev.surface.releases != 1 {
		t.Errorf("surface released %d times", dev.surface.releases)
	}

	out := buf.String()
	font := strings.Index(out, "resource=font")
	canvas := strings.Index(out, "resource=canvas")
	surface := strings.Index(out, "resource=surface")
	if font < 0 || canvas < 0 || surface < 0 || !(font < canvas && canvas < surface) {
		t.Errorf("release order wrong or missing:\n%s", out)
	}
	for _, r := range []string{"resource=font", "resource=canvas", "resource=surface"} {
		if n := strings.Count(out, r); n != 1 {
			t.Errorf("%s logged %d times", r, n)
		}
	}
}

func TestDiscardSkipsSurface(t *testing.T) {
	dev := &fakeDevice{w: 8, h: 8}
	c := newTestContext(t, dev, DefaultBackground)

	f, _ := c.Begin()
	if err := c.Discard(f); err != nil {
		t.Fatalf("Discard: %v", err)
	}
	if dev.surface.uploads != 0 || dev.surface.presents != 0 {
		t.Errorf("discarded frame reached the surface: %+v", dev.surface)
	}
	if err := c.Discard(f); !errors.Is(err, ErrNoFrame) {
		t.Errorf("second Discard = %v, want ErrNoFrame", err)
	}
	if _, err := c.Begin(); err != nil {
		t.Errorf("Begin after Discard: %v", err)
	}
}
