package component

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is a packed 32-bit colour laid out as 0xAARRGGBB.
type Color uint32

// NRGBA unpacks c into a non-premultiplied colour.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(c >> 24),
	}
}

// Opaque reports whether the alpha channel is 0xFF.
func (c Color) Opaque() bool { return c>>24 == 0xFF }

func (c Color) String() string { return fmt.Sprintf("0x%08X", uint32(c)) }

// ParseColor accepts "0xAARRGGBB", "#AARRGGBB" or "#RRGGBB" (opaque).
func ParseColor(s string) (Color, error) {
	h := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(h, "0x"), strings.HasPrefix(h, "0X"):
		h = h[2:]
	case strings.HasPrefix(h, "#"):
		h = h[1:]
	}
	if len(h) != 6 && len(h) != 8 {
		return 0, fmt.Errorf("invalid color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(h) == 6 {
		v |= 0xFF000000
	}
	return Color(v), nil
}

// UnmarshalYAML lets config files spell colours as hex strings or integers.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: color must be a scalar", value.Line)
	}
	raw := value.Value
	if n, err := strconv.ParseUint(raw, 10, 32); err == nil {
		*c = Color(n)
		return nil
	}
	parsed, err := ParseColor(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
