// internal/component/render.go
package component

import "unicode/utf8"

// Paint is the paintable aspect of an entity. It is a closed set:
// only Circle and Text implement it, so an entity can never carry both.
type Paint interface {
	Kind() Kind
	paint()
}

// Circle paints a filled circle centred on the shape anchor.
type Circle struct {
	Radius float64
}

func (Circle) Kind() Kind { return KindCircle }
func (Circle) paint()     {}

// Text paints a UTF-8 string whose baseline starts at the shape anchor.
// The bytes are copied on construction and never handed out directly.
type Text struct {
	chars []byte
}

// NewText copies s into a new Text.
func NewText(s string) Text {
	return Text{chars: []byte(s)}
}

// NewTextBytes copies b into a new Text.
func NewTextBytes(b []byte) Text {
	chars := make([]byte, len(b))
	copy(chars, b)
	return Text{chars: chars}
}

func (Text) Kind() Kind { return KindText }
func (Text) paint()     {}

// Bytes returns a copy of the stored bytes.
func (t Text) Bytes() []byte {
	out := make([]byte, len(t.chars))
	copy(out, t.chars)
	return out
}

func (t Text) String() string { return string(t.chars) }

// Len is the length in bytes.
func (t Text) Len() int { return len(t.chars) }

// Valid reports whether the bytes are well-formed UTF-8.
func (t Text) Valid() bool { return utf8.Valid(t.chars) }
