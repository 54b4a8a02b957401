package render

import (
	"errors"
	"fmt"
)

var (
	ErrFrameOpen       = errors.New("render: frame already open")
	ErrNoFrame         = errors.New("render: frame is not the open frame")
	ErrFrameClosed     = errors.New("render: draw on closed frame")
	ErrClosed          = errors.New("render: context closed")
	ErrInvalidSize     = errors.New("render: invalid surface size")
	ErrInvalidFontSize = errors.New("render: invalid font size")
	ErrInvalidGeometry = errors.New("render: invalid geometry")
)

// ResourceError reports which startup resource could not be acquired.
type ResourceError struct {
	Resource string
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("render: create %s: %v", e.Resource, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }
