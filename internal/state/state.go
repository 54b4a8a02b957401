// internal/state/state.go
package state

import (
	"sync/atomic"

	"go-vector-demo/pkg/render"
)

// Status is the process-wide run status read by the driver every tick.
type Status int32

const (
	Continue Status = iota
	Success
	Failure
)

func (s Status) String() string {
	switch s {
	case Continue:
		return "continue"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// Terminal reports whether s ends the run.
func (s Status) Terminal() bool { return s != Continue }

// AppState holds the output device and the run status. Success and Failure
// are terminal: the first one set wins and Continue cannot come back.
type AppState struct {
	Device render.Device
	status atomic.Int32
}

// NewAppState creates a state in Continue for dev.
func NewAppState(dev render.Device) *AppState {
	return &AppState{Device: dev}
}

func (a *AppState) Status() Status {
	return Status(a.status.Load())
}

// Finish moves the state to a terminal status. It reports whether this
// call made the transition; later calls and Continue are ignored.
func (a *AppState) Finish(s Status) bool {
	if !s.Terminal() {
		return false
	}
	return a.status.CompareAndSwap(int32(Continue), int32(s))
}
