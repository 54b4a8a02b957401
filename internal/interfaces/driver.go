// internal/interfaces/driver.go
package interfaces

import "go-vector-demo/internal/state"

// Driver is what a platform event loop drives once per tick.
// Tick returns the status after the phase sequence; loops stop once it is
// no longer state.Continue.
type Driver interface {
	Tick() state.Status
	Quit()
	Status() state.Status
}
