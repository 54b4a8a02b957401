// internal/event/types.go
package event

const (
	StatusChanged  EventType = "StatusChanged"  // Data: state.Status
	FramePresented EventType = "FramePresented" // Data: frame number (uint64)
)
