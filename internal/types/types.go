// internal/types/types.go
package types

// EntityID identifies an entity in the ECS. Zero is never issued.
type EntityID uint64

// NoEntity is the zero EntityID.
const NoEntity EntityID = 0
