// internal/system/movement.go
package system

import (
	"time"

	"go-vector-demo/internal/component"
	"go-vector-demo/internal/config"
	"go-vector-demo/internal/entity"
	"go-vector-demo/internal/utils"
)

// MovementSystem bobs every Shape+Moving entity up and down by writing
// its OffsetY. Base positions are left alone.
type MovementSystem struct {
	ecs       *entity.ECS
	Period    float64 // milliseconds per radian
	Amplitude float64
	Lift      float64
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{
		ecs:       ecs,
		Period:    config.WavePeriodMs,
		Amplitude: config.WaveAmplitude,
		Lift:      config.WaveLift,
	}
}

// Update samples the wave at now (time since startup).
func (s *MovementSystem) Update(now time.Duration) {
	ms := float64(now) / float64(time.Millisecond)
	for _, id := range s.ecs.Query(component.KindShape, component.KindMoving) {
		moving, _ := s.ecs.Movers.Get(id)
		offset := utils.Oscillate(ms+moving.Phase, s.Period, s.Amplitude, s.Lift)
		s.ecs.Shapes.Update(id, func(shape *component.Shape) {
			shape.OffsetY = offset
		})
	}
}
