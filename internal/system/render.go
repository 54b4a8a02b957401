// internal/system/render.go
package system

import (
	"fmt"

	"go-vector-demo/internal/component"
	"go-vector-demo/internal/entity"
	"go-vector-demo/internal/interfaces"
)

// CircleRenderSystem paints every Shape+Circle entity.
type CircleRenderSystem struct {
	ecs *entity.ECS
}

func NewCircleRenderSystem(ecs *entity.ECS) *CircleRenderSystem {
	return &CircleRenderSystem{ecs: ecs}
}

// Draw issues one FillCircle per matching entity, in query order.
func (s *CircleRenderSystem) Draw(p interfaces.Painter) error {
	for _, id := range s.ecs.Query(component.KindShape, component.KindCircle) {
		shape, ok := s.ecs.Shapes.Get(id)
		if !ok {
			continue
		}
		paint, _ := s.ecs.Paints.Get(id)
		circle, ok := paint.(component.Circle)
		if !ok {
			continue
		}
		x, y := shape.Anchor()
		if err := p.FillCircle(x, y, circle.Radius, shape.Color); err != nil {
			return fmt.Errorf("draw circle %d: %w", id, err)
		}
	}
	return nil
}

// TextRenderSystem paints every Shape+Text entity with the loaded font.
type TextRenderSystem struct {
	ecs *entity.ECS
}

func NewTextRenderSystem(ecs *entity.ECS) *TextRenderSystem {
	return &TextRenderSystem{ecs: ecs}
}

// Draw issues one FillText per matching entity, in query order.
func (s *TextRenderSystem) Draw(p interfaces.Painter) error {
	for _, id := range s.ecs.Query(component.KindShape, component.KindText) {
		shape, ok := s.ecs.Shapes.Get(id)
		if !ok {
			continue
		}
		paint, _ := s.ecs.Paints.Get(id)
		text, ok := paint.(component.Text)
		if !ok {
			continue
		}
		x, y := shape.Anchor()
		if err := p.FillText(x, y, text.Bytes(), shape.Color); err != nil {
			return fmt.Errorf("draw text %d: %w", id, err)
		}
	}
	return nil
}
