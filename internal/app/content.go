// internal/app/content.go
package app

import (
	"go-vector-demo/internal/component"
	"go-vector-demo/internal/defs"
	"go-vector-demo/internal/entity"
	"go-vector-demo/internal/types"
)

// SpawnScene validates scene and creates one entity per definition, in
// file order. Nothing is spawned if validation fails.
func SpawnScene(ecs *entity.ECS, scene defs.SceneDefinition) error {
	if err := scene.Validate(); err != nil {
		return err
	}
	for _, def := range scene.Entities {
		spawnEntity(ecs, def)
	}
	return nil
}

func spawnEntity(ecs *entity.ECS, def defs.EntityDefinition) types.EntityID {
	id := ecs.NewEntity()
	ecs.Shapes.Set(id, component.Shape{
		X:     def.Shape.X,
		Y:     def.Shape.Y,
		Color: def.Shape.Color,
	})
	if paint := def.Paint(); paint != nil {
		ecs.Paints.Set(id, paint)
	}
	if def.Moving != nil {
		ecs.Movers.Set(id, component.Moving{Phase: def.Moving.Phase})
	}
	return id
}
