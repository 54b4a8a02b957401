// internal/defs/scene.go
package defs

import "go-vector-demo/internal/config"

// DefaultScene is the demo content: a row of bobbing circles around the
// centre and a greeting above them.
func DefaultScene(width, height int) SceneDefinition {
	cx := float64(width) / 2
	cy := float64(height) / 2

	var scene SceneDefinition
	for i, col := range config.CircleColors {
		scene.Entities = append(scene.Entities, EntityDefinition{
			Shape: ShapeDefinition{
				X:     cx + float64(i-len(config.CircleColors)/2)*config.CircleSpacing,
				Y:     cy,
				Color: col,
			},
			Circle: &CircleDefinition{Radius: config.CircleRadius},
			Moving: &MovingDefinition{Phase: float64(i) * config.CirclePhaseMs},
		})
	}

	greeting := config.GreetingText
	scene.Entities = append(scene.Entities, EntityDefinition{
		Name: "greeting",
		Shape: ShapeDefinition{
			X:     cx - config.CircleSpacing,
			Y:     float64(height) / 4,
			Color: config.GreetingColor,
		},
		Text: &greeting,
	})
	return scene
}
