// internal/defs/types.go
package defs

import "go-vector-demo/internal/component"

// SceneDefinition lists the entities spawned at startup.
type SceneDefinition struct {
	Entities []EntityDefinition `yaml:"entities"`
}

// EntityDefinition describes one entity. Circle and Text are mutually
// exclusive; Moving is optional.
type EntityDefinition struct {
	Name   string            `yaml:"name"`
	Shape  ShapeDefinition   `yaml:"shape"`
	Circle *CircleDefinition `yaml:"circle"`
	Text   *string           `yaml:"text"`
	Moving *MovingDefinition `yaml:"moving"`
}

type ShapeDefinition struct {
	X     float64         `yaml:"x"`
	Y     float64         `yaml:"y"`
	Color component.Color `yaml:"color"`
}

type CircleDefinition struct {
	Radius float64 `yaml:"radius"`
}

type MovingDefinition struct {
	Phase float64 `yaml:"phase"`
}

// Paint returns the paintable aspect of d, or nil when d has none.
func (d EntityDefinition) Paint() component.Paint {
	switch {
	case d.Circle != nil:
		return component.Circle{Radius: d.Circle.Radius}
	case d.Text != nil:
		return component.NewText(*d.Text)
	default:
		return nil
	}
}
