// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

var ErrInvalidScene = errors.New("invalid scene")

// LoadScene reads and validates a scene file.
func LoadScene(path string) (SceneDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return SceneDefinition{}, fmt.Errorf("failed to read scene file: %w", err)
	}
	return ParseScene(file)
}

// ParseScene decodes and validates scene YAML.
func ParseScene(data []byte) (SceneDefinition, error) {
	var scene SceneDefinition
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return SceneDefinition{}, fmt.Errorf("failed to unmarshal scene: %w", err)
	}
	if err := scene.Validate(); err != nil {
		return SceneDefinition{}, err
	}
	return scene, nil
}

// Validate rejects entities that would break the paint invariants.
func (s SceneDefinition) Validate() error {
	var errs []error
	for i, e := range s.Entities {
		label := e.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}
		if e.Circle != nil && e.Text != nil {
			errs = append(errs, fmt.Errorf("entity %s: circle and text are mutually exclusive", label))
		}
		if e.Circle != nil && !(e.Circle.Radius > 0) {
			errs = append(errs, fmt.Errorf("entity %s: radius must be positive, got %v", label, e.Circle.Radius))
		}
		if e.Text != nil && !utf8.ValidString(*e.Text) {
			errs = append(errs, fmt.Errorf("entity %s: text is not valid UTF-8", label))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidScene, errors.Join(errs...))
	}
	return nil
}
