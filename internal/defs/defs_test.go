package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go-vector-demo/internal/component"
	"go-vector-demo/internal/config"
)

const sampleScene = `
entities:
  - name: ball
    shape: {x: 100, y: 100, color: 0xFF0000FF}
    circle: {radius: 50}
    moving: {phase: 200}
  - name: label
    shape: {x: 50, y: 80, color: "#FFFFFF"}
    text: "Hi"
`

func TestParseScene(t *testing.T) {
	scene, err := ParseScene([]byte(sampleScene))
	if err != nil {
		t.Fatalf("ParseScene: %v", err)
	}
	if len(scene.Entities) != 2 {
		t.Fatalf("entities = %d, want 2", len(scene.Entities))
	}

	ball := scene.Entities[0]
	if ball.Shape.Color != 0xFF0000FF || ball.Moving == nil || ball.Moving.Phase != 200 {
		t.Errorf("ball = %+v", ball)
	}
	if c, ok := ball.Paint().(component.Circle); !ok || c.Radius != 50 {
		t.Errorf("ball paint = %#v", ball.Paint())
	}

	label := scene.Entities[1]
	if txt, ok := label.Paint().(component.Text); !ok || txt.String() != "Hi" {
		t.Errorf("label paint = %#v", label.Paint())
	}
	if label.Shape.Color != 0xFFFFFFFF {
		t.Errorf("label color = %v", label.Shape.Color)
	}
}

func TestParseSceneRejectsInvalidEntities(t *testing.T) {
	tests := map[string]string{
		"both kinds": `
entities:
  - shape: {x: 1, y: 1}
    circle: {radius: 3}
    text: "x"
`,
		"zero radius": `
entities:
  - shape: {x: 1, y: 1}
    circle: {radius: 0}
`,
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseScene([]byte(src)); !errors.Is(err, ErrInvalidScene) {
				t.Errorf("err = %v, want ErrInvalidScene", err)
			}
		})
	}
}

func TestLoadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(sampleScene), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScene(path); err != nil {
		t.Errorf("LoadScene: %v", err)
	}
	if _, err := LoadScene(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadScene on missing file succeeded")
	}
}

func TestDefaultScene(t *testing.T) {
	scene := DefaultScene(800, 600)
	if err := scene.Validate(); err != nil {
		t.Fatalf("default scene invalid: %v", err)
	}
	if len(scene.Entities) != len(config.CircleColors)+1 {
		t.Fatalf("entities = %d", len(scene.Entities))
	}
	// Circles are centred on x = 400, spaced 110 apart.
	if x := scene.Entities[0].Shape.X; x != 400-2*110 {
		t.Errorf("first circle x = %v", x)
	}
	if x := scene.Entities[2].Shape.X; x != 400 {
		t.Errorf("middle circle x = %v", x)
	}
	greeting := scene.Entities[len(scene.Entities)-1]
	if greeting.Shape.X != 290 || greeting.Shape.Y != 150 || greeting.Paint().Kind() != component.KindText {
		t.Errorf("greeting = %+v", greeting)
	}
}
