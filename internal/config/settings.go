// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"go-vector-demo/internal/component"
)

// Settings is the runtime configuration. Every field has a default, so an
// empty or missing file is valid.
type Settings struct {
	Backend    string           `yaml:"backend"`
	Title      string           `yaml:"title"`
	Width      int              `yaml:"width"`
	Height     int              `yaml:"height"`
	TPS        int              `yaml:"tps"`
	Background component.Color  `yaml:"background"`
	Font       FontSettings     `yaml:"font"`
	Headless   HeadlessSettings `yaml:"headless"`
	// Scene is an optional path to a scene file; empty uses the built-in scene.
	Scene string `yaml:"scene"`
}

type FontSettings struct {
	// Path to a TTF/OTF file. Empty selects the embedded Go Regular face.
	Path string  `yaml:"path"`
	Size float64 `yaml:"size"`
}

type HeadlessSettings struct {
	// Ticks stops the run with success after N ticks; 0 runs until interrupted.
	Ticks    uint64 `yaml:"ticks"`
	Snapshot string `yaml:"snapshot"`
}

func Default() Settings {
	return Settings{
		Backend:    BackendWindow,
		Title:      WindowTitle,
		Width:      ScreenWidth,
		Height:     ScreenHeight,
		TPS:        TPS,
		Background: BackgroundColor,
		Font:       FontSettings{Size: FontSize},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return s, s.Validate()
}

var ErrInvalidSettings = errors.New("invalid settings")

func (s Settings) Validate() error {
	var errs []error
	switch s.Backend {
	case BackendWindow, BackendTerminal, BackendHeadless:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q", s.Backend))
	}
	if s.Width <= 0 || s.Height <= 0 {
		errs = append(errs, fmt.Errorf("size must be positive, got %dx%d", s.Width, s.Height))
	}
	if s.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", s.TPS))
	}
	if s.Font.Size <= 0 {
		errs = append(errs, fmt.Errorf("font size must be positive, got %v", s.Font.Size))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, errors.Join(errs...))
	}
	return nil
}
