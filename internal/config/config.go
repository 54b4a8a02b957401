// internal/config/config.go
package config

import "go-vector-demo/internal/component"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WindowTitle  = "go-vector-demo"
	TPS          = 60

	FontSize = 40.0

	// Oscillation applied to moving shapes: OffsetY = sin((ms+phase)/WavePeriodMs)*WaveAmplitude + WaveLift.
	WavePeriodMs  = 500.0
	WaveAmplitude = 50.0
	WaveLift      = 60.0

	CircleRadius  = 50.0
	CircleSpacing = 110.0
	CirclePhaseMs = 200.0
)

const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
	BackendHeadless = "headless"
)

var (
	BackgroundColor component.Color = 0xFF000000
	CircleColors                    = []component.Color{
		0x78FF78FF,
		0xFF7878FF,
		0xFFFF7800,
		0x78FFFF00,
		0xFF78FF00,
	}
	GreetingText                  = "Hello world!"
	GreetingColor component.Color = 0xFFEEEE00
)
