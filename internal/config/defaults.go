package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:      640,
			Height:     480,
			MaxFPS:     60,
			MaxDeltaMS: 250,
		},
		Ball: BallConfig{
			Width:       20,
			Height:      20,
			X:           640/2 - 20,
			Y:           640 / 2,
			VelocityX:   0,
			VelocityY:   100,
			BounceSpeed: 300,
			Color:       Color{core.ColorBlue},
		},
		Paddle: PaddleConfig{
			Width:  150,
			Height: 10,
			X:      640/2 - 150,
			Y:      480 - 30,
			Speed:  400,
			Color:  Color{core.ColorWhite},
		},
		Bricks: BricksConfig{
			Width:      62,
			Height:     20,
			Gap:        10,
			Columns:    9,
			Rows:       6,
			StartColor: Color{core.ColorRed},
			EndColor:   Color{core.ColorBlue},
		},
		Physics: PhysicsConfig{
			SpeedIncrement: 1.1,
		},
		Input: InputConfig{
			HoldMS: 200,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
