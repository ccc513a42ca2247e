// Package config provides YAML-based configuration loading for the breakout
// simulation and its frame drivers.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config contains all configuration for the game.
type Config struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Ball    BallConfig    `yaml:"ball"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Bricks  BricksConfig  `yaml:"bricks"`
	Physics PhysicsConfig `yaml:"physics"`
	Input   InputConfig   `yaml:"input"`
}

// ScreenConfig defines the playfield and frame pacing.
type ScreenConfig struct {
	Width      int `yaml:"width"`        // Playfield width in pixels
	Height     int `yaml:"height"`       // Playfield height in pixels
	MaxFPS     int `yaml:"max_fps"`      // Frame cap
	MaxDeltaMS int `yaml:"max_delta_ms"` // Upper bound for a single frame's dT
}

// BallConfig defines the ball's size, start state and bounce speed.
type BallConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	VelocityX   float64 `yaml:"velocity_x"`
	VelocityY   float64 `yaml:"velocity_y"`
	BounceSpeed float64 `yaml:"bounce_speed"` // Horizontal speed at a paddle-edge hit
	Color       Color   `yaml:"color"`
}

// PaddleConfig defines the paddle.
type PaddleConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	X                float64 `yaml:"x"`
	Y                float64 `yaml:"y"`
	Speed            float64 `yaml:"speed"`
	Color            Color   `yaml:"color"`
	ClampAfterMotion bool    `yaml:"clamp_after_motion"` // Also clamp after integrating motion
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Gap        float64 `yaml:"gap"`
	Columns    int     `yaml:"columns"`
	Rows       int     `yaml:"rows"`
	StartColor Color   `yaml:"start_color"`
	EndColor   Color   `yaml:"end_color"`
}

// PhysicsConfig defines global physics parameters.
type PhysicsConfig struct {
	SpeedIncrement float64 `yaml:"speed_increment"` // Vertical speed factor per paddle bounce
}

// InputConfig defines input emulation for drivers without key-release events.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // How long a key press counts as held
}

// MaxDelta returns the frame delta clamp as a duration.
func (s ScreenConfig) MaxDelta() time.Duration {
	return time.Duration(s.MaxDeltaMS) * time.Millisecond
}

// Hold returns the key hold window as a duration.
func (i InputConfig) Hold() time.Duration {
	return time.Duration(i.HoldMS) * time.Millisecond
}

// BrickCount returns the number of bricks in the grid.
func (b BricksConfig) BrickCount() int {
	return b.Columns * b.Rows
}

// Validate checks the configuration for values the simulation cannot use.
func (c Config) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.Screen.Width > 0 && c.Screen.Height > 0, "screen size must be positive"},
		{c.Screen.MaxFPS > 0, "screen.max_fps must be positive"},
		{c.Screen.MaxDeltaMS > 0, "screen.max_delta_ms must be positive"},
		{c.Ball.Width > 0 && c.Ball.Height > 0, "ball size must be positive"},
		{c.Ball.BounceSpeed > 0, "ball.bounce_speed must be positive"},
		{c.Paddle.Width > 0 && c.Paddle.Height > 0, "paddle size must be positive"},
		{c.Paddle.Width <= float64(c.Screen.Width), "paddle wider than screen"},
		{c.Paddle.Speed > 0, "paddle.speed must be positive"},
		{c.Bricks.Width > 0 && c.Bricks.Height > 0, "brick size must be positive"},
		{c.Bricks.Gap >= 0, "bricks.gap must not be negative"},
		{c.Bricks.Columns > 0 && c.Bricks.Rows > 0, "brick grid must have at least one brick"},
		{c.Physics.SpeedIncrement >= 1, "physics.speed_increment must be at least 1"},
		{c.Input.HoldMS >= 0, "input.hold_ms must not be negative"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, chk.what)
		}
	}

	gridW := float64(c.Bricks.Columns)*(c.Bricks.Width+c.Bricks.Gap) - c.Bricks.Gap
	gridH := float64(c.Bricks.Rows)*(c.Bricks.Height+c.Bricks.Gap) - c.Bricks.Gap
	if gridW > float64(c.Screen.Width) || gridH > float64(c.Screen.Height) {
		return fmt.Errorf("%w: brick grid %.0fx%.0f does not fit screen %dx%d",
			ErrInvalid, gridW, gridH, c.Screen.Width, c.Screen.Height)
	}

	return nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}

// Color is a core.RGB that reads and writes "#RRGGBB" in YAML.
type Color struct {
	core.RGB
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("config: line %d: color must be a string: %w", value.Line, err)
	}
	rgb, err := core.ParseHexColor(s)
	if err != nil {
		return fmt.Errorf("config: line %d: %w", value.Line, err)
	}
	c.RGB = rgb
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}
