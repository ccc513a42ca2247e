package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Outcome is the termination signal returned by Step.
type Outcome int

const (
	OutcomeNone Outcome = iota // Keep running
	OutcomeLoss                // Ball fell below the screen
	OutcomeWin                 // Every brick destroyed
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeLoss:
		return "game over"
	case OutcomeWin:
		return "you win"
	default:
		return "unknown"
	}
}

// Done reports whether the outcome ends the game.
func (o Outcome) Done() bool {
	return o != OutcomeNone
}

// State is the whole simulation: one paddle, one ball and the brick field.
// It is owned by a single frame driver and is not safe for concurrent use.
type State struct {
	Paddle Entity
	Ball   Entity
	Bricks *BrickField

	cfg   config.Config
	ticks uint64
}

// New creates a game in its start position.
// The configuration is expected to have passed Validate.
func New(cfg config.Config) *State {
	return &State{
		Paddle: Entity{
			Rect:  core.NewRect(cfg.Paddle.X, cfg.Paddle.Y, cfg.Paddle.Width, cfg.Paddle.Height),
			Color: cfg.Paddle.Color.RGB,
		},
		Ball: Entity{
			Rect:  core.NewRect(cfg.Ball.X, cfg.Ball.Y, cfg.Ball.Width, cfg.Ball.Height),
			VX:    cfg.Ball.VelocityX,
			VY:    cfg.Ball.VelocityY,
			Color: cfg.Ball.Color.RGB,
		},
		Bricks: NewBrickField(cfg.Bricks),
		cfg:    cfg,
	}
}

// Config returns the configuration the game was created with.
func (s *State) Config() config.Config {
	return s.cfg
}

// Ticks returns the number of steps taken so far.
func (s *State) Ticks() uint64 {
	return s.ticks
}

// screenSize returns the playfield size in pixels.
func (s *State) screenSize() (w, h float64) {
	return float64(s.cfg.Screen.Width), float64(s.cfg.Screen.Height)
}
