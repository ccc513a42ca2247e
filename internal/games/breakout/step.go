package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Step advances the game by dt seconds with the given input.
//
// The order of the phases matters and is part of the game's feel:
// input, paddle clamp, wall bounces, loss check, paddle bounce, brick hits,
// win check, then motion. The paddle clamp runs on the position from the
// previous frame, so the paddle can end a frame slightly past a wall unless
// paddle.clamp_after_motion is set.
//
// A loss returns before anything else changes. A win is reported after the
// frame's motion has been applied. dt must be finite and positive; drivers
// filter it through frame.Pacer.
func (s *State) Step(dt float64, in core.Intent) Outcome {
	s.ticks++
	screenW, screenH := s.screenSize()

	// Input. Right wins when both directions are held.
	s.Paddle.VX = 0
	if in.Left {
		s.Paddle.VX = -s.cfg.Paddle.Speed
	}
	if in.Right {
		s.Paddle.VX = s.cfg.Paddle.Speed
	}
	s.Paddle.VY = 0

	clampPaddle(&s.Paddle, screenW)

	bounceWalls(&s.Ball, screenW)

	if s.Ball.Bottom() > screenH {
		return OutcomeLoss
	}

	if core.Classify(s.Paddle.Rect, s.Ball.Rect) != core.CollisionNone {
		bounceOffPaddle(&s.Ball, s.Paddle, s.cfg.Ball.BounceSpeed, s.cfg.Physics.SpeedIncrement)
	}

	s.hitBricks()

	outcome := OutcomeNone
	if s.Bricks.Count() == 0 {
		outcome = OutcomeWin
	}

	s.Paddle.Move(dt)
	s.Ball.Move(dt)
	if s.cfg.Paddle.ClampAfterMotion {
		clampPaddle(&s.Paddle, screenW)
	}

	return outcome
}

// hitBricks tests the ball against every live brick in slot order.
// Each hit flips one velocity component and removes the brick, so two side
// hits in the same frame cancel out.
func (s *State) hitBricks() {
	for i, brick := range s.Bricks.All() {
		switch core.Classify(s.Ball.Rect, brick.Rect) {
		case core.CollisionHorizontal:
			s.Ball.BounceX()
			s.Bricks.Remove(i)
		case core.CollisionVertical:
			s.Ball.BounceY()
			s.Bricks.Remove(i)
		}
	}
}
