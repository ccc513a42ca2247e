package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// autopilotDeadzone is how far, in pixels, the paddle may sit from its
// target before the autopilot moves it.
const autopilotDeadzone = 4

// Autopilot returns the input a simple CPU player would give this frame.
//
// While the ball rises the paddle follows it. While it falls the paddle
// offsets itself so the ball lands on the half that sends it toward the
// first live brick.
func Autopilot(s *State) core.Intent {
	ballX := s.Ball.CenterX()
	target := ballX

	if s.Ball.VY > 0 {
		if aim, ok := s.firstBrickX(); ok {
			// Hitting right of center sends the ball right.
			offset := s.Paddle.W / 4
			if aim < ballX {
				offset = -offset
			}
			target = ballX - offset
		}
	}

	diff := target - s.Paddle.CenterX()
	if math.Abs(diff) <= autopilotDeadzone {
		return core.NoIntent
	}
	if diff < 0 {
		return core.Intent{Left: true}
	}
	return core.Intent{Right: true}
}

// firstBrickX returns the center x of the first live brick.
func (s *State) firstBrickX() (float64, bool) {
	for _, b := range s.Bricks.All() {
		return b.CenterX(), true
	}
	return 0, false
}
