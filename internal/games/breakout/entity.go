package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Entity is a colored rectangle with a velocity in pixels per second.
// Paddle, ball and bricks share this shape; bricks never move.
type Entity struct {
	core.Rect
	VX, VY float64
	Color  core.RGB
}

// Move integrates velocity over dt seconds.
func (e *Entity) Move(dt float64) {
	e.X += e.VX * dt
	e.Y += e.VY * dt
}

// BounceX reverses horizontal velocity.
func (e *Entity) BounceX() {
	e.VX = -e.VX
}

// BounceY reverses vertical velocity.
func (e *Entity) BounceY() {
	e.VY = -e.VY
}

// clampPaddle keeps the paddle inside [0, screenW-W] and stops it at a wall.
func clampPaddle(p *Entity, screenW float64) {
	if p.X < 0 {
		p.X = 0
		p.VX = 0
	}
	if p.Right() > screenW {
		p.X = screenW - p.W
		p.VX = 0
	}
}

// bounceWalls reflects the ball off the left, top and right walls.
// Each wall is checked on its own so a corner flips both axes.
func bounceWalls(b *Entity, screenW float64) {
	if b.X < 0 {
		b.BounceX()
	}
	if b.Y < 0 {
		b.BounceY()
	}
	if b.Right() > screenW {
		b.BounceX()
	}
}

// bounceOffPaddle sets the ball's velocity after a paddle hit.
// Horizontal speed scales with the distance of the ball center from the
// paddle center, normalized to the paddle half-width. The result is not
// clamped, so a ball hitting beyond the paddle edge leaves faster than
// bounceSpeed.
func bounceOffPaddle(b *Entity, p Entity, bounceSpeed, speedIncrement float64) {
	hit := b.CenterX() - p.CenterX()
	normalized := hit / (p.W / 2)
	b.VX = normalized * bounceSpeed
	b.VY *= -speedIncrement
}
