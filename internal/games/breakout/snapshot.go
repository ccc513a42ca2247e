package breakout

import "math"

// Snapshot is a copy of the simulation state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick uint64

	PaddleX, PaddleY float64
	PaddleVX         float64
	BallX, BallY     float64
	BallVX, BallVY   float64
	BricksRemaining  int
	BrickAlive       []bool // Indexed by slot
}

// Snapshot returns the current state as a Snapshot.
func (s *State) Snapshot() Snapshot {
	alive := make([]bool, s.Bricks.Len())
	for i := range alive {
		alive[i] = s.Bricks.Alive(i)
	}

	return Snapshot{
		Tick:            s.ticks,
		PaddleX:         s.Paddle.X,
		PaddleY:         s.Paddle.Y,
		PaddleVX:        s.Paddle.VX,
		BallX:           s.Ball.X,
		BallY:           s.Ball.Y,
		BallVX:          s.Ball.VX,
		BallVY:          s.Ball.VY,
		BricksRemaining: s.Bricks.Count(),
		BrickAlive:      alive,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats are hashed by their bit patterns, so equal hashes mean bit-identical
// runs.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, f := range []float64{
		snap.PaddleX, snap.PaddleY, snap.PaddleVX,
		snap.BallX, snap.BallY, snap.BallVX, snap.BallVY,
	} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation

	for _, alive := range snap.BrickAlive {
		var v uint64
		if alive {
			v = 1
		}
		h = h*31 + v
	}

	return h
}
