package frame

import "time"

// FPSCounter measures rendered frames per second over windows of at least
// one second of wall clock.
type FPSCounter struct {
	clock  Clock
	start  time.Time
	frames int
	fps    int
}

// NewFPSCounter creates a counter that reports initial until the first
// window completes.
func NewFPSCounter(clock Clock, initial int) *FPSCounter {
	return &FPSCounter{
		clock: clock,
		start: clock.Now(),
		fps:   initial,
	}
}

// Frame counts one rendered frame. When more than a second has passed since
// the window started, the rate is recomputed, a new window begins and
// updated is true.
func (c *FPSCounter) Frame() (fps int, updated bool) {
	c.frames++
	now := c.clock.Now()
	elapsed := now.Sub(c.start)
	if elapsed <= time.Second {
		return c.fps, false
	}

	c.fps = int(float64(c.frames) / elapsed.Seconds())
	c.frames = 0
	c.start = now
	return c.fps, true
}

// FPS returns the last computed rate.
func (c *FPSCounter) FPS() int {
	return c.fps
}
