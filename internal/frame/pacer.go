package frame

import (
	"math"
	"time"
)

// Pacer turns clock readings into per-frame deltas in seconds.
type Pacer struct {
	clock   Clock
	max     time.Duration
	last    time.Time
	started bool
}

// NewPacer creates a pacer that clamps deltas to max.
func NewPacer(clock Clock, max time.Duration) *Pacer {
	return &Pacer{clock: clock, max: max}
}

// Delta returns the seconds elapsed since the previous call.
// The first call only records the start time and reports false, as does any
// call where the clock did not move forward. A caller must skip the
// simulation step whenever ok is false.
func (p *Pacer) Delta() (seconds float64, ok bool) {
	now := p.clock.Now()
	if !p.started {
		p.started = true
		p.last = now
		return 0, false
	}

	d := now.Sub(p.last)
	p.last = now
	return Guard(d.Seconds(), p.max.Seconds())
}

// Reset forgets the previous reading, so the next Delta is a first frame.
func (p *Pacer) Reset() {
	p.started = false
}

// Guard filters a delta in seconds: non-finite and non-positive values are
// rejected, values above max are clamped to max.
func Guard(dt, max float64) (float64, bool) {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
		return 0, false
	}
	if max > 0 && dt > max {
		return max, true
	}
	return dt, true
}
