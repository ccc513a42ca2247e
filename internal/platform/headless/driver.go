// Package headless provides a frame driver without any I/O. Time comes from
// a manual clock advanced by one frame interval per frame, which makes runs
// reproducible. Used for soak runs and tests.
package headless

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/frame"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Driver runs the game as fast as possible on simulated time.
type Driver struct{}

// Name returns the registry name.
func (Driver) Name() string { return "headless" }

// Description returns a one-line summary.
func (Driver) Description() string { return "No display, simulated clock (autopilot or idle paddle)" }

// Run steps the game until it ends, MaxFrames is reached or ctx is done.
func (Driver) Run(ctx context.Context, game *breakout.State, opts registry.Options) (registry.Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := opts.Config.Screen
	clock := frame.NewManualClock(time.Unix(0, 0))
	pacer := frame.NewPacer(clock, cfg.MaxDelta())
	fps := frame.NewFPSCounter(clock, cfg.MaxFPS)
	interval := frame.Interval(cfg.MaxFPS)

	var res registry.Result
	pacer.Delta() // start the timer

	for {
		if err := ctx.Err(); err != nil {
			res.Quit = true
			logger.Debug("cancelled", "frames", res.Frames, "err", err)
			return res, nil
		}
		if opts.MaxFrames > 0 && res.Frames >= opts.MaxFrames {
			logger.Debug("frame limit reached", "frames", res.Frames, "bricks", game.Bricks.Count())
			return res, nil
		}

		clock.Advance(interval)
		dt, ok := pacer.Delta()
		if !ok {
			continue
		}

		in := core.NoIntent
		if opts.Autopilot {
			in = breakout.Autopilot(game)
		}

		res.Frames++
		if out := game.Step(dt, in); out.Done() {
			res.Outcome = out
			logger.Debug("game ended", "outcome", out, "frames", res.Frames, "bricks", game.Bricks.Count())
			return res, nil
		}

		if rate, updated := fps.Frame(); updated {
			logger.Debug("progress", "fps", rate, "frames", res.Frames, "bricks", game.Bricks.Count())
		}
	}
}

func init() {
	registry.Register("headless", func() registry.Driver {
		return Driver{}
	})
}
