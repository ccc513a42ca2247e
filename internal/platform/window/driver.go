// Package window provides the graphical frame driver, drawing the playfield
// at its native pixel size with Ebitengine.
package window

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/frame"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Driver runs the game in a desktop window.
type Driver struct{}

// Name returns the registry name.
func (Driver) Name() string { return "window" }

// Description returns a one-line summary.
func (Driver) Description() string { return "Desktop window (Ebitengine), native pixels" }

// Run opens the window and blocks until the game ends or it is closed.
func (Driver) Run(ctx context.Context, game *breakout.State, opts registry.Options) (registry.Result, error) {
	cfg := opts.Config
	clock := frame.SystemClock{}
	g := &windowGame{
		ctx:   ctx,
		state: game,
		opts:  opts,
		pacer: frame.NewPacer(clock, cfg.Screen.MaxDelta()),
		fps:   frame.NewFPSCounter(clock, cfg.Screen.MaxFPS),
	}

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(fmt.Sprintf("FPS: %d", cfg.Screen.MaxFPS))
	ebiten.SetTPS(cfg.Screen.MaxFPS)

	if err := ebiten.RunGame(g); err != nil {
		return registry.Result{}, fmt.Errorf("window: %w", err)
	}
	if !g.outcome.Done() && !g.quit {
		// Closing the window ends RunGame without going through Update.
		g.quit = true
	}
	return registry.Result{Outcome: g.outcome, Frames: g.frames, Quit: g.quit}, nil
}

// windowGame implements ebiten.Game.
type windowGame struct {
	ctx   context.Context
	state *breakout.State
	opts  registry.Options
	pacer *frame.Pacer
	fps   *frame.FPSCounter

	outcome breakout.Outcome
	frames  int
	quit    bool
}

// Update runs one frame.
func (g *windowGame) Update() error {
	if g.ctx.Err() != nil || ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		g.quit = true
		return ebiten.Termination
	}
	if g.opts.MaxFrames > 0 && g.frames >= g.opts.MaxFrames {
		return ebiten.Termination
	}

	in := intentFromKeys(ebiten.IsKeyPressed)
	if g.opts.Autopilot {
		in = breakout.Autopilot(g.state)
	}

	if dt, ok := g.pacer.Delta(); ok {
		g.frames++
		if out := g.state.Step(dt, in); out.Done() {
			g.outcome = out
			return ebiten.Termination
		}
	}

	if fps, updated := g.fps.Frame(); updated {
		ebiten.SetWindowTitle(fmt.Sprintf("FPS: %d", fps))
	}
	return nil
}

// Draw fills the live bricks, the paddle and the ball over black.
func (g *windowGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	for _, brick := range g.state.Bricks.All() {
		fillRect(screen, brick)
	}
	fillRect(screen, g.state.Paddle)
	fillRect(screen, g.state.Ball)
}

// Layout keeps the logical screen at the configured playfield size.
func (g *windowGame) Layout(_, _ int) (int, int) {
	cfg := g.opts.Config.Screen
	return cfg.Width, cfg.Height
}

func fillRect(dst *ebiten.Image, e breakout.Entity) {
	vector.DrawFilledRect(dst,
		float32(e.X), float32(e.Y), float32(e.W), float32(e.H),
		toRGBA(e.Color), false)
}

func toRGBA(c core.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// intentFromKeys polls the movement keys. Right wins over left in the
// simulation, so both may be reported.
func intentFromKeys(pressed func(ebiten.Key) bool) core.Intent {
	return core.Intent{
		Left:  pressed(ebiten.KeyA) || pressed(ebiten.KeyArrowLeft),
		Right: pressed(ebiten.KeyD) || pressed(ebiten.KeyArrowRight),
	}
}

func init() {
	registry.Register("window", func() registry.Driver {
		return Driver{}
	})
}
