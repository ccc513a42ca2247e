package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var (
	flagDriver    string
	flagAutopilot bool
	flagMaxFrames int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game with the selected frame driver.

Controls:
  A/Left     - Move paddle left
  D/Right    - Move paddle right
  Q/Esc      - Quit

The game ends when the ball falls past the paddle or the last brick breaks.

Examples:
  breakout play
  breakout play --driver window
  breakout play --driver headless --autopilot --max-frames 3600
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDriver, "driver", "tui", "Frame driver (see 'breakout drivers')")
	playCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the computer move the paddle")
	playCmd.Flags().IntVar(&flagMaxFrames, "max-frames", 0, "Stop after this many frames (0 = no limit)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !registry.Exists(flagDriver) {
		return fmt.Errorf("unknown driver %q, run 'breakout drivers' to see available drivers", flagDriver)
	}
	if flagMaxFrames < 0 {
		return fmt.Errorf("--max-frames must not be negative")
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	driver, err := registry.Create(flagDriver)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := breakout.New(cfg)
	logger.Debug("starting", "driver", driver.Name(), "bricks", game.Bricks.Count(), "fps", cfg.Screen.MaxFPS)

	res, err := driver.Run(ctx, game, registry.Options{
		Config:    cfg,
		Logger:    logger.WithPrefix("breakout/" + driver.Name()),
		MaxFrames: flagMaxFrames,
		Autopilot: flagAutopilot,
	})
	if err != nil {
		return err
	}

	switch {
	case res.Outcome == breakout.OutcomeLoss:
		logger.Info("Game Over", "frames", res.Frames, "bricks", game.Bricks.Count())
	case res.Outcome == breakout.OutcomeWin:
		logger.Info("You win", "frames", res.Frames)
	case res.Quit:
		logger.Info("Quit", "frames", res.Frames, "bricks", game.Bricks.Count())
	default:
		logger.Info("Frame limit reached", "frames", res.Frames, "bricks", game.Bricks.Count())
	}
	return nil
}
