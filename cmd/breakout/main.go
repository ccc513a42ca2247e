// breakout is a brick breaker: a paddle, a ball and a wall of 54 bricks.
//
// Usage:
//
//	breakout play            - Play in the terminal
//	breakout play --driver window
//	breakout drivers         - List available frame drivers
//	breakout config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--fps <rate>        - Frame cap (default: from config, 60)
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"

	// Import drivers to register them
	_ "github.com/vovakirdan/tui-breakout/internal/platform/headless"
	_ "github.com/vovakirdan/tui-breakout/internal/platform/tui"
	_ "github.com/vovakirdan/tui-breakout/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break every brick before the ball gets past you",
	Long: `Breakout is a brick breaker for the terminal and the desktop.

Available commands:
  play     - Play a game
  drivers  - Show all available frame drivers
  config   - Print the effective configuration

Examples:
  breakout play
  breakout play --driver window
  breakout play --driver headless --autopilot
  breakout config > configs/breakout.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame cap (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(driversCmd)
	rootCmd.AddCommand(configCmd)
}

func setupLogger(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)
	return nil
}

// loadConfig loads the configuration and applies the global flag overrides.
func loadConfig() (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}

	if flagFPS != 0 {
		cfg.Screen.MaxFPS = flagFPS
		if err := cfg.Validate(); err != nil {
			return config.Config{}, "", fmt.Errorf("--fps: %w", err)
		}
	}

	logger.Debug("config loaded", "source", source)
	return cfg, source, nil
}
