package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/frame"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Driver runs the game in the terminal on the alternate screen.
type Driver struct{}

// Name returns the registry name.
func (Driver) Name() string { return "tui" }

// Description returns a one-line summary.
func (Driver) Description() string { return "Terminal (Bubble Tea), colored cells" }

// Run starts the Bubble Tea program and blocks until the game ends.
func (Driver) Run(ctx context.Context, game *breakout.State, opts registry.Options) (registry.Result, error) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	model := NewModel(game, opts, frame.SystemClock{}, width, height)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return registry.Result{Quit: true}, nil
		}
		return registry.Result{}, fmt.Errorf("tui: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return registry.Result{}, fmt.Errorf("tui: unexpected final model %T", final)
	}
	return m.Result(), nil
}

func init() {
	registry.Register("tui", func() registry.Driver {
		return Driver{}
	})
}
