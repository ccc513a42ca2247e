// Package tui provides the Bubble Tea frame driver: it runs the breakout
// simulation in the terminal, rasterized into colored character cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/frame"
)

// TickMsg is sent to trigger a simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one frame
// interval at the given cap.
func tickCmd(fps int) tea.Cmd {
	return tea.Tick(frame.Interval(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
