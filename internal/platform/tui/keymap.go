package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultKeyMap returns the default bindings: A/D or the arrow keys to move.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// Direction is a paddle direction key.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// Map translates a key message to a direction and whether it asks to quit.
func (k KeyMap) Map(msg tea.KeyMsg) (dir Direction, quit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return DirNone, true
	case key.Matches(msg, k.Left):
		return DirLeft, false
	case key.Matches(msg, k.Right):
		return DirRight, false
	}
	return DirNone, false
}

// HeldKeys emulates held direction keys on terminals, which report key
// presses but never releases. A direction counts as held for a fixed window
// after its last press; key autorepeat keeps refreshing it. Pressing one
// direction releases the other.
type HeldKeys struct {
	hold  time.Duration
	left  time.Time
	right time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(hold time.Duration) HeldKeys {
	return HeldKeys{hold: hold}
}

// Press records a key press at now.
func (h *HeldKeys) Press(dir Direction, now time.Time) {
	switch dir {
	case DirLeft:
		h.left = now
		h.right = time.Time{}
	case DirRight:
		h.right = now
		h.left = time.Time{}
	}
}

// Intent returns the directions held at now.
func (h *HeldKeys) Intent(now time.Time) core.Intent {
	return core.Intent{
		Left:  h.held(h.left, now),
		Right: h.held(h.right, now),
	}
}

func (h *HeldKeys) held(pressed, now time.Time) bool {
	return !pressed.IsZero() && now.Sub(pressed) < h.hold
}
