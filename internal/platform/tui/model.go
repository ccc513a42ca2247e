package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/frame"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Model is the Bubble Tea model running one breakout game.
type Model struct {
	game   *breakout.State
	opts   registry.Options
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	held   HeldKeys

	clock frame.Clock
	pacer *frame.Pacer
	fps   *frame.FPSCounter

	outcome  breakout.Outcome
	frames   int
	quitting bool
}

// NewModel creates a model for game, sized to a width x height terminal.
// The last terminal row holds the help line.
func NewModel(game *breakout.State, opts registry.Options, clock frame.Clock, width, height int) Model {
	cfg := opts.Config
	return Model{
		game:   game,
		opts:   opts,
		screen: core.NewScreen(width, max(height-1, 0)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		held:   NewHeldKeys(cfg.Input.Hold()),
		clock:  clock,
		pacer:  frame.NewPacer(clock, cfg.Screen.MaxDelta()),
		fps:    frame.NewFPSCounter(clock, cfg.Screen.MaxFPS),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(fpsTitle(m.fps.FPS())),
		tickCmd(m.opts.Config.Screen.MaxFPS),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	dir, quit := m.keys.Map(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	m.held.Press(dir, m.clock.Now())
	return m, nil
}

// handleTick runs one frame: input, dt, step and FPS.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.opts.MaxFrames > 0 && m.frames >= m.opts.MaxFrames {
		return m, tea.Quit
	}

	in := m.held.Intent(m.clock.Now())
	if m.opts.Autopilot {
		in = breakout.Autopilot(m.game)
	}

	// The first frame and clock hiccups only start the timer.
	if dt, ok := m.pacer.Delta(); ok {
		m.frames++
		if out := m.game.Step(dt, in); out.Done() {
			m.outcome = out
			return m, tea.Quit
		}
	}

	cmds := []tea.Cmd{tickCmd(m.opts.Config.Screen.MaxFPS)}
	if fps, updated := m.fps.Frame(); updated {
		cmds = append(cmds, tea.SetWindowTitle(fpsTitle(fps)))
	}
	return m, tea.Batch(cmds...)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.outcome.Done() {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Result reports how the run ended.
func (m Model) Result() registry.Result {
	return registry.Result{
		Outcome: m.outcome,
		Frames:  m.frames,
		Quit:    m.quitting,
	}
}

func fpsTitle(fps int) string {
	return fmt.Sprintf("FPS: %d", fps)
}
