// Package registry provides a global registry for frame drivers.
// Drivers register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Driver runs the frame loop around a breakout simulation.
// A driver owns input, timing and presentation; the simulation itself is
// advanced only through State.Step.
type Driver interface {
	// Name returns a unique identifier (e.g., "tui", "window").
	Name() string

	// Description returns a one-line summary for `breakout drivers`.
	Description() string

	// Run drives the game until it ends, the player quits, the frame limit
	// is reached or ctx is cancelled. Errors are setup or I/O failures;
	// losing is not an error.
	Run(ctx context.Context, game *breakout.State, opts Options) (Result, error)
}

// Options configure a single driver run.
type Options struct {
	Config    config.Config
	Logger    *log.Logger
	MaxFrames int  // Stop after this many steps; 0 means no limit
	Autopilot bool // Drive the paddle with breakout.Autopilot
}

// Result describes how a run ended.
type Result struct {
	Outcome breakout.Outcome
	Frames  int  // Simulation steps taken
	Quit    bool // Player quit or ctx was cancelled before an outcome
}

// DriverInfo contains metadata about a registered driver.
type DriverInfo struct {
	Name        string
	Description string
}

// Factory is a function that creates a new driver instance.
type Factory func() Driver

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a driver factory to the registry.
// Typically called from a driver's init() function.
// Panics if a driver with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: driver %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = f().Description()
}

// List returns information about all registered drivers, sorted by name.
func List() []DriverInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DriverInfo, 0, len(factories))
	for name := range factories {
		result = append(result, DriverInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a driver by name.
// Returns an error if the name is not registered.
func Create(name string) (Driver, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown driver %q", name)
	}

	return f(), nil
}

// Exists checks if a driver with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
