// Package registry maps game IDs to factories.
// Games register themselves in init() functions so the platform can
// instantiate them without importing their packages directly.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Game is the interface the platform drives.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier used by the CLI.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh game sized to the runtime config.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts to a new screen size without restarting.
	Resize(cfg core.RuntimeConfig)

	// Step advances the game by one platform frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// IDs returns every registered game ID, sorted.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(factories))
	for id := range factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Create instantiates a new game by its ID.
// Returns an error naming the registered games if the ID is unknown.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q (registered: %s)", id, strings.Join(IDs(), ", "))
	}
	return f(), nil
}
