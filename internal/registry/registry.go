// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/slingshot/internal/core"
)

// Game is the interface the platform drives. Games contain pure logic with no
// Bubble Tea dependency; the platform handles input mapping, timing and
// drawing the screen buffer.
type Game interface {
	// ID returns a unique identifier used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset restarts the current round for the given screen and tick rate.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick with this tick's actions.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, result, pause, level).
	State() core.GameState
}

// LevelSelector is implemented by games that can jump to a level by ID.
type LevelSelector interface {
	SelectLevel(id string) error
}

// Factory creates a new instance of a game.
type Factory func() (Game, error)

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry. The factory is not called
// until Create.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	g, err := f()
	if err != nil {
		return nil, fmt.Errorf("registry: cannot create game %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
