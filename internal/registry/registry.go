// Package registry provides a global registry of quiz variants.
// Variants register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flag-quiz/internal/catalog"
	"github.com/vovakirdan/flag-quiz/internal/core"
	"github.com/vovakirdan/flag-quiz/internal/quiz"
)

// Game is the interface every quiz variant implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the variant identifier (e.g., "flags").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, quit).
	State() core.GameState
}

// Deps carries everything a variant needs that lives outside the engine.
// It replaces process-wide lookup tables: the catalog and rules are handed
// to each factory explicitly.
type Deps struct {
	Items  []catalog.Item
	Rules  quiz.Rules
	Logger *log.Logger
}

// WithDefaults fills unset fields.
func (d Deps) WithDefaults() Deps {
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	if d.Rules == (quiz.Rules{}) {
		d.Rules = quiz.DefaultRules()
	}
	return d
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new instance of a variant.
type Factory func(deps Deps) Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Typically called from init(). Panics if the ID is already registered.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}

	factories[info.ID] = f
	infos[info.ID] = info
}

// List returns information about all registered variants, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a variant by its ID.
// Returns an error if the ID is not registered.
func Create(id string, deps Deps) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(deps.WithDefaults()), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
