// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/study-breakout/internal/core"
)

// Game is what the terminal host drives: one instance per player, stepped
// once per animation frame. Implementations hold no terminal state.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "breakout").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Breakout").
	Title() string

	// Reset starts a fresh session sized to the screen in cfg.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances the simulation one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State returns the HUD-level state: score, level, lives, flags.
	State() core.GameState
}

// Reporter is implemented by games that deliver their final score to a
// completion collaborator instead of leaving it to the platform.
type Reporter interface {
	SetReporter(r core.CompletionReporter)
}

// Closer is implemented by games that must be told when the player leaves.
type Closer interface {
	Close()
}

// Resizer is implemented by games that can adapt to a new screen size
// without restarting.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	title string
	make  Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game factory under id. It is meant to be called from the
// game package's init and panics on a duplicate id.
func Register(id string, f Factory) {
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: title, make: f}
}

// List returns the registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	games := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		games = append(games, GameInfo{ID: id, Title: e.title})
	}
	mu.RUnlock()

	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games
}

// Create returns a fresh instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.make(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
