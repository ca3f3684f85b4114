// Package registry maps game identifiers to factories so front-ends can
// start a game without importing its package directly. Game packages
// register themselves from init().
package registry

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/vovakirdan/sinkhole/internal/core"
)

// Game is what every front-end drives. Implementations hold pure simulation
// state: the terminal, SSH and headless runners own timing and input.
type Game interface {
	// ID is the stable identifier used on the command line and in the
	// scores database.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new run sized for the given screen and seeded from
	// cfg.Seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick of cfg.FrameTime() seconds.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

type entry struct {
	title   string
	factory Factory
}

// Register adds a factory under id. It panics on duplicate ids.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: f().Title(), factory: f}
}

// List returns the registered games sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	ids := slices.Sorted(maps.Keys(entries))
	result := make([]GameInfo, 0, len(ids))
	for _, id := range ids {
		result = append(result, GameInfo{ID: id, Title: entries[id].title})
	}
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
