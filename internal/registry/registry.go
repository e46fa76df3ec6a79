// Package registry maps game IDs to factories. Variants register from
// init, so importing a game package is enough to make it playable.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("unknown game")

// Game is what the platform drives. Implementations hold no UI state:
// the platform maps keys to an InputFrame, calls Step at the tick rate
// and asks for a Render when it repaints.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig) // called before the first Step of a match
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Describer is an optional one-line blurb shown in menus and listings.
type Describer interface {
	Description() string
}

// GameInfo is the listing metadata of a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory returns a fresh, un-Reset game.
type Factory func() Game

type entry struct {
	info GameInfo
	make Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a factory under id. Metadata is read from one throwaway
// instance. Registering an id twice panics.
func Register(id string, f Factory) {
	probe := f()
	info := GameInfo{ID: id, Title: probe.Title()}
	if d, ok := probe.(Describer); ok {
		info.Description = d.Description()
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: info, make: f}
}

// Lookup returns the metadata for id.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := entries[id]
	return e.info, ok
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	mu.RUnlock()

	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create builds a new instance of id. The factory runs without the lock
// held.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	return e.make(), nil
}
