// Package registry keeps the playable Duck Dash variants. Each variant
// registers a factory from init(), and the hosts (local TUI, SSH server,
// CLI) create fresh instances by id.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/duckdash/internal/core"
)

// Game is a fixed-tick simulation driven by a host.
// Implementations never import Bubble Tea; the host maps keys to actions,
// owns the clock and paints the screen buffer.
type Game interface {
	// ID is the stable identifier used by the CLI and the score store.
	ID() string

	Title() string

	// Reset starts a new run. It is called before the first Step and
	// again on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances one host tick with the actions pressed since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current run into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     []GameInfo // Registration order
)

// Register adds a variant. It panics on an empty or duplicate id.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: empty game id")
	}
	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = f().Title()
	}

	factories[info.ID] = f
	infos = append(infos, info)
}

// List returns the registered variants in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, len(infos))
	copy(out, infos)
	return out
}

// Info returns the metadata of a registered variant.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	for _, info := range infos {
		if info.ID == id {
			return info, true
		}
	}
	return GameInfo{}, false
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
