// Package registry holds the play modes blockfall offers and the contract
// between a playable game and the platform that drives it.
//
// Unlike a package-level registry, a Registry is an explicit value: the
// command layer builds one, wires a Factory and hands it to the menus.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// Game is the interface the platform drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, frame timing, and rendering.
type Game interface {
	// ID returns the mode identifier (e.g., "normal", "blitz").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Resize informs the game of a new screen size without resetting it.
	Resize(w, h int)

	// Step applies the frame's input and runs every timer that has come due.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Mode describes a play mode: where pieces appear and how fast they fall.
type Mode struct {
	ID          string
	Title       string
	Description string
	SpawnY      int // Spawn row of the piece's rotation grid
	TickMs      int // Base gravity interval
	Order       int // Menu position
}

// Apply overlays the mode onto a configuration.
func (m Mode) Apply(cfg *config.BlocksConfig) {
	cfg.Board.SpawnY = m.SpawnY
	cfg.Timing.TickMs = m.TickMs
	if cfg.Timing.MinTickMs > m.TickMs {
		cfg.Timing.MinTickMs = m.TickMs
	}
}

// Factory builds a game for a mode.
type Factory func(Mode) (Game, error)

// ErrUnknownMode is returned for a mode ID that was never registered.
var ErrUnknownMode = errors.New("unknown mode")

// Registry is a set of modes keyed by ID. It is safe for concurrent use,
// which the SSH server relies on.
type Registry struct {
	mu      sync.RWMutex
	modes   map[string]Mode
	factory Factory
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{modes: make(map[string]Mode)}
}

// Defaults returns a registry holding the built-in modes.
func Defaults() *Registry {
	r := New()
	for _, m := range builtinModes() {
		//nolint:errcheck // Built-in IDs are unique
		r.Register(m)
	}
	return r
}

func builtinModes() []Mode {
	return []Mode{
		{
			ID:          "normal",
			Title:       "Normal",
			Description: "Classic pace, pieces enter at the top",
			SpawnY:      2,
			TickMs:      400,
			Order:       0,
		},
		{
			ID:          "hard",
			Title:       "Hard",
			Description: "Faster gravity, pieces enter lower",
			SpawnY:      5,
			TickMs:      275,
			Order:       1,
		},
		{
			ID:          "blitz",
			Title:       "Blitz",
			Description: "Pieces start mid-board and drop fast",
			SpawnY:      10,
			TickMs:      125,
			Order:       2,
		},
	}
}

// Register adds a mode. Registering an empty or duplicate ID fails.
func (r *Registry) Register(m Mode) error {
	if m.ID == "" {
		return fmt.Errorf("registry: mode without ID")
	}
	if m.TickMs <= 0 {
		return fmt.Errorf("registry: mode %q: tick must be positive", m.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modes[m.ID]; exists {
		return fmt.Errorf("registry: mode %q already registered", m.ID)
	}
	r.modes[m.ID] = m
	return nil
}

// List returns all modes in menu order.
func (r *Registry) List() []Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Mode, 0, len(r.modes))
	for _, m := range r.modes {
		result = append(result, m)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the mode with the given ID.
func (r *Registry) Get(id string) (Mode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.modes[id]
	if !ok {
		return Mode{}, fmt.Errorf("registry: %q: %w", id, ErrUnknownMode)
	}
	return m, nil
}

// Exists checks if a mode with the given ID is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.modes[id]
	return ok
}

// SetFactory installs the function Create uses to build games.
func (r *Registry) SetFactory(f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factory = f
}

// Create instantiates a new game for the mode ID.
func (r *Registry) Create(id string) (Game, error) {
	m, err := r.Get(id)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	f := r.factory
	r.mu.RUnlock()

	if f == nil {
		return nil, fmt.Errorf("registry: no factory for mode %q", id)
	}
	return f(m)
}
