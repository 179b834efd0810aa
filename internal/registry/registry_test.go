package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

func TestDefaults(t *testing.T) {
	r := Defaults()
	modes := r.List()

	want := []struct {
		id     string
		spawnY int
		tickMs int
	}{
		{"normal", 2, 400},
		{"hard", 5, 275},
		{"blitz", 10, 125},
	}

	if len(modes) != len(want) {
		t.Fatalf("List() returned %d modes, expected %d", len(modes), len(want))
	}
	for i, w := range want {
		m := modes[i]
		if m.ID != w.id || m.SpawnY != w.spawnY || m.TickMs != w.tickMs {
			t.Errorf("List()[%d] = %+v, expected %s spawn %d tick %d", i, m, w.id, w.spawnY, w.tickMs)
		}
	}
}

func TestRegister(t *testing.T) {
	r := New()
	if err := r.Register(Mode{ID: "zen", TickMs: 1000, Order: 5}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Register(Mode{ID: "zen", TickMs: 1000}); err == nil {
		t.Error("Register() with duplicate ID should fail")
	}
	if err := r.Register(Mode{TickMs: 1000}); err == nil {
		t.Error("Register() without ID should fail")
	}
	if err := r.Register(Mode{ID: "stuck"}); err == nil {
		t.Error("Register() without tick should fail")
	}
	if !r.Exists("zen") {
		t.Error("Exists(zen) = false, expected true")
	}
}

func TestGetUnknown(t *testing.T) {
	r := Defaults()
	_, err := r.Get("marathon")
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Get() error = %v, expected ErrUnknownMode", err)
	}
}

func TestModeApply(t *testing.T) {
	r := Defaults()
	blitz, err := r.Get("blitz")
	if err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultBlocksConfig()
	blitz.Apply(&cfg)

	if cfg.Board.SpawnY != 10 {
		t.Errorf("SpawnY = %d, expected 10", cfg.Board.SpawnY)
	}
	if cfg.Timing.TickMs != 125 {
		t.Errorf("TickMs = %d, expected 125", cfg.Timing.TickMs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() after Apply error = %v", err)
	}

	slow := Mode{ID: "slow", TickMs: 50}
	slow.Apply(&cfg)
	if cfg.Timing.MinTickMs != 50 {
		t.Errorf("MinTickMs = %d, expected clamp to 50", cfg.Timing.MinTickMs)
	}
}

type stubGame struct{ mode Mode }

func (g *stubGame) ID() string { return g.mode.ID }
func (g *stubGame) Title() string { return g.mode.Title }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Resize(int, int) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestCreate(t *testing.T) {
	r := Defaults()
	if _, err := r.Create("normal"); err == nil {
		t.Error("Create() without factory should fail")
	}

	r.SetFactory(func(m Mode) (Game, error) {
		return &stubGame{mode: m}, nil
	})

	g, err := r.Create("hard")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "hard" || g.Title() != "Hard" {
		t.Errorf("Create(hard) = %s/%s", g.ID(), g.Title())
	}

	if _, err := r.Create("missing"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Create(missing) error = %v, expected ErrUnknownMode", err)
	}
}
