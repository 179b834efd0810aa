// Package blocks implements the blockfall play session: it composes the
// engine board, the lock controller and a deadline queue into a game the
// platform can step, render and restart.
package blocks

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockfall/internal/clock"
	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Game implements registry.Game for one play mode.
type Game struct {
	mode       registry.Mode
	cfg        config.BlocksConfig
	logger     *log.Logger
	clock      clock.Clock
	queue      *clock.Queue
	difficulty *config.DifficultyManager
	seed       int64

	board *engine.Board
	ctrl  *engine.Controller

	sessionID string
	frame     uint64
	lines     int
	pieces    int
	lastClear int
	tick      time.Duration
	tickTimer clock.Timer

	// Play time excluding pauses
	elapsed      time.Duration
	resumedAt    time.Time
	frameLocks   int
	frameLines   int
	screenW      int
	screenH      int
	gameOver     bool
	paused       bool
	tooSmall     bool
	pausedBySize bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for lock, clear and game-over events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithClock sets the time source the game's timers run on.
func WithClock(c clock.Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// WithSeed fixes the piece sequence seed, overriding RuntimeConfig.Seed.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// New creates a game for mode. The mode is applied on top of cfg and the
// result is validated.
func New(cfg config.BlocksConfig, mode registry.Mode, opts ...Option) (*Game, error) {
	mode.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("blocks: mode %q: %w", mode.ID, err)
	}

	g := &Game{
		mode:       mode,
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.clock == nil {
		g.clock = clock.Real{}
	}
	g.queue = clock.NewQueue(g.clock)
	g.logger = g.logger.With("mode", mode.ID)
	return g, nil
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.mode.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.mode.Title
}

// Config returns the effective configuration, mode applied.
func (g *Game) Config() config.BlocksConfig {
	return g.cfg
}

// Reset starts a new game: fresh board, fresh piece sequence, gravity
// scheduled from now.
func (g *Game) Reset(rc core.RuntimeConfig) {
	seed := rc.Seed
	if g.seed != 0 {
		seed = g.seed
	}

	g.queue.Clear()
	g.tickTimer = nil

	gen := engine.NewRandomGenerator(rand.New(rand.NewSource(seed)))
	board, err := engine.NewBoard(g.cfg.EngineBoard(), gen)
	if err != nil {
		// Unreachable: the configuration was validated in New.
		g.logger.Error("cannot create board", "error", err)
		g.gameOver = true
		return
	}
	g.board = board
	g.ctrl = engine.NewController(board, g.queue, g.cfg.EngineLock(), engine.WithLockListener(g.onLock))

	g.sessionID = uuid.NewString()
	g.frame = 0
	g.lines = 0
	g.pieces = 0
	g.lastClear = 0
	g.elapsed = 0
	g.resumedAt = g.clock.Now()
	g.paused = false
	g.pausedBySize = false
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.checkScreenSize()

	g.gameOver = g.ctrl.NewGame()
	g.logger.Debug("game started", "session", g.sessionID, "seed", seed)
	if g.gameOver {
		g.finish()
		return
	}
	if g.tooSmall {
		g.setPaused(true)
		g.pausedBySize = true
		return
	}
	g.scheduleTick()
}

// Resize informs the game of a new screen size. A screen too small for the
// well pauses the game until it grows again.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()

	if g.ctrl == nil || g.gameOver {
		return
	}
	switch {
	case g.tooSmall && !g.paused:
		g.setPaused(true)
		g.pausedBySize = true
	case !g.tooSmall && g.pausedBySize:
		g.pausedBySize = false
		g.setPaused(false)
	}
}

// Step applies the frame's actions in order, then runs every due timer.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++
	g.frameLocks = 0
	g.frameLines = 0

	if g.ctrl == nil {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions() {
		g.Handle(a)
	}
	g.queue.RunDue()

	return core.StepResult{
		State: g.State(),
		Locks: g.frameLocks,
		Lines: g.frameLines,
	}
}

// Handle applies one player action. It reports whether the action changed
// the game.
func (g *Game) Handle(a core.Action) bool {
	if g.ctrl == nil {
		return false
	}
	if a == core.ActionPause {
		return g.TogglePause()
	}
	if g.paused || g.gameOver {
		return false
	}

	var ev engine.EventType
	switch a {
	case core.ActionLeft:
		ev = engine.EventMoveLeft
	case core.ActionRight:
		ev = engine.EventMoveRight
	case core.ActionRotate:
		ev = engine.EventRotate
	case core.ActionSoftDrop:
		ev = engine.EventMoveDown
	case core.ActionHardDrop:
		ev = engine.EventFastDrop
	default:
		return false
	}

	out := g.ctrl.Handle(engine.UserEvent(ev))
	return out.Moved || out.Locked
}

// TogglePause pauses or resumes gravity and the lock delay. It has no
// effect once the game is over or while the screen is too small.
func (g *Game) TogglePause() bool {
	if g.gameOver || g.tooSmall {
		return false
	}
	g.setPaused(!g.paused)
	return true
}

func (g *Game) setPaused(paused bool) {
	if paused == g.paused {
		return
	}
	g.paused = paused
	now := g.clock.Now()

	if paused {
		g.elapsed += now.Sub(g.resumedAt)
		g.stopTick()
		g.ctrl.Suspend()
		g.logger.Debug("paused")
		return
	}

	g.resumedAt = now
	g.ctrl.Resume()
	g.scheduleTick()
	g.logger.Debug("resumed")
}

// scheduleTick arms the gravity timer using the current difficulty.
func (g *Game) scheduleTick() {
	g.stopTick()
	g.tick = g.difficulty.TickInterval(g.cfg.Tick(), g.cfg.MinTick(), g.board.Score(), g.lines)
	g.tickTimer = g.queue.AfterFunc(g.tick, g.onTick)
}

func (g *Game) stopTick() {
	if g.tickTimer != nil {
		g.tickTimer.Stop()
		g.tickTimer = nil
	}
}

// onTick is the gravity step.
func (g *Game) onTick() {
	g.tickTimer = nil
	if g.paused || g.gameOver {
		return
	}
	g.ctrl.Handle(engine.TimerEvent(engine.EventMoveDown))
	if !g.gameOver {
		g.scheduleTick()
	}
}

// onLock receives every lock, whether caused by input or by a timer.
func (g *Game) onLock(ev engine.LockEvent) {
	g.pieces++
	g.frameLocks++

	if n := ev.Clear.LinesRemoved; n > 0 {
		g.lines += n
		g.frameLines += n
		g.lastClear = n
		g.logger.Info("lines cleared",
			"lines", n,
			"bonus", ev.Clear.ScoreBonus,
			"total", g.lines,
			"score", g.board.Score(),
		)
	}
	g.logger.Debug("piece locked", "pieces", g.pieces, "hard", ev.HardDrop, "forced", ev.Forced)

	if ev.GameOver {
		g.finish()
	}
}

// finish moves the game into its terminal state.
func (g *Game) finish() {
	if !g.paused {
		g.elapsed += g.clock.Now().Sub(g.resumedAt)
	}
	g.gameOver = true
	g.stopTick()
	g.logger.Info("game over",
		"session", g.sessionID,
		"score", g.board.Score(),
		"lines", g.lines,
		"pieces", g.pieces,
		"duration", g.elapsed.Round(time.Millisecond),
	)
}

// checkScreenSize checks if the screen is large enough for the layout.
func (g *Game) checkScreenSize() {
	minW, minH := g.layoutSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.board != nil {
		score = g.board.Score()
	}
	return core.GameState{
		Score:    score,
		Lines:    g.lines,
		Pieces:   g.pieces,
		Level:    g.difficulty.DisplayLevel(score, g.lines),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// SessionID identifies the current game; a new one is issued on Reset.
func (g *Game) SessionID() string {
	return g.sessionID
}

// Elapsed returns the time played in the current game, pauses excluded.
func (g *Game) Elapsed() time.Duration {
	if g.paused || g.gameOver {
		return g.elapsed
	}
	return g.elapsed + g.clock.Now().Sub(g.resumedAt)
}

// TickInterval returns the gravity interval currently in effect.
func (g *Game) TickInterval() time.Duration {
	return g.tick
}

// NextDeadline returns when the earliest pending timer fires.
func (g *Game) NextDeadline() (time.Time, bool) {
	return g.queue.Next()
}
