package engine

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/clock"
)

// LockState is the state of the lock-delay state machine.
type LockState int

const (
	StateFalling LockState = iota
	StatePendingLock
	StateGameOver
)

// String returns a human-readable name for the state.
func (s LockState) String() string {
	switch s {
	case StateFalling:
		return "Falling"
	case StatePendingLock:
		return "PendingLock"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// LockConfig holds the lock-delay parameters.
type LockConfig struct {
	Enabled       bool
	Delay         time.Duration
	MaxResets     int // Successful moves allowed while resting; <= 0 means no cap
	SoftDropBonus int // Points per successful player soft drop
}

// LockEvent describes one lock: the piece was merged, rows were cleared and
// a replacement was spawned (or could not be).
type LockEvent struct {
	Clear    ClearResult
	GameOver bool
	HardDrop bool
	Forced   bool // Locked because the reset budget ran out
}

// Outcome is the synchronous result of handling one event.
type Outcome struct {
	Moved    bool
	Locked   bool
	Lock     LockEvent // Valid when Locked
	GameOver bool
	State    LockState
	View     ViewSnapshot
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLockListener registers fn to be called after every lock, including
// locks triggered by the delay timer outside of Handle.
func WithLockListener(fn func(LockEvent)) ControllerOption {
	return func(c *Controller) {
		c.onLock = fn
	}
}

// Controller decides when a resting piece becomes permanent. It layers
// the Falling / PendingLock / GameOver machine over a Board and owns at most
// one outstanding lock-delay timer.
type Controller struct {
	board  *Board
	timers clock.Scheduler
	cfg    LockConfig
	onLock func(LockEvent)

	state     LockState
	resets    int
	timer     clock.Timer
	timerGen  uint64
	suspended bool
}

// NewController creates a controller over board. With a nil scheduler the
// lock delay is unavailable and every failed fall locks immediately.
func NewController(board *Board, timers clock.Scheduler, cfg LockConfig, opts ...ControllerOption) *Controller {
	c := &Controller{
		board:  board,
		timers: timers,
		cfg:    cfg,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current lock state.
func (c *Controller) State() LockState {
	return c.state
}

// ResetCount returns the number of lock resets spent on the resting piece.
func (c *Controller) ResetCount() int {
	return c.resets
}

// Board returns the controlled board.
func (c *Controller) Board() *Board {
	return c.board
}

// NewGame cancels any pending lock, resets the board and re-enters Falling.
// It returns true if even the first spawn collides.
func (c *Controller) NewGame() bool {
	c.cancelPending()
	c.suspended = false
	if c.board.ResetForNewGame() {
		c.state = StateGameOver
		return true
	}
	c.state = StateFalling
	return false
}

// Handle applies one input event. Blocked moves are reported through
// Outcome.Moved, never as errors. Once the game is over every event is
// ignored until NewGame.
func (c *Controller) Handle(ev MoveEvent) Outcome {
	var out Outcome

	if c.state != StateGameOver {
		switch ev.Type {
		case EventMoveDown:
			out = c.moveDown(ev.Source)
		case EventFastDrop:
			out = c.hardDrop()
		case EventMoveLeft:
			out = c.shift(c.board.MoveBy(-1, 0))
		case EventMoveRight:
			out = c.shift(c.board.MoveBy(1, 0))
		case EventRotate:
			out = c.shift(c.board.Rotate())
		}
	}

	out.State = c.state
	out.GameOver = c.state == StateGameOver
	out.View = c.board.View()
	return out
}

// Suspend stops the lock timer without leaving PendingLock. Used for pause.
func (c *Controller) Suspend() {
	c.suspended = true
	c.stopTimer()
}

// Resume restarts a suspended lock delay from zero.
func (c *Controller) Resume() {
	if !c.suspended {
		return
	}
	c.suspended = false
	if c.state == StatePendingLock {
		c.startTimer()
	}
}

func (c *Controller) delayEnabled() bool {
	return c.cfg.Enabled && c.timers != nil
}

func (c *Controller) moveDown(src EventSource) Outcome {
	if c.board.MoveBy(0, 1) {
		if c.state == StatePendingLock {
			c.cancelPending()
		}
		if src == SourceUser {
			c.board.AddScore(c.cfg.SoftDropBonus)
		}
		return Outcome{Moved: true}
	}

	if !c.delayEnabled() {
		return c.locked(c.lock(false, false))
	}
	if c.state == StateFalling {
		c.state = StatePendingLock
		c.resets = 0
		c.startTimer()
	}
	return Outcome{}
}

func (c *Controller) hardDrop() Outcome {
	c.cancelPending()
	for c.board.MoveBy(0, 1) {
	}
	return c.locked(c.lock(true, false))
}

// shift handles the bookkeeping after a lateral move or rotation.
func (c *Controller) shift(moved bool) Outcome {
	out := Outcome{Moved: moved}
	if !moved || c.state != StatePendingLock {
		return out
	}

	c.resets++
	if c.cfg.MaxResets > 0 && c.resets >= c.cfg.MaxResets {
		if ev, ok := c.tryLock(true); ok {
			out.Locked = true
			out.Lock = ev
		}
		return out
	}
	c.startTimer()
	return out
}

// tryLock locks unless the piece has become free to fall in the meantime,
// in which case the pending lock is cancelled.
func (c *Controller) tryLock(forced bool) (LockEvent, bool) {
	if c.board.CanMoveDown() {
		c.cancelPending()
		return LockEvent{}, false
	}
	return c.lock(false, forced), true
}

// lock runs the lock sequence: merge, clear, score, spawn.
func (c *Controller) lock(hard, forced bool) LockEvent {
	c.stopTimer()
	c.resets = 0

	c.board.LockActivePiece()
	res := c.board.ClearRows()
	c.board.AddScore(res.ScoreBonus)

	ev := LockEvent{Clear: res, HardDrop: hard, Forced: forced}
	if c.board.Spawn() {
		c.state = StateGameOver
		ev.GameOver = true
	} else {
		c.state = StateFalling
	}

	if c.onLock != nil {
		c.onLock(ev)
	}
	return ev
}

func (c *Controller) locked(ev LockEvent) Outcome {
	return Outcome{Locked: true, Lock: ev}
}

// cancelPending leaves PendingLock for Falling and drops the timer.
func (c *Controller) cancelPending() {
	c.stopTimer()
	c.resets = 0
	if c.state == StatePendingLock {
		c.state = StateFalling
	}
}

// startTimer (re)starts the single-shot lock timer, cancelling any
// previous one.
func (c *Controller) startTimer() {
	c.stopTimer()
	if c.suspended || c.timers == nil {
		return
	}
	c.timerGen++
	gen := c.timerGen
	c.timer = c.timers.AfterFunc(c.cfg.Delay, func() {
		if gen != c.timerGen || c.state != StatePendingLock {
			return
		}
		c.timer = nil
		c.tryLock(false)
	})
}

func (c *Controller) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.timerGen++
}
