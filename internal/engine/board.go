package engine

import "fmt"

// BoardConfig holds the injected board parameters.
type BoardConfig struct {
	Width           int // Columns
	Height          int // Rows, including hidden spawn rows
	SpawnX          int // Origin column of every new piece's rotation grid
	SpawnY          int // Origin row of every new piece's rotation grid
	ScoreMultiplier int // Line clear bonus is ScoreMultiplier * n * n
}

// Board owns the grid, the active piece and the score. It performs no
// locking: at most one mutating call may be in flight at a time.
type Board struct {
	cfg      BoardConfig
	grid     *Grid
	rotator  Rotator
	pieces   PieceSource
	x, y     int
	hasPiece bool
	score    Score
}

// NewBoard validates cfg and returns an empty board without an active
// piece. Call ResetForNewGame or Spawn to bring in the first piece.
func NewBoard(cfg BoardConfig, pieces PieceSource) (*Board, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("engine: %dx%d: %w", cfg.Width, cfg.Height, ErrInvalidDimensions)
	}
	if cfg.SpawnX <= -ShapeSize || cfg.SpawnX >= cfg.Width ||
		cfg.SpawnY <= -ShapeSize || cfg.SpawnY >= cfg.Height {
		return nil, fmt.Errorf("engine: spawn (%d,%d): %w", cfg.SpawnX, cfg.SpawnY, ErrInvalidSpawn)
	}
	if pieces == nil {
		return nil, fmt.Errorf("engine: %w", ErrNoPieceSource)
	}

	return &Board{
		cfg:    cfg,
		grid:   NewGrid(cfg.Width, cfg.Height),
		pieces: pieces,
	}, nil
}

// Config returns the board configuration.
func (b *Board) Config() BoardConfig {
	return b.cfg
}

// MoveBy shifts the active piece by (dx, dy) if the target is free.
// On failure nothing changes.
func (b *Board) MoveBy(dx, dy int) bool {
	if !b.hasPiece {
		return false
	}
	nx, ny := b.x+dx, b.y+dy
	if Overlaps(b.grid, b.rotator.Current(), nx, ny) {
		return false
	}
	b.x, b.y = nx, ny
	return true
}

// Rotate advances the piece to its next rotation state in place. There is
// no kick search: a rotation that would overlap fails outright.
func (b *Board) Rotate() bool {
	if !b.hasPiece {
		return false
	}
	shape, next := b.rotator.PeekNext()
	if Overlaps(b.grid, shape, b.x, b.y) {
		return false
	}
	b.rotator.Commit(next)
	return true
}

// CanMoveDown reports whether the piece could fall one row, without moving it.
func (b *Board) CanMoveDown() bool {
	if !b.hasPiece {
		return false
	}
	return !Overlaps(b.grid, b.rotator.Current(), b.x, b.y+1)
}

// Spawn draws the next piece and places it at the spawn offset. It returns
// true when the new piece overlaps the grid, which is the game-over signal.
func (b *Board) Spawn() bool {
	b.rotator.SetPiece(b.pieces.Take())
	b.x, b.y = b.cfg.SpawnX, b.cfg.SpawnY
	b.hasPiece = true
	return Overlaps(b.grid, b.rotator.Current(), b.x, b.y)
}

// LockActivePiece merges the active piece into the grid. It is irreversible
// and is followed by ClearRows. Without an active piece it does nothing.
func (b *Board) LockActivePiece() {
	if !b.hasPiece {
		return
	}
	b.grid = Merge(b.grid, b.rotator.Current(), b.x, b.y)
	b.hasPiece = false
}

// ClearRows removes full rows from the grid and returns the result. The
// score bonus is reported, not applied; see AddScore.
func (b *Board) ClearRows() ClearResult {
	res := ClearFullRows(b.grid, b.cfg.ScoreMultiplier)
	b.grid = res.grid.Clone()
	return res
}

// GhostRow returns the lowest y the active piece can reach by falling
// straight down from its current position. It never mutates state.
func (b *Board) GhostRow() int {
	if !b.hasPiece {
		return b.y
	}
	shape := b.rotator.Current()
	y := b.y
	for y < b.cfg.Height && !Overlaps(b.grid, shape, b.x, y+1) {
		y++
	}
	return y
}

// ResetForNewGame empties the grid, zeroes the score and spawns one piece.
// It returns the spawn's game-over flag.
func (b *Board) ResetForNewGame() bool {
	b.grid = NewGrid(b.cfg.Width, b.cfg.Height)
	b.score.Reset()
	return b.Spawn()
}

// AddScore adds points to the score.
func (b *Board) AddScore(n int) {
	b.score.Add(n)
}

// Score returns the current score.
func (b *Board) Score() int {
	return b.score.Value()
}

// Grid returns a copy of the locked-in cells.
func (b *Board) Grid() *Grid {
	return b.grid.Clone()
}

// HasPiece reports whether an active piece is on the board.
func (b *Board) HasPiece() bool {
	return b.hasPiece
}

// Position returns the origin of the active piece's rotation grid.
func (b *Board) Position() (x, y int) {
	return b.x, b.y
}

// View returns a fresh snapshot of the active piece, the preview and the
// ghost row.
func (b *Board) View() ViewSnapshot {
	next := b.pieces.PeekNext()
	v := ViewSnapshot{
		Next: next,
		X:    b.x,
		Y:    b.y,
	}
	if next.Valid() {
		v.NextShape = next.State(0)
	}
	if b.hasPiece {
		v.Piece = b.rotator.Piece()
		v.Rotation = b.rotator.Index()
		v.Shape = b.rotator.Current()
		v.GhostY = b.GhostRow()
	} else {
		v.GhostY = b.y
	}
	return v
}
