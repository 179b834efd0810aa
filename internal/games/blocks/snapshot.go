package blocks

import "github.com/vovakirdan/blockfall/internal/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Frame    uint64
	Mode     string
	Score    int
	Lines    int
	Pieces   int
	Grid     [][]engine.Cell
	Piece    engine.PieceType
	Rotation int
	X, Y     int
	Next     engine.PieceType
	Lock     engine.LockState
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.pausedBySize:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Frame:  g.frame,
		Mode:   g.mode.ID,
		Lines:  g.lines,
		Pieces: g.pieces,
		State:  state,
	}
	if g.board == nil {
		return s
	}

	view := g.board.View()
	s.Score = g.board.Score()
	s.Grid = g.board.Grid().Rows()
	s.Piece = view.Piece
	s.Rotation = view.Rotation
	s.X, s.Y = view.X, view.Y
	s.Next = view.Next
	s.Lock = g.ctrl.State()
	return s
}
