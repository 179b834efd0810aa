package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequence is a PieceSource that cycles through a fixed list.
type sequence struct {
	pieces []PieceType
	i      int
}

func newSequence(pieces ...PieceType) *sequence {
	return &sequence{pieces: pieces}
}

func (s *sequence) Take() PieceType {
	p := s.pieces[s.i%len(s.pieces)]
	s.i++
	return p
}

func (s *sequence) PeekNext() PieceType {
	return s.pieces[s.i%len(s.pieces)]
}

func newTestBoard(t *testing.T, cfg BoardConfig, pieces ...PieceType) *Board {
	t.Helper()
	b, err := NewBoard(cfg, newSequence(pieces...))
	require.NoError(t, err)
	return b
}

func TestNewBoardErrors(t *testing.T) {
	src := newSequence(PieceO)
	tests := []struct {
		name string
		cfg  BoardConfig
		src  PieceSource
		want error
	}{
		{"zero width", BoardConfig{Width: 0, Height: 10}, src, ErrInvalidDimensions},
		{"negative height", BoardConfig{Width: 10, Height: -1}, src, ErrInvalidDimensions},
		{"spawn right of board", BoardConfig{Width: 10, Height: 10, SpawnX: 10}, src, ErrInvalidSpawn},
		{"spawn far above", BoardConfig{Width: 10, Height: 10, SpawnY: -ShapeSize}, src, ErrInvalidSpawn},
		{"nil source", BoardConfig{Width: 10, Height: 10}, nil, ErrNoPieceSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoard(tt.cfg, tt.src)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewBoard() error = %v, expected %v", err, tt.want)
			}
		})
	}
}

func TestLockedSquareLandsAtOrigin(t *testing.T) {
	// The O piece occupies columns 1-2 and rows 1-2 of its rotation grid, so
	// an origin of (0, -1) puts the block at x=1..2, y=0..1.
	b := newTestBoard(t, BoardConfig{Width: 10, Height: 25, SpawnX: 0, SpawnY: -1, ScoreMultiplier: 50}, PieceO)

	require.False(t, b.Spawn())
	b.LockActivePiece()

	g := b.Grid()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			want := Empty
			if (x == 1 || x == 2) && (y == 0 || y == 1) {
				want = PieceO.Color()
			}
			assert.Equal(t, want, g.At(x, y), "cell (%d,%d)", x, y)
		}
	}
	assert.False(t, b.HasPiece())
}

func TestMoveBy(t *testing.T) {
	b := newTestBoard(t, BoardConfig{Width: 4, Height: 6, SpawnX: 0, SpawnY: 0}, PieceO)
	require.False(t, b.Spawn())

	assert.True(t, b.MoveBy(-1, 0))
	assert.False(t, b.MoveBy(-1, 0), "left wall")
	x, y := b.Position()
	assert.Equal(t, -1, x)
	assert.Equal(t, 0, y)

	assert.True(t, b.MoveBy(2, 0))
	assert.False(t, b.MoveBy(1, 0), "right wall")

	for b.MoveBy(0, 1) {
	}
	_, y = b.Position()
	assert.Equal(t, 3, y)
	assert.False(t, b.CanMoveDown())
}

func TestMoveWithoutPiece(t *testing.T) {
	b := newTestBoard(t, BoardConfig{Width: 10, Height: 10}, PieceO)
	assert.False(t, b.MoveBy(0, 1))
	assert.False(t, b.Rotate())
	assert.False(t, b.CanMoveDown())
	assert.False(t, b.View().HasPiece())
}

func TestRotate(t *testing.T) {
	b := newTestBoard(t, BoardConfig{Width: 10, Height: 10, SpawnX: 4, SpawnY: 0}, PieceT)
	require.False(t, b.Spawn())

	for i := 1; i <= 4; i++ {
		require.True(t, b.Rotate())
		assert.Equal(t, i%4, b.View().Rotation)
	}
}

func TestRotateFailsWithoutKick(t *testing.T) {
	// A flat I resting on the floor has no room for its vertical state.
	b := newTestBoard(t, BoardConfig{Width: 4, Height: 4, SpawnX: 0, SpawnY: 0}, PieceI)
	require.False(t, b.Spawn())
	for b.MoveBy(0, 1) {
	}
	before := b.View()

	assert.False(t, b.Rotate())
	after := b.View()
	assert.Equal(t, before, after, "failed rotation must not change state")
}

func TestGhostRow(t *testing.T) {
	b := newTestBoard(t, BoardConfig{Width: 10, Height: 25, SpawnX: 4, SpawnY: 0}, PieceO)
	require.False(t, b.Spawn())

	ghost := b.GhostRow()
	assert.Equal(t, 22, ghost)
	_, y := b.Position()
	assert.Equal(t, 0, y, "ghost query must not move the piece")

	// The ghost row is exactly where a hard drop would land.
	for b.MoveBy(0, 1) {
	}
	_, y = b.Position()
	assert.Equal(t, ghost, y)
	assert.Equal(t, ghost, b.GhostRow())
}

func TestSpawnGameOver(t *testing.T) {
	b := newTestBoard(t, BoardConfig{Width: 4, Height: 3, SpawnX: 0, SpawnY: 0}, PieceO)
	require.False(t, b.ResetForNewGame())
	b.LockActivePiece()
	assert.True(t, b.Spawn(), "spawn over locked cells is game over")
}

func TestResetForNewGame(t *testing.T) {
	b := newTestBoard(t, BoardConfig{Width: 4, Height: 4, SpawnX: 0, SpawnY: 0, ScoreMultiplier: 50}, PieceI)
	require.False(t, b.ResetForNewGame())
	for b.MoveBy(0, 1) {
	}
	b.LockActivePiece()
	res := b.ClearRows()
	require.Equal(t, 1, res.LinesRemoved)
	b.AddScore(res.ScoreBonus)
	b.AddScore(-10)
	assert.Equal(t, 50, b.Score())

	require.False(t, b.ResetForNewGame())
	assert.Equal(t, 0, b.Score())
	assert.Equal(t, 0, b.Grid().FilledCount())
	assert.True(t, b.HasPiece())
}

func TestBoardHandsOutCopies(t *testing.T) {
	b := newTestBoard(t, BoardConfig{Width: 4, Height: 4, SpawnX: 0, SpawnY: 0}, PieceO)
	require.False(t, b.Spawn())

	v := b.View()
	v.Shape[1][1] = Empty
	assert.Equal(t, PieceO.Color(), b.View().Shape[1][1])

	b.LockActivePiece()
	g := b.Grid()
	g.cells[g.index(1, 1)] = Empty
	assert.Equal(t, PieceO.Color(), b.Grid().At(1, 1))
}

func TestViewPreview(t *testing.T) {
	b := newTestBoard(t, BoardConfig{Width: 10, Height: 10, SpawnX: 4, SpawnY: 0}, PieceT, PieceZ, PieceI)
	require.False(t, b.Spawn())

	v := b.View()
	assert.Equal(t, PieceT, v.Piece)
	assert.Equal(t, PieceZ, v.Next)
	assert.Equal(t, PieceZ.State(0), v.NextShape)

	b.LockActivePiece()
	b.Spawn()
	assert.Equal(t, PieceZ, b.View().Piece, "preview is the piece that spawns next")
}
