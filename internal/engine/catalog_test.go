package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogStateCounts(t *testing.T) {
	tests := []struct {
		piece  PieceType
		states int
	}{
		{PieceI, 2},
		{PieceJ, 4},
		{PieceL, 4},
		{PieceO, 1},
		{PieceS, 2},
		{PieceT, 4},
		{PieceZ, 2},
		{PieceNone, 0},
	}

	for _, tt := range tests {
		if got := tt.piece.NumStates(); got != tt.states {
			t.Errorf("%s.NumStates() = %d, expected %d", tt.piece, got, tt.states)
		}
	}
}

func TestCatalogShapesUseOwnColor(t *testing.T) {
	for _, p := range AllPieceTypes() {
		for i, s := range p.States() {
			blocks := s.Blocks()
			assert.Len(t, blocks, 4, "%s state %d", p, i)
			for _, b := range blocks {
				assert.Equal(t, p.Color(), s[b[1]][b[0]], "%s state %d", p, i)
			}
		}
	}
}

func TestCatalogStatesReturnsCopy(t *testing.T) {
	states := PieceT.States()
	states[0][1][0] = 0
	assert.Equal(t, Cell(6), PieceT.State(0)[1][0])
}

func TestRotatorCycles(t *testing.T) {
	var r Rotator
	r.SetPiece(PieceT)

	for i := 1; i <= 8; i++ {
		shape, next := r.PeekNext()
		assert.Equal(t, i%4, next)
		assert.Equal(t, PieceT.State(i%4), shape)
		r.Commit(next)
		assert.Equal(t, i%4, r.Index())
	}

	r.SetPiece(PieceO)
	_, next := r.PeekNext()
	assert.Equal(t, 0, next)
	assert.Equal(t, 0, r.Index())
}

func TestRotatorCommitWraps(t *testing.T) {
	var r Rotator
	r.SetPiece(PieceI)
	r.Commit(5)
	assert.Equal(t, 1, r.Index())
	r.Commit(-1)
	assert.Equal(t, 1, r.Index())
}

func TestRotatorWithoutPiece(t *testing.T) {
	var r Rotator
	assert.Equal(t, Shape{}, r.Current())
	shape, next := r.PeekNext()
	assert.Equal(t, Shape{}, shape)
	assert.Equal(t, 0, next)
}
