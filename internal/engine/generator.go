package engine

import "math/rand"

// PieceSource yields the pieces a board spawns. Take advances the sequence;
// PeekNext returns what the next Take will return without advancing.
type PieceSource interface {
	Take() PieceType
	PeekNext() PieceType
}

// RandomGenerator draws pieces independently and uniformly from the seven
// types, with replacement. Back-to-back repeats are possible. It keeps a
// single slot of lookahead for the next-piece preview.
type RandomGenerator struct {
	rng  *rand.Rand
	next PieceType
}

// NewRandomGenerator creates a generator backed by rng. A nil rng gets a
// fixed-seed source so the sequence stays reproducible.
func NewRandomGenerator(rng *rand.Rand) *RandomGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	g := &RandomGenerator{rng: rng}
	g.next = g.draw()
	return g
}

func (g *RandomGenerator) draw() PieceType {
	return PieceType(g.rng.Intn(NumPieceTypes)) + PieceI
}

// Take returns the held lookahead piece and draws a fresh one.
func (g *RandomGenerator) Take() PieceType {
	p := g.next
	g.next = g.draw()
	return p
}

// PeekNext returns the held lookahead piece.
func (g *RandomGenerator) PeekNext() PieceType {
	return g.next
}
