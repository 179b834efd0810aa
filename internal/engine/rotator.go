package engine

// Rotator tracks the active piece and its current rotation index.
// The index is always within [0, piece.NumStates()).
type Rotator struct {
	piece PieceType
	index int
}

// SetPiece assigns a new piece and resets the rotation index to 0.
func (r *Rotator) SetPiece(p PieceType) {
	r.piece = p
	r.index = 0
}

// Piece returns the active piece type.
func (r *Rotator) Piece() PieceType {
	return r.piece
}

// Index returns the current rotation index.
func (r *Rotator) Index() int {
	return r.index
}

// Current returns the shape at the current rotation index.
func (r *Rotator) Current() Shape {
	if !r.piece.Valid() {
		return Shape{}
	}
	return r.piece.State(r.index)
}

// PeekNext returns the next rotation candidate and its index without
// changing state.
func (r *Rotator) PeekNext() (Shape, int) {
	n := r.piece.NumStates()
	if n == 0 {
		return Shape{}, 0
	}
	next := (r.index + 1) % n
	return r.piece.State(next), next
}

// Commit sets the rotation index. Out-of-range values wrap into range.
func (r *Rotator) Commit(index int) {
	n := r.piece.NumStates()
	if n == 0 {
		r.index = 0
		return
	}
	r.index = ((index % n) + n) % n
}
