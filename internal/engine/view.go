package engine

// ViewSnapshot is a read-only projection of the active piece for renderers.
// Every field is a value, so a snapshot never aliases engine storage.
type ViewSnapshot struct {
	Piece     PieceType
	Rotation  int
	Shape     Shape
	X, Y      int
	Next      PieceType
	NextShape Shape
	GhostY    int
}

// HasPiece reports whether the snapshot carries an active piece.
func (v ViewSnapshot) HasPiece() bool {
	return v.Piece.Valid()
}
