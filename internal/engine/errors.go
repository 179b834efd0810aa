package engine

import "errors"

// Construction errors. Gameplay rejections (a blocked move or rotation) are
// never errors; they are reported as boolean outcomes.
var (
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrInvalidSpawn      = errors.New("spawn offset places no piece cell on the board")
	ErrNoPieceSource     = errors.New("piece source is nil")
)
