package engine

// ShapeSize is the side length of every rotation-state grid.
const ShapeSize = 4

// Shape is one rotation state of a piece: a fixed 4x4 grid whose occupied
// cells hold the piece color. Shapes are values, so passing one around
// always copies it.
type Shape [ShapeSize][ShapeSize]Cell

// Blocks returns the (column, row) offsets of the occupied cells, row by row.
func (s Shape) Blocks() [][2]int {
	blocks := make([][2]int, 0, 4)
	for r := 0; r < ShapeSize; r++ {
		for c := 0; c < ShapeSize; c++ {
			if s[r][c] != Empty {
				blocks = append(blocks, [2]int{c, r})
			}
		}
	}
	return blocks
}

// PieceType identifies one of the seven pieces. Its numeric value doubles
// as the cell color written into the grid.
type PieceType uint8

const (
	PieceNone PieceType = iota
	PieceI
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ
)

// NumPieceTypes is the number of distinct pieces in the catalog.
const NumPieceTypes = 7

// AllPieceTypes returns every piece type in catalog order.
func AllPieceTypes() []PieceType {
	return []PieceType{PieceI, PieceJ, PieceL, PieceO, PieceS, PieceT, PieceZ}
}

// String returns the conventional letter for the piece.
func (p PieceType) String() string {
	switch p {
	case PieceI:
		return "I"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceO:
		return "O"
	case PieceS:
		return "S"
	case PieceT:
		return "T"
	case PieceZ:
		return "Z"
	default:
		return "?"
	}
}

// Valid reports whether p names a catalog piece.
func (p PieceType) Valid() bool {
	return p >= PieceI && p <= PieceZ
}

// Color returns the cell value the piece stamps into the grid.
func (p PieceType) Color() Cell {
	return Cell(p)
}

// NumStates returns how many rotation states the piece has.
func (p PieceType) NumStates() int {
	if !p.Valid() {
		return 0
	}
	return len(catalog[p])
}

// State returns rotation state i. It panics if i is out of range.
func (p PieceType) State(i int) Shape {
	return catalog[p][i]
}

// States returns a copy of the ordered rotation states.
func (p PieceType) States() []Shape {
	if !p.Valid() {
		return nil
	}
	states := make([]Shape, len(catalog[p]))
	copy(states, catalog[p])
	return states
}

// catalog holds the pre-authored rotation states. I, S and Z cycle through
// two states, O has one, J, L and T have four. It is read-only.
var catalog = [...][]Shape{
	PieceNone: nil,
	PieceI: {
		{
			{0, 0, 0, 0},
			{1, 1, 1, 1},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 1, 0, 0},
			{0, 1, 0, 0},
			{0, 1, 0, 0},
			{0, 1, 0, 0},
		},
	},
	PieceJ: {
		{
			{0, 0, 0, 0},
			{2, 2, 2, 0},
			{0, 0, 2, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 0, 0, 0},
			{0, 2, 2, 0},
			{0, 2, 0, 0},
			{0, 2, 0, 0},
		},
		{
			{0, 0, 0, 0},
			{0, 2, 0, 0},
			{0, 2, 2, 2},
			{0, 0, 0, 0},
		},
		{
			{0, 0, 2, 0},
			{0, 0, 2, 0},
			{0, 2, 2, 0},
			{0, 0, 0, 0},
		},
	},
	PieceL: {
		{
			{0, 0, 0, 0},
			{0, 3, 3, 3},
			{0, 3, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 0, 0, 0},
			{0, 3, 3, 0},
			{0, 0, 3, 0},
			{0, 0, 3, 0},
		},
		{
			{0, 0, 0, 0},
			{0, 0, 3, 0},
			{3, 3, 3, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 3, 0, 0},
			{0, 3, 0, 0},
			{0, 3, 3, 0},
			{0, 0, 0, 0},
		},
	},
	PieceO: {
		{
			{0, 0, 0, 0},
			{0, 4, 4, 0},
			{0, 4, 4, 0},
			{0, 0, 0, 0},
		},
	},
	PieceS: {
		{
			{0, 0, 0, 0},
			{0, 5, 5, 0},
			{5, 5, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{5, 0, 0, 0},
			{5, 5, 0, 0},
			{0, 5, 0, 0},
			{0, 0, 0, 0},
		},
	},
	PieceT: {
		{
			{0, 0, 0, 0},
			{6, 6, 6, 0},
			{0, 6, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 6, 0, 0},
			{0, 6, 6, 0},
			{0, 6, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 6, 0, 0},
			{6, 6, 6, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 6, 0, 0},
			{6, 6, 0, 0},
			{0, 6, 0, 0},
			{0, 0, 0, 0},
		},
	},
	PieceZ: {
		{
			{0, 0, 0, 0},
			{7, 7, 0, 0},
			{0, 7, 7, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 7, 0, 0},
			{7, 7, 0, 0},
			{7, 0, 0, 0},
			{0, 0, 0, 0},
		},
	},
}
