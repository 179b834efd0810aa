// Package engine implements the falling-block puzzle core: the grid, the
// active piece, collision detection, rotation, line clearing, scoring and the
// lock-delay state machine.
//
// The package has no terminal or storage dependencies and holds no mutable
// package-level state. Every value handed to callers is a copy; the engine
// never exposes its internal storage by reference.
package engine

import "strings"

// Cell is a single grid cell. Empty is 0, 1..7 identify a piece color.
type Cell uint8

// Empty is the value of an unoccupied cell.
const Empty Cell = 0

// Grid is a rectangular matrix of cells in row-major order: index = y*W + x.
// Width counts columns (x axis), height counts rows (y axis).
type Grid struct {
	w     int
	h     int
	cells []Cell
}

// NewGrid creates an all-empty grid. Dimensions must be positive; callers
// that accept external input validate them first (see NewBoard).
func NewGrid(w, h int) *Grid {
	return &Grid{
		w:     w,
		h:     h,
		cells: make([]Cell, w*h),
	}
}

// GridFromRows builds a grid from a slice of rows. All rows must have the
// same length as the first one; shorter rows are padded with empty cells.
func GridFromRows(rows [][]Cell) *Grid {
	if len(rows) == 0 {
		return NewGrid(0, 0)
	}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x := 0; x < g.w && x < len(row); x++ {
			g.cells[g.index(x, y)] = row[x]
		}
	}
	return g
}

func (g *Grid) index(x, y int) int {
	return y*g.w + x
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.h
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the cell at (x, y). Out-of-bounds coordinates read as Empty.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[g.index(x, y)]
}

// Row returns a copy of row y, or nil when y is out of range.
func (g *Grid) Row(y int) []Cell {
	if y < 0 || y >= g.h {
		return nil
	}
	row := make([]Cell, g.w)
	copy(row, g.cells[g.index(0, y):g.index(0, y)+g.w])
	return row
}

// Rows returns a deep copy of the grid as a slice of rows.
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.h)
	for y := range rows {
		rows[y] = g.Row(y)
	}
	return rows
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells}
}

// Equal returns true if both grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// FilledCount returns the number of non-empty cells.
func (g *Grid) FilledCount() int {
	n := 0
	for _, c := range g.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// rowFull reports whether row y contains no empty cell.
func (g *Grid) rowFull(y int) bool {
	for x := 0; x < g.w; x++ {
		if g.cells[g.index(x, y)] == Empty {
			return false
		}
	}
	return true
}

// String renders the grid one row per line, '.' for empty cells and the
// color digit otherwise. Handy in test failure output.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.w + 1) * g.h)
	for y := 0; y < g.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.w; x++ {
			c := g.cells[g.index(x, y)]
			if c == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(c))
			}
		}
	}
	return sb.String()
}
