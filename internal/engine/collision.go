package engine

// ClearResult is produced once per lock event. The grid it carries is a
// private copy; Grid() hands out another copy on every call.
type ClearResult struct {
	LinesRemoved int
	ScoreBonus   int
	grid         *Grid
}

// Grid returns a copy of the grid left after the full rows were removed.
func (r ClearResult) Grid() *Grid {
	return r.grid.Clone()
}

// Overlaps reports whether shape placed with its origin at (x, y) collides
// with the grid. A target cell outside the grid always counts as a collision.
func Overlaps(g *Grid, s Shape, x, y int) bool {
	for r := 0; r < ShapeSize; r++ {
		for c := 0; c < ShapeSize; c++ {
			if s[r][c] == Empty {
				continue
			}
			tx, ty := x+c, y+r
			if !g.InBounds(tx, ty) || g.cells[g.index(tx, ty)] != Empty {
				return true
			}
		}
	}
	return false
}

// Merge returns a new grid equal to g with every occupied cell of shape
// written at offset (x, y). It does not test for collisions; callers check
// Overlaps first. Cells that would land outside the grid are dropped.
func Merge(g *Grid, s Shape, x, y int) *Grid {
	out := g.Clone()
	for r := 0; r < ShapeSize; r++ {
		for c := 0; c < ShapeSize; c++ {
			if s[r][c] == Empty {
				continue
			}
			tx, ty := x+c, y+r
			if out.InBounds(tx, ty) {
				out.cells[out.index(tx, ty)] = s[r][c]
			}
		}
	}
	return out
}

// ClearFullRows removes every row that has no empty cell. Kept rows slide to
// the bottom in their original order and the same number of empty rows fill
// the top. The bonus is multiplier * n * n, so clearing several rows at once
// is worth quadratically more than clearing them one by one.
func ClearFullRows(g *Grid, multiplier int) ClearResult {
	out := NewGrid(g.w, g.h)

	kept := make([]int, 0, g.h)
	for y := 0; y < g.h; y++ {
		if !g.rowFull(y) {
			kept = append(kept, y)
		}
	}

	removed := g.h - len(kept)
	for i, srcY := range kept {
		dstY := removed + i
		copy(out.cells[out.index(0, dstY):out.index(0, dstY)+g.w], g.cells[g.index(0, srcY):g.index(0, srcY)+g.w])
	}

	return ClearResult{
		LinesRemoved: removed,
		ScoreBonus:   multiplier * removed * removed,
		grid:         out,
	}
}
