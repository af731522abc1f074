package game

// Viewport bounds the height a presentation can give the grid. The zero
// Viewport is unconstrained.
type Viewport struct {
	MaxHeight int
	CellSize  int
}

// ComputeRows derives the row count of a board. rows <= 0 means not fixed,
// in which case the board is square. A constraining viewport caps the result
// at the number of whole cells that fit, never below one.
func ComputeRows(cols, rows int, v Viewport) int {
	if rows <= 0 {
		rows = cols
	}
	if v.MaxHeight > 0 && v.CellSize > 0 {
		rows = min(rows, max(v.MaxHeight/v.CellSize, 1))
	}
	return rows
}
