package mines

import (
	"fmt"
	"math"
)

// Shuffler permutes n elements through swap. [*math/rand/v2.Rand] satisfies
// it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Board owns a row-major grid of cells. Index of a cell is row*cols + col.
//
// A Board is not safe for concurrent use.
type Board struct {
	rows, cols  int
	mineCount   int
	cells       []Cell
	minesPlaced bool
	shuffler    Shuffler
}

// New creates a board with every cell concealed and no mines placed yet.
func New(rows, cols, mineCount int, s Shuffler) (*Board, error) {
	b := &Board{shuffler: s}
	if err := b.Initialize(rows, cols, mineCount); err != nil {
		return nil, err
	}
	return b, nil
}

func validate(rows, cols, mineCount int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d",
			ErrInvalidConfiguration, rows, cols)
	}
	if rows > math.MaxInt/cols {
		return fmt.Errorf("%w: board of %dx%d cells is too large",
			ErrInvalidConfiguration, rows, cols)
	}
	if mineCount <= 0 || mineCount >= rows*cols {
		return fmt.Errorf("%w: mine count must be in (0, %d), got %d",
			ErrInvalidConfiguration, rows*cols, mineCount)
	}
	return nil
}

// Initialize rebuilds the board from scratch. On error the board is left
// unchanged.
func (b *Board) Initialize(rows, cols, mineCount int) error {
	if err := validate(rows, cols, mineCount); err != nil {
		return err
	}
	b.rows, b.cols, b.mineCount = rows, cols, mineCount
	b.cells = make([]Cell, rows*cols)
	for i := range b.cells {
		b.cells[i] = Cell{row: i / cols, col: i % cols, index: i}
	}
	b.minesPlaced = false
	return nil
}

func (b *Board) Rows() int         { return b.rows }
func (b *Board) Cols() int         { return b.cols }
func (b *Board) MineCount() int    { return b.mineCount }
func (b *Board) MinesPlaced() bool { return b.minesPlaced }
func (b *Board) Len() int          { return len(b.cells) }

func (b *Board) inBounds(index int) bool {
	return 0 <= index && index < len(b.cells)
}

// IndexFor maps a grid position to a cell index. ok is false when the
// position lies outside the grid.
func (b *Board) IndexFor(row, col int) (index int, ok bool) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return -1, false
	}
	return row*b.cols + col, true
}

func (b *Board) Coords(index int) (row, col int) {
	return index / b.cols, index % b.cols
}

func (b *Board) Cell(index int) (Cell, error) {
	if !b.inBounds(index) {
		return Cell{}, fmt.Errorf("%w: index %d", ErrOutOfBounds, index)
	}
	return b.cells[index], nil
}

// Cells returns a row-major copy of the grid.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return cells
}

func (b *Board) FlagCount() (count int) {
	for _, c := range b.cells {
		if c.flagged {
			count++
		}
	}
	return
}

// Offsets in the order top-left, top, top-right, right, bottom-right,
// bottom, bottom-left, left.
var offsets8 = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1},
}

// Offsets in the order top, right, bottom, left.
var offsets4 = [4][2]int{
	{-1, 0}, {0, 1}, {1, 0}, {0, -1},
}

func (b *Board) neighbors(index int, offsets [][2]int) []int {
	if !b.inBounds(index) {
		return nil
	}
	row, col := b.Coords(index)
	indices := make([]int, 0, len(offsets))
	for _, d := range offsets {
		if i, ok := b.IndexFor(row+d[0], col+d[1]); ok {
			indices = append(indices, i)
		}
	}
	return indices
}

// Neighbors8 returns the indices of the up to 8 cells sharing an edge or a
// corner with the cell at index. Column bounds are checked so a cell on the
// right border never sees the left border of the next row.
func (b *Board) Neighbors8(index int) []int {
	return b.neighbors(index, offsets8[:])
}

// Neighbors4 returns the indices of the up to 4 orthogonal neighbors.
func (b *Board) Neighbors4(index int) []int {
	return b.neighbors(index, offsets4[:])
}

// Reveal opens the cell at index and returns its new state. Flagged and
// already revealed cells are left as they are.
func (b *Board) Reveal(index int) (Cell, error) {
	if !b.inBounds(index) {
		return Cell{}, fmt.Errorf("%w: index %d", ErrOutOfBounds, index)
	}
	c := &b.cells[index]
	if !c.flagged {
		c.revealed = true
	}
	return *c, nil
}

// ToggleFlag flips the flag of a concealed cell. Revealed cells are left as
// they are.
func (b *Board) ToggleFlag(index int) (Cell, error) {
	if !b.inBounds(index) {
		return Cell{}, fmt.Errorf("%w: index %d", ErrOutOfBounds, index)
	}
	c := &b.cells[index]
	if !c.revealed {
		c.flagged = !c.flagged
	}
	return *c, nil
}

// RevealMines opens every mined cell, dropping its flag, and returns the
// indices that were concealed before the call.
func (b *Board) RevealMines() (revealed []int) {
	for i := range b.cells {
		c := &b.cells[i]
		if c.IsMine() && !c.revealed {
			c.flagged = false
			c.revealed = true
			revealed = append(revealed, i)
		}
	}
	return
}

// IsCleared reports whether every cell without a mine is revealed.
func (b *Board) IsCleared() bool {
	for _, c := range b.cells {
		if !c.IsMine() && !c.revealed {
			return false
		}
	}
	return true
}
