package mines

// MineSentinel is the adjacency count carried by a mined cell.
const MineSentinel = 9

// Cell is one grid position. It is handed out by value; the board is the
// only owner allowed to change it.
type Cell struct {
	row, col  int
	index     int
	mineCount int
	revealed  bool
	flagged   bool
}

func (c Cell) Row() int   { return c.row }
func (c Cell) Col() int   { return c.col }
func (c Cell) Index() int { return c.index }

// AdjacentMines is the number of mined neighbors, or [MineSentinel] for a
// mined cell. It is 0 for every cell until mines are placed.
func (c Cell) AdjacentMines() int { return c.mineCount }

func (c Cell) IsMine() bool     { return c.mineCount == MineSentinel }
func (c Cell) IsZero() bool     { return c.mineCount == 0 }
func (c Cell) IsRevealed() bool { return c.revealed }
func (c Cell) IsFlagged() bool  { return c.flagged }
