package game

import "github.com/vancomm/sweeper/internal/mines"

// Point addresses a cell by grid position.
type Point struct {
	Row int `schema:"row,required" json:"row"`
	Col int `schema:"col,required" json:"col"`
}

// Controller drives one game session on a board. All board mutation goes
// through Reveal, ToggleFlag and Restart.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	board *mines.Board
	phase Phase
}

// New starts a session on board. A board that already has mines placed
// starts in Playing.
func New(board *mines.Board) *Controller {
	c := &Controller{board: board, phase: Ready}
	if board.MinesPlaced() {
		c.phase = Playing
	}
	return c
}

func (c *Controller) Board() *mines.Board { return c.board }
func (c *Controller) Phase() Phase        { return c.phase }
func (c *Controller) IsEnded() bool       { return c.phase == Won || c.phase == Lost }
func (c *Controller) IsFirstClick() bool  { return c.phase == Ready }

// Reveal opens the cell at p. Input after the game ended, outside the grid,
// or on a revealed or flagged cell is ignored and reports Continue.
//
// The first reveal places the mines with p kept clear, so it never loses.
func (c *Controller) Reveal(p Point) Outcome {
	if c.IsEnded() {
		return Continue
	}
	index, ok := c.board.IndexFor(p.Row, p.Col)
	if !ok {
		return Continue
	}
	cell := c.cell(index)
	if cell.IsRevealed() || cell.IsFlagged() {
		return Continue
	}

	if c.phase == Ready {
		if !c.board.MinesPlaced() {
			if err := c.board.PlaceMines(index); err != nil {
				panic(err)
			}
		}
		c.phase = Playing
	}

	cell, err := c.board.Reveal(index)
	if err != nil {
		panic(err)
	}
	switch {
	case cell.IsMine():
		c.board.RevealMines()
		c.phase = Lost
		return Loss
	case cell.IsZero():
		c.board.FloodRevealFromZero(index)
	}

	if c.board.IsCleared() {
		c.phase = Won
		return Win
	}
	return Continue
}

// ToggleFlag flags or unflags the concealed cell at p. It is ignored once the
// game ended or when the cell is revealed.
func (c *Controller) ToggleFlag(p Point) Outcome {
	if c.IsEnded() {
		return Continue
	}
	index, ok := c.board.IndexFor(p.Row, p.Col)
	if !ok {
		return Continue
	}
	if _, err := c.board.ToggleFlag(index); err != nil {
		panic(err)
	}
	return Continue
}

// cell looks up a cell by an index that IndexFor already bounds-checked.
func (c *Controller) cell(index int) mines.Cell {
	cell, err := c.board.Cell(index)
	if err != nil {
		panic(err)
	}
	return cell
}

// Restart rebuilds the board with new parameters and returns the session to
// Ready. On error nothing changes.
func (c *Controller) Restart(rows, cols, mineCount int) error {
	if err := c.board.Initialize(rows, cols, mineCount); err != nil {
		return err
	}
	c.phase = Ready
	return nil
}
