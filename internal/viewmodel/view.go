// Package viewmodel renders a game session the way front ends read it: one
// entry per cell, with nothing a player could not see on screen.
package viewmodel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/sweeper/internal/game"
	"github.com/vancomm/sweeper/internal/mines"
)

type CellView struct {
	Row      int  `json:"row"`
	Col      int  `json:"col"`
	Revealed bool `json:"revealed"`
	Flagged  bool `json:"flagged"`
	Count    *int `json:"count,omitempty"`
	Mine     bool `json:"mine,omitempty"`
}

type GameView struct {
	Rows           int        `json:"rows"`
	Cols           int        `json:"cols"`
	MineCount      int        `json:"mine_count"`
	MinesRemaining int        `json:"mines_remaining"`
	Phase          game.Phase `json:"phase"`
	Ended          bool       `json:"ended"`
	Cells          []CellView `json:"cells"`
}

func newCellView(c mines.Cell) CellView {
	v := CellView{
		Row:      c.Row(),
		Col:      c.Col(),
		Revealed: c.IsRevealed(),
		Flagged:  c.IsFlagged(),
	}
	if !c.IsRevealed() {
		return v
	}
	if c.IsMine() {
		v.Mine = true
	} else {
		n := c.AdjacentMines()
		v.Count = &n
	}
	return v
}

func NewGameView(ctrl *game.Controller) GameView {
	b := ctrl.Board()
	cells := b.Cells()
	view := GameView{
		Rows:           b.Rows(),
		Cols:           b.Cols(),
		MineCount:      b.MineCount(),
		MinesRemaining: b.MineCount() - b.FlagCount(),
		Phase:          ctrl.Phase(),
		Ended:          ctrl.IsEnded(),
		Cells:          make([]CellView, len(cells)),
	}
	for i, c := range cells {
		view.Cells[i] = newCellView(c)
	}
	return view
}

// Symbol is the terminal glyph of the cell.
func (v CellView) Symbol() string {
	switch {
	case v.Flagged:
		return "F"
	case !v.Revealed:
		return "#"
	case v.Mine:
		return "*"
	case v.Count == nil || *v.Count == 0:
		return "."
	default:
		return strconv.Itoa(*v.Count)
	}
}

// Text draws the grid with a column ruler and row numbers, followed by a
// status line.
func (v GameView) Text() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := range v.Cols {
		fmt.Fprintf(&sb, " %d", col%10)
	}
	sb.WriteByte('\n')
	for row := range v.Rows {
		fmt.Fprintf(&sb, "%2d", row)
		for col := range v.Cols {
			sb.WriteByte(' ')
			sb.WriteString(v.Cells[row*v.Cols+col].Symbol())
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%s, mines left: %d\n", v.Phase, v.MinesRemaining)
	return sb.String()
}
