package mines

import (
	"strconv"
	"strings"
)

// Symbol is the debug glyph of a cell:
//
//	# concealed
//	F flagged
//	* revealed mine
//	. revealed, no mined neighbors
//	1-8 revealed, number of mined neighbors
func (c Cell) Symbol() string {
	switch {
	case c.flagged:
		return "F"
	case !c.revealed:
		return "#"
	case c.IsMine():
		return "*"
	case c.mineCount == 0:
		return "."
	default:
		return strconv.Itoa(c.mineCount)
	}
}

// String dumps the grid one row per line, cells separated by spaces.
func (b *Board) String() string {
	var sb strings.Builder
	for i, c := range b.cells {
		sb.WriteString(c.Symbol())
		if (i+1)%b.cols == 0 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
