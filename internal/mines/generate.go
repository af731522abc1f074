package mines

import "fmt"

// PlaceMines assigns mines to the board so that the cell at safeIndex stays
// clear, then computes the adjacency count of every other cell. It may only
// be called once per initialization.
//
// The markers are shuffled as a whole. If the safe cell draws a mine, that
// mine is swapped with the first clear marker in index order rather than
// redrawn, so the resulting layouts are not perfectly uniform.
func (b *Board) PlaceMines(safeIndex int) error {
	if b.minesPlaced {
		return ErrMinesPlaced
	}
	if !b.inBounds(safeIndex) {
		return fmt.Errorf("%w: index %d", ErrOutOfBounds, safeIndex)
	}

	markers := make([]int, len(b.cells))
	for i := range b.mineCount {
		markers[i] = MineSentinel
	}
	b.shuffler.Shuffle(len(markers), func(i, j int) {
		markers[i], markers[j] = markers[j], markers[i]
	})

	if markers[safeIndex] == MineSentinel {
		for i, m := range markers {
			if m == 0 {
				markers[safeIndex], markers[i] = 0, MineSentinel
				break
			}
		}
	}

	b.assignMarkers(markers)
	return nil
}

// assignMarkers copies mine markers onto the cells and recomputes every
// adjacency count.
func (b *Board) assignMarkers(markers []int) {
	for i, m := range markers {
		b.cells[i].mineCount = m
	}
	for i := range b.cells {
		if b.cells[i].IsMine() {
			continue
		}
		count := 0
		for _, j := range b.Neighbors8(i) {
			if b.cells[j].IsMine() {
				count++
			}
		}
		b.cells[i].mineCount = count
	}
	b.minesPlaced = true
}
