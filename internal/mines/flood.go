package mines

import "github.com/gammazero/deque"

// FloodRevealFromZero expands a revealed zero cell. Orthogonally connected
// zero cells that are concealed and unflagged join the region; every region
// cell and each of its 8 neighbors end up revealed. Returns the indices that
// changed from concealed to revealed, in reveal order.
//
// The traversal is a LIFO walk over an explicit stack so large boards do not
// grow the call stack.
func (b *Board) FloodRevealFromZero(index int) (revealed []int) {
	if !b.inBounds(index) || !b.cells[index].IsZero() {
		return nil
	}

	visited := make([]bool, len(b.cells))
	var (
		stack  deque.Deque[int]
		region []int
	)
	stack.PushBack(index)
	for stack.Len() > 0 {
		i := stack.PopBack()
		if visited[i] {
			continue
		}
		visited[i] = true
		region = append(region, i)
		for _, j := range b.Neighbors4(i) {
			c := b.cells[j]
			if !visited[j] && !c.flagged && !c.revealed && c.IsZero() {
				stack.PushBack(j)
			}
		}
	}

	open := func(i int) {
		c := &b.cells[i]
		if c.revealed || c.flagged {
			return
		}
		c.revealed = true
		revealed = append(revealed, i)
	}
	for _, i := range region {
		open(i)
		for _, j := range b.Neighbors8(i) {
			open(j)
		}
	}
	return
}
