package board

import "slices"

// Clone returns an independent, committed copy of the board's current cells
// and statistics. The pending snapshot, if any, is not carried over.
func (b *Board) Clone() *Board {
	c := New(b.width, b.height, WithConsistencyCheck(b.checkConsistency))
	copyGrid(c.grid, b.grid)
	c.stats.copyFrom(&b.stats)
	return c
}

// Equal reports whether two boards have the same size, cells and cached
// statistics. The commit state is not compared.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for x := range b.grid {
		if !slices.Equal(b.grid[x], other.grid[x]) {
			return false
		}
	}
	return b.stats.equal(&other.stats)
}

// Reset empties the board and leaves it committed.
func (b *Board) Reset() {
	for x := range b.grid {
		clear(b.grid[x])
	}
	clear(b.stats.rowFill)
	clear(b.stats.colHeight)
	b.stats.maxHeight = 0
	b.committed = true
}
