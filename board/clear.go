package board

// ClearRows removes every full row, shifts the rows above it down and returns
// the number of rows removed.
//
// When called right after Place, the pending snapshot is kept so that Undo
// reverts both operations. Otherwise ClearRows starts a new pending round.
func (b *Board) ClearRows() int {
	if b.committed {
		b.save()
	}

	cleared := 0
	to := 0
	for from := 0; from < b.stats.maxHeight; from++ {
		if b.stats.rowFill[from] == b.width {
			cleared++
			continue
		}
		if to != from {
			for x := 0; x < b.width; x++ {
				b.grid[x][to] = b.grid[x][from]
			}
		}
		to++
	}

	for y := to; y < b.stats.maxHeight; y++ {
		for x := 0; x < b.width; x++ {
			b.grid[x][y] = false
		}
	}

	fresh := derive(b.grid, b.width, b.height)
	b.stats.copyFrom(&fresh)

	b.sanityCheck()
	return cleared
}
