package board

import "errors"

// ErrUncommitted is the panic value raised when Place is called while a previous
// mutation is still pending. Callers must Commit or Undo after every round.
var ErrUncommitted = errors.New("board: mutation while uncommitted; call Commit or Undo first")

// snapshot is the state restored by Undo.
type snapshot struct {
	grid  [][]bool
	stats stats
}

func newSnapshot(width, height int) snapshot {
	return snapshot{
		grid:  newGrid(width, height),
		stats: newStats(width, height),
	}
}

// save copies the live state into the snapshot and marks the board pending.
func (b *Board) save() {
	copyGrid(b.backup.grid, b.grid)
	b.backup.stats.copyFrom(&b.stats)
	b.committed = false
}

func copyGrid(dst, src [][]bool) {
	for x := range src {
		copy(dst[x], src[x])
	}
}

// Commit accepts the current state as the new baseline. The pending snapshot
// becomes stale and can no longer be restored.
func (b *Board) Commit() {
	b.committed = true
}

// Undo reverts the board to its state before the pending Place and/or
// ClearRows. It does nothing when the board is already committed, so a second
// consecutive Undo is harmless.
func (b *Board) Undo() {
	if b.committed {
		return
	}

	copyGrid(b.grid, b.backup.grid)
	b.stats.copyFrom(&b.backup.stats)
	b.committed = true

	b.sanityCheck()
}

// Probe runs one speculative round: p is placed at (x, y), fn inspects the
// board and the outcome, then the placement is undone. fn sees the board
// exactly as Place left it, including a partially applied body on a failed
// placement. fn may chain ClearRows but must not Commit or Undo itself.
func (b *Board) Probe(p Piece, x, y int, fn func(b *Board, result PlaceResult)) {
	result := b.Place(p, x, y)
	defer b.Undo()
	if fn != nil {
		fn(b, result)
	}
}
