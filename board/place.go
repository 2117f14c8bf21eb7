package board

// PlaceResult is the outcome of Place.
type PlaceResult int

const (
	// PlaceOK means every cell was applied and no row became full.
	PlaceOK PlaceResult = iota
	// PlaceRowFilled means every cell was applied and at least one row is now full.
	PlaceRowFilled
	// PlaceOutOfBounds means a cell fell outside the board. Cells before it were applied.
	PlaceOutOfBounds
	// PlaceCollision means a cell landed on a filled cell. Cells before it were applied.
	PlaceCollision
)

func (r PlaceResult) String() string {
	switch r {
	case PlaceOK:
		return "ok"
	case PlaceRowFilled:
		return "row-filled"
	case PlaceOutOfBounds:
		return "out-of-bounds"
	case PlaceCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// Ok reports whether the placement was fully applied.
func (r PlaceResult) Ok() bool {
	return r == PlaceOK || r == PlaceRowFilled
}

// Place adds the body of p to the grid with its origin at (x, y).
//
// The board must be committed; otherwise Place panics with ErrUncommitted.
// Placement stops at the first cell that is out of bounds or already filled and
// leaves the cells applied so far in the grid. The caller recovers the pre-place
// state with Undo.
func (b *Board) Place(p Piece, x, y int) PlaceResult {
	if !b.committed {
		panic(ErrUncommitted)
	}
	b.save()

	result := b.apply(p.Body(), x, y)
	b.sanityCheck()
	return result
}

func (b *Board) apply(body []Point, x, y int) PlaceResult {
	result := PlaceOK
	for _, offset := range body {
		cx, cy := x+offset.X, y+offset.Y
		if !b.inBounds(cx, cy) {
			return PlaceOutOfBounds
		}
		if b.grid[cx][cy] {
			return PlaceCollision
		}

		b.grid[cx][cy] = true
		b.stats.rowFill[cy]++
		if b.stats.rowFill[cy] == b.width {
			result = PlaceRowFilled
		}
		if cy+1 > b.stats.colHeight[cx] {
			b.stats.colHeight[cx] = cy + 1
			b.stats.maxHeight = max(b.stats.maxHeight, cy+1)
		}
	}
	return result
}
