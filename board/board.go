// Package board implements a Tetris playing surface: a fixed-size grid of
// filled cells with cached row and column statistics and a single-level
// commit/undo protocol for speculative moves.
//
// Coordinates start at the bottom-left corner: x grows to the right and y grows
// upward. A Board is not safe for concurrent use; one controller owns it for the
// duration of a round.
package board

// Point is a cell offset or an absolute cell position.
type Point struct {
	X, Y int
}

// Piece is the read-only shape descriptor consumed by the board.
type Piece interface {
	// Body returns the occupied cells relative to the piece's lower-left corner.
	Body() []Point
	// Width returns the number of columns spanned by the body.
	Width() int
	// Skirt returns, for each column of the body, the lowest occupied y offset.
	Skirt() []int
}

// Board is a width x height grid of cells plus incrementally maintained
// statistics derived from it.
type Board struct {
	width  int
	height int

	grid  [][]bool // grid[x][y]
	stats stats

	committed bool
	backup    snapshot

	checkConsistency bool
}

// Option configures a Board at construction time.
type Option func(*Board)

// WithConsistencyCheck toggles the full-scan verification that runs after every
// mutation. It is on by default.
func WithConsistencyCheck(enabled bool) Option {
	return func(b *Board) {
		b.checkConsistency = enabled
	}
}

// New creates an empty, committed board of the given size in cells.
func New(width, height int, opts ...Option) *Board {
	if width <= 0 || height <= 0 {
		panic("board dimensions must be positive")
	}

	b := &Board{
		width:            width,
		height:           height,
		grid:             newGrid(width, height),
		stats:            newStats(width, height),
		committed:        true,
		backup:           newSnapshot(width, height),
		checkConsistency: true,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

func newGrid(width, height int) [][]bool {
	cells := make([]bool, width*height)
	grid := make([][]bool, width)
	for x := range grid {
		grid[x] = cells[x*height : (x+1)*height : (x+1)*height]
	}
	return grid
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// MaxHeight returns the tallest column height, 0 for an empty board.
func (b *Board) MaxHeight() int {
	return b.stats.maxHeight
}

// ColumnHeight returns one plus the y of the highest filled cell in column x,
// or 0 when the column is empty.
func (b *Board) ColumnHeight(x int) int {
	return b.stats.colHeight[x]
}

// RowWidth returns the number of filled cells in row y.
func (b *Board) RowWidth(y int) int {
	return b.stats.rowFill[y]
}

// Filled reports whether the cell at (x, y) is filled. Cells outside the board
// are always filled so the edges behave as walls.
func (b *Board) Filled(x, y int) bool {
	if !b.inBounds(x, y) {
		return true
	}
	return b.grid[x][y]
}

// Committed reports whether no mutation is pending.
func (b *Board) Committed() bool {
	return b.committed
}

// DropHeight returns the y at which p comes to rest when dropped straight down
// with its left edge at column x, which must leave the piece inside the board
// horizontally. It reads column heights only, so holes under overhangs are
// never considered reachable.
func (b *Board) DropHeight(p Piece, x int) int {
	skirt := p.Skirt()
	drop := 0
	for i := 0; i < p.Width(); i++ {
		drop = max(drop, b.stats.colHeight[x+i]-skirt[i])
	}
	return drop
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}
