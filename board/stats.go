package board

import (
	"fmt"
	"slices"
)

// stats are the caches kept in step with the grid.
type stats struct {
	rowFill   []int // rowFill[y]
	colHeight []int // colHeight[x]
	maxHeight int
}

func newStats(width, height int) stats {
	return stats{
		rowFill:   make([]int, height),
		colHeight: make([]int, width),
	}
}

// derive recomputes every cached statistic from the grid alone.
func derive(grid [][]bool, width, height int) stats {
	s := newStats(width, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if !grid[x][y] {
				continue
			}
			s.rowFill[y]++
			s.colHeight[x] = y + 1
		}
		s.maxHeight = max(s.maxHeight, s.colHeight[x])
	}
	return s
}

func (s *stats) copyFrom(other *stats) {
	copy(s.rowFill, other.rowFill)
	copy(s.colHeight, other.colHeight)
	s.maxHeight = other.maxHeight
}

func (s *stats) equal(other *stats) bool {
	return s.maxHeight == other.maxHeight &&
		slices.Equal(s.rowFill, other.rowFill) &&
		slices.Equal(s.colHeight, other.colHeight)
}

// ConsistencyError reports a cached statistic that no longer matches the grid.
// It is raised with panic: it always means the board itself is broken.
type ConsistencyError struct {
	Field string // "rowFill", "colHeight" or "maxHeight"
	Index int    // row or column; -1 for maxHeight
	Want  int    // value derived from the grid
	Got   int    // cached value
}

func (e *ConsistencyError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("board consistency check failed: %s is %d, grid says %d", e.Field, e.Got, e.Want)
	}
	return fmt.Sprintf("board consistency check failed: %s[%d] is %d, grid says %d", e.Field, e.Index, e.Got, e.Want)
}

// verify compares the caches against a full rescan of the grid and returns the
// first mismatch found, or nil.
func (b *Board) verify() *ConsistencyError {
	want := derive(b.grid, b.width, b.height)

	for y := range want.rowFill {
		if want.rowFill[y] != b.stats.rowFill[y] {
			return &ConsistencyError{Field: "rowFill", Index: y, Want: want.rowFill[y], Got: b.stats.rowFill[y]}
		}
	}
	for x := range want.colHeight {
		if want.colHeight[x] != b.stats.colHeight[x] {
			return &ConsistencyError{Field: "colHeight", Index: x, Want: want.colHeight[x], Got: b.stats.colHeight[x]}
		}
	}
	if want.maxHeight != b.stats.maxHeight {
		return &ConsistencyError{Field: "maxHeight", Index: -1, Want: want.maxHeight, Got: b.stats.maxHeight}
	}
	return nil
}

// sanityCheck panics when the caches disagree with the grid. It does nothing
// when the check was disabled with WithConsistencyCheck(false).
func (b *Board) sanityCheck() {
	if !b.checkConsistency {
		return
	}
	if err := b.verify(); err != nil {
		panic(err)
	}
}

// Stats is a point-in-time summary of a board, used by diagnostics.
type Stats struct {
	Width       int
	Height      int
	MaxHeight   int
	FilledCells int
	FullRows    int
	// Holes counts empty cells that lie below the height of their column.
	Holes   int
	Pending bool
}

// Stats collects a summary of the board by scanning the grid.
func (b *Board) Stats() Stats {
	st := Stats{
		Width:     b.width,
		Height:    b.height,
		MaxHeight: b.stats.maxHeight,
		Pending:   !b.committed,
	}

	for _, n := range b.stats.rowFill {
		st.FilledCells += n
		if n == b.width {
			st.FullRows++
		}
	}
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.stats.colHeight[x]; y++ {
			if !b.grid[x][y] {
				st.Holes++
			}
		}
	}

	return st
}
