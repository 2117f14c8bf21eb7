// Package piece provides falling-piece shapes for the board package.
package piece

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/plus3/tetrisboard/board"
)

// ErrInvalid is wrapped by every error returned from New and Parse.
var ErrInvalid = errors.New("invalid piece")

// Piece is an immutable shape: a set of cells relative to the lower-left corner
// of its bounding box. It satisfies board.Piece.
type Piece struct {
	body   []board.Point
	width  int
	height int
	skirt  []int

	// next is the counter-clockwise rotation within a ring built by Ring.
	next *Piece
}

// New builds a piece from cell offsets. The body is shifted so its bounding box
// starts at (0, 0); the order of the cells is preserved. Every column of the
// bounding box must contain at least one cell.
func New(body ...board.Point) (*Piece, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrInvalid)
	}

	minX, minY := body[0].X, body[0].Y
	for _, pt := range body[1:] {
		minX = min(minX, pt.X)
		minY = min(minY, pt.Y)
	}

	p := &Piece{body: make([]board.Point, len(body))}
	seen := make(map[board.Point]bool, len(body))
	for i, pt := range body {
		pt = board.Point{X: pt.X - minX, Y: pt.Y - minY}
		if seen[pt] {
			return nil, fmt.Errorf("%w: duplicate cell (%d,%d)", ErrInvalid, pt.X, pt.Y)
		}
		seen[pt] = true
		p.body[i] = pt
		p.width = max(p.width, pt.X+1)
		p.height = max(p.height, pt.Y+1)
	}

	p.skirt = make([]int, p.width)
	for x := range p.skirt {
		p.skirt[x] = -1
	}
	for _, pt := range p.body {
		if p.skirt[pt.X] < 0 || pt.Y < p.skirt[pt.X] {
			p.skirt[pt.X] = pt.Y
		}
	}
	for x, s := range p.skirt {
		if s < 0 {
			return nil, fmt.Errorf("%w: column %d is empty", ErrInvalid, x)
		}
	}

	return p, nil
}

// Parse reads a piece from whitespace-separated x y pairs, e.g. "0 0 1 0 1 1".
func Parse(s string) (*Piece, error) {
	fields := strings.Fields(s)
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of coordinates in %q", ErrInvalid, s)
	}

	body := make([]board.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		y, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		body = append(body, board.Point{X: x, Y: y})
	}

	return New(body...)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *Piece {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Body returns the occupied offsets. The slice must not be modified.
func (p *Piece) Body() []board.Point {
	return p.body
}

// Width returns the number of columns of the bounding box.
func (p *Piece) Width() int {
	return p.width
}

// Height returns the number of rows of the bounding box.
func (p *Piece) Height() int {
	return p.height
}

// Skirt returns the lowest occupied y for each column. The slice must not be
// modified.
func (p *Piece) Skirt() []int {
	return p.skirt
}

// Rotate returns the piece turned 90 degrees counter-clockwise.
func (p *Piece) Rotate() *Piece {
	body := make([]board.Point, len(p.body))
	for i, pt := range p.body {
		body[i] = board.Point{X: p.height - 1 - pt.Y, Y: pt.X}
	}

	rotated, err := New(body...)
	if err != nil {
		// A rotation of a valid piece is always valid.
		panic(err)
	}
	return rotated
}

// FastRotation returns the next counter-clockwise rotation from the piece's
// ring without allocating. Pieces that are not part of a ring fall back to
// Rotate.
func (p *Piece) FastRotation() *Piece {
	if p.next == nil {
		return p.Rotate()
	}
	return p.next
}

// Equal reports whether both pieces occupy the same cells, regardless of the
// order of their bodies.
func (p *Piece) Equal(other *Piece) bool {
	if p == other {
		return true
	}
	if other == nil || len(p.body) != len(other.body) {
		return false
	}
	return slices.Equal(sortedBody(p.body), sortedBody(other.body))
}

func sortedBody(body []board.Point) []board.Point {
	sorted := slices.Clone(body)
	slices.SortFunc(sorted, func(a, b board.Point) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})
	return sorted
}

// String returns the body in the format accepted by Parse.
func (p *Piece) String() string {
	parts := make([]string, 0, 2*len(p.body))
	for _, pt := range p.body {
		parts = append(parts, strconv.Itoa(pt.X), strconv.Itoa(pt.Y))
	}
	return strings.Join(parts, " ")
}
