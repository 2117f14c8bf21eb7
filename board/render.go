package board

import (
	"errors"
	"fmt"
	"strings"
)

const (
	filledCell = '+'
	emptyCell  = ' '
	wallCell   = '|'
	floorCell  = '-'
)

// ErrMalformed is wrapped by every error returned from Parse.
var ErrMalformed = errors.New("malformed board dump")

// String renders the grid top row first, with filled cells as '+' between '|'
// walls and a dashed floor. The format is for diagnostics only.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 3) * (b.height + 1))

	for y := b.height - 1; y >= 0; y-- {
		sb.WriteByte(wallCell)
		for x := 0; x < b.width; x++ {
			if b.grid[x][y] {
				sb.WriteByte(filledCell)
			} else {
				sb.WriteByte(emptyCell)
			}
		}
		sb.WriteByte(wallCell)
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Repeat(string(floorCell), b.width+2))

	return sb.String()
}

// Parse builds a committed board from the output of String. The floor line is
// optional and a trailing newline is ignored.
func Parse(dump string, opts ...Option) (*Board, error) {
	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")
	if n := len(lines); n > 0 && strings.Trim(lines[n-1], string(floorCell)) == "" && lines[n-1] != "" {
		lines = lines[:n-1]
	}
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("%w: no rows", ErrMalformed)
	}

	width := len(lines[0]) - 2
	height := len(lines)
	if width <= 0 {
		return nil, fmt.Errorf("%w: row 0 has no cells", ErrMalformed)
	}

	b := New(width, height, opts...)
	for i, line := range lines {
		y := height - 1 - i
		if len(line) != width+2 {
			return nil, fmt.Errorf("%w: line %d is %d wide, want %d", ErrMalformed, i, len(line), width+2)
		}
		if line[0] != wallCell || line[len(line)-1] != wallCell {
			return nil, fmt.Errorf("%w: line %d is missing a wall", ErrMalformed, i)
		}
		for x := 0; x < width; x++ {
			switch line[x+1] {
			case filledCell:
				b.grid[x][y] = true
			case emptyCell:
			default:
				return nil, fmt.Errorf("%w: line %d has unexpected %q at column %d", ErrMalformed, i, line[x+1], x)
			}
		}
	}

	b.stats = derive(b.grid, b.width, b.height)
	return b, nil
}
