package board_test

import (
	"testing"

	"github.com/plus3/tetrisboard/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	b := board.New(3, 2)
	b.Place(dot, 0, 0)
	b.Commit()
	b.Place(dot, 2, 1)

	assert.Equal(t, "|  +|\n|+  |\n-----", b.String())
}

func TestParseRoundTrip(t *testing.T) {
	dump := `|      |
|  ++  |
| +++ +|
|++++ +|
--------`

	b, err := board.Parse(dump)
	require.NoError(t, err)

	assert.Equal(t, 6, b.Width())
	assert.Equal(t, 4, b.Height())
	assert.Equal(t, 3, b.MaxHeight())
	assert.Equal(t, []int{1, 2, 3, 3, 0, 2}, []int{
		b.ColumnHeight(0), b.ColumnHeight(1), b.ColumnHeight(2),
		b.ColumnHeight(3), b.ColumnHeight(4), b.ColumnHeight(5),
	})
	assert.True(t, b.Committed())
	assert.Equal(t, dump, b.String())
	assertConsistent(t, b)
}

func TestParseWithoutFloor(t *testing.T) {
	b, err := board.Parse("| +|\n|+ |\n")
	require.NoError(t, err)
	assert.True(t, b.Filled(0, 0))
	assert.True(t, b.Filled(1, 1))
	assert.False(t, b.Filled(1, 0))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		dump string
	}{
		{"empty", ""},
		{"only floor", "----"},
		{"no cells", "||\n----"},
		{"ragged", "|  |\n| |\n----"},
		{"missing wall", "|  |\n   |\n----"},
		{"bad cell", "|  |\n|x |\n----"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := board.Parse(tt.dump)
			assert.ErrorIs(t, err, board.ErrMalformed)
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := board.New(4, 6)
	b.Place(square, 0, 0)

	c := b.Clone()
	assert.True(t, c.Committed())
	assert.True(t, c.Equal(b))

	c.Place(dot, 3, 0)
	assert.False(t, c.Equal(b))
	assert.False(t, b.Filled(3, 0))

	b.Undo()
	assert.Equal(t, 2, c.MaxHeight())
}

func TestEqualDifferentSizes(t *testing.T) {
	assert.False(t, board.New(4, 6).Equal(board.New(6, 4)))
	assert.True(t, board.New(4, 6).Equal(board.New(4, 6)))
}

func TestReset(t *testing.T) {
	b := board.New(4, 6)
	b.Place(square, 1, 0)
	b.Commit()
	b.Place(dot, 0, 0)

	b.Reset()
	assert.True(t, b.Committed())
	assert.True(t, b.Equal(board.New(4, 6)))

	b.Undo()
	assert.Equal(t, 0, b.MaxHeight())
}
