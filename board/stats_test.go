package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cells []Point

func (c cells) Body() []Point { return c }
func (c cells) Width() int    { return 1 }
func (c cells) Skirt() []int  { return []int{0} }

func TestDeriveMatchesIncrementalUpdates(t *testing.T) {
	b := New(3, 4)
	b.Place(cells{{0, 0}, {0, 1}, {0, 3}}, 0, 0)

	got := derive(b.grid, b.width, b.height)
	assert.True(t, got.equal(&b.stats))
	assert.Equal(t, []int{1, 1, 0, 1}, got.rowFill)
	assert.Equal(t, []int{4, 0, 0}, got.colHeight)
	assert.Equal(t, 4, got.maxHeight)
}

func TestSanityCheckCatchesCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(b *Board)
		want    ConsistencyError
	}{
		{
			name:    "row fill",
			corrupt: func(b *Board) { b.stats.rowFill[2] = 1 },
			want:    ConsistencyError{Field: "rowFill", Index: 2, Want: 0, Got: 1},
		},
		{
			name:    "column height",
			corrupt: func(b *Board) { b.stats.colHeight[2] = 3 },
			want:    ConsistencyError{Field: "colHeight", Index: 2, Want: 0, Got: 3},
		},
		{
			name:    "max height",
			corrupt: func(b *Board) { b.stats.maxHeight = 3 },
			want:    ConsistencyError{Field: "maxHeight", Index: -1, Want: 1, Got: 3},
		},
		{
			name:    "grid",
			corrupt: func(b *Board) { b.grid[2][0] = true },
			want:    ConsistencyError{Field: "rowFill", Index: 0, Want: 3, Got: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(3, 4)
			b.Place(cells{{0, 0}}, 0, 0)
			b.Commit()
			tt.corrupt(b)

			defer func() {
				r := recover()
				require.NotNil(t, r, "expected a panic")
				err, ok := r.(*ConsistencyError)
				require.True(t, ok, "panic value %T", r)
				assert.Equal(t, tt.want, *err)
				assert.Contains(t, err.Error(), tt.want.Field)
			}()
			b.Place(cells{{0, 0}}, 1, 0)
		})
	}
}

func TestUndoVerifiesRestoredState(t *testing.T) {
	b := New(3, 4)
	b.Place(cells{{1, 0}}, 0, 0)
	b.backup.stats.maxHeight = 3

	assert.Panics(t, b.Undo)
}

func TestConsistencyCheckDisabled(t *testing.T) {
	b := New(3, 4, WithConsistencyCheck(false))
	b.stats.rowFill[0] = 2

	assert.NotPanics(t, func() {
		b.Place(cells{{0, 1}}, 0, 0)
	})
	assert.NotNil(t, b.verify())
}
