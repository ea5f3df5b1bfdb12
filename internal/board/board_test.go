package board

import (
	"errors"
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for size := MinSize; size <= 6; size++ {
		// When: a board is constructed
		b := New(size)

		// Then: it has size² empty cells and is not full
		require.Equal(t, size, b.Size())
		require.Equal(t, size*size, b.Len())
		for pos := 0; pos < b.Len(); pos++ {
			assert.Equal(t, None, b.Get(pos))
		}
		assert.False(t, b.IsFull())
		assert.Equal(t, None, b.Winner())
	}
}

func TestBoard_Set(t *testing.T) {
	t.Run("Marks an empty cell", func(t *testing.T) {
		// Given: an empty board
		b := New(3)

		// When: Cross is placed in the centre
		err := b.Set(b.Index(1, 1), Cross)

		// Then: only the centre holds Cross
		require.NoError(t, err)
		for pos := 0; pos < b.Len(); pos++ {
			if pos == 4 {
				assert.Equal(t, Cross, b.Get(pos))
				continue
			}
			assert.Equal(t, None, b.Get(pos))
		}
	})

	t.Run("Reports the occupying mark and leaves the board unchanged", func(t *testing.T) {
		// Given: a board with Nought at (0, 2)
		b := New(3)
		require.NoError(t, b.Set(b.Index(0, 2), Nought))
		before := b.Cells()

		for _, mark := range []Mark{Cross, Nought} {
			// When: the same cell is marked again
			err := b.Set(b.Index(0, 2), mark)

			// Then: the error carries the mark already there
			var occupied *OccupiedError
			require.ErrorAs(t, err, &occupied)
			assert.Equal(t, Nought, occupied.Mark)
			assert.Equal(t, 2, occupied.Pos)
			assert.True(t, errors.Is(err, apperror.ErrCellOccupied))

			// And: the board is untouched
			assert.Equal(t, before, b.Cells())
		}
	})
}

func TestBoard_Unset(t *testing.T) {
	// Given: a board with two marks
	b := New(3)
	require.NoError(t, b.Set(4, Cross))
	require.NoError(t, b.Set(2, Nought))

	// When: both are cleared, one of them twice
	b.Unset(4)
	b.Unset(2)
	b.Unset(2)

	// Then: the board is empty again and the cells accept new marks
	assert.Equal(t, New(3).Cells(), b.Cells())
	require.NoError(t, b.Set(4, Nought))
}

func TestBoard_Clear(t *testing.T) {
	// Given: a board with some marks
	b := New(3)
	require.NoError(t, b.Set(4, Cross))
	require.NoError(t, b.Set(2, Nought))

	// When: the board is cleared
	b.Clear()

	// Then: every cell is empty
	assert.Equal(t, New(3).Cells(), b.Cells())
}

func TestBoard_IsFull(t *testing.T) {
	// Given: an empty board
	b := New(3)
	assert.False(t, b.IsFull())

	// When: it is filled one cell at a time
	for pos := 0; pos < b.Len(); pos++ {
		assert.False(t, b.IsFull())
		mark := Cross
		if pos%2 == 1 {
			mark = Nought
		}
		require.NoError(t, b.Set(pos, mark))
	}

	// Then: it reports full only at the end
	assert.True(t, b.IsFull())
}

func TestBoard_Winner(t *testing.T) {
	type cell struct{ row, col int }

	tests := []struct {
		name  string
		size  int
		mark  Mark
		cells []cell
		want  Mark
	}{
		{name: "no line", size: 3, mark: Cross, cells: []cell{{1, 1}, {0, 2}}, want: None},
		{name: "top row", size: 3, mark: Cross, cells: []cell{{0, 0}, {0, 1}, {0, 2}}, want: Cross},
		{name: "bottom row", size: 3, mark: Nought, cells: []cell{{2, 0}, {2, 1}, {2, 2}}, want: Nought},
		{name: "first column", size: 3, mark: Nought, cells: []cell{{0, 0}, {1, 0}, {2, 0}}, want: Nought},
		{name: "last column", size: 3, mark: Cross, cells: []cell{{0, 2}, {1, 2}, {2, 2}}, want: Cross},
		{name: "main diagonal", size: 3, mark: Cross, cells: []cell{{0, 0}, {1, 1}, {2, 2}}, want: Cross},
		{name: "anti diagonal", size: 3, mark: Nought, cells: []cell{{0, 2}, {1, 1}, {2, 0}}, want: Nought},
		{name: "broken diagonal", size: 3, mark: Nought, cells: []cell{{0, 2}, {1, 1}, {2, 2}}, want: None},
		{name: "4x4 column", size: 4, mark: Cross, cells: []cell{{0, 3}, {1, 3}, {2, 3}, {3, 3}}, want: Cross},
		{name: "4x4 anti diagonal", size: 4, mark: Nought, cells: []cell{{0, 3}, {1, 2}, {2, 1}, {3, 0}}, want: Nought},
		{name: "4x4 three in a row is not enough", size: 4, mark: Cross, cells: []cell{{1, 0}, {1, 1}, {1, 2}}, want: None},
		{name: "2x2 anti diagonal", size: 2, mark: Cross, cells: []cell{{0, 1}, {1, 0}}, want: Cross},
		{name: "wrapped row is not a line", size: 3, mark: Cross, cells: []cell{{0, 2}, {1, 0}, {1, 1}}, want: None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board with the listed cells marked
			b := New(tt.size)
			for _, c := range tt.cells {
				require.NoError(t, b.Set(b.Index(c.row, c.col), tt.mark))
			}

			// When: the winner is determined
			got := b.Winner()

			// Then: it matches the expectation
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBoard_Winner_OtherMarkDoesNotCount(t *testing.T) {
	// Given: a row mixing both marks
	b := New(3)
	require.NoError(t, b.Set(0, Cross))
	require.NoError(t, b.Set(1, Nought))
	require.NoError(t, b.Set(2, Cross))

	// Then: there is no winner
	assert.Equal(t, None, b.Winner())
}

func TestFromCells(t *testing.T) {
	t.Run("Rebuilds a snapshot", func(t *testing.T) {
		// Given: a snapshot of a 2x2 board
		cells := []Mark{Cross, None, None, Nought}

		// When: it is rebuilt
		b, err := FromCells(2, cells)

		// Then: the board matches and does not share memory with the snapshot
		require.NoError(t, err)
		assert.Equal(t, cells, b.Cells())
		cells[1] = Cross
		assert.Equal(t, None, b.Get(1))
	})

	t.Run("Rejects mismatched sizes", func(t *testing.T) {
		_, err := FromCells(3, make([]Mark, 4))
		require.ErrorIs(t, err, apperror.ErrInvalidBoardSize)

		_, err = FromCells(1, make([]Mark, 1))
		require.ErrorIs(t, err, apperror.ErrInvalidBoardSize)
	})
}

func TestBoard_Coords(t *testing.T) {
	b := New(4)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r, c := b.Coords(b.Index(row, col))
			assert.Equal(t, row, r)
			assert.Equal(t, col, c)
		}
	}
	assert.False(t, b.InRange(-1))
	assert.False(t, b.InRange(16))
	assert.True(t, b.InRange(15))
}

func TestBoard_Clone(t *testing.T) {
	// Given: a board with a mark
	b := New(3)
	require.NoError(t, b.Set(0, Cross))

	// When: it is cloned and the clone is changed
	clone := b.Clone()
	require.NoError(t, clone.Set(1, Nought))

	// Then: the original is untouched
	assert.Equal(t, None, b.Get(1))
	assert.Equal(t, Cross, clone.Get(0))
}

func TestBoard_String(t *testing.T) {
	b := New(2)
	require.NoError(t, b.Set(0, Cross))
	require.NoError(t, b.Set(3, Nought))

	assert.Equal(t, "X| \n |O\n", b.String())
}

func TestParseMark(t *testing.T) {
	mark, err := ParseMark("x")
	require.NoError(t, err)
	assert.Equal(t, Cross, mark)

	mark, err = ParseMark(" O ")
	require.NoError(t, err)
	assert.Equal(t, Nought, mark)

	_, err = ParseMark("Z")
	require.ErrorIs(t, err, apperror.ErrInvalidMark)

	assert.Equal(t, Nought, Cross.Opponent())
	assert.Equal(t, Cross, Nought.Opponent())
	assert.Equal(t, None, None.Opponent())
}
