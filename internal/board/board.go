package board

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const MinSize = 2

// OccupiedError is returned by Set when the target cell already holds a mark.
type OccupiedError struct {
	Pos  int
	Mark Mark
}

func (that *OccupiedError) Error() string {
	return fmt.Sprintf("cell %d is already occupied by %s", that.Pos, that.Mark)
}

func (that *OccupiedError) Unwrap() error {
	return apperror.ErrCellOccupied
}

// Board is a square grid stored row-major: pos = row*size + col.
type Board struct {
	size  int
	cells []Mark
}

// New returns an empty size×size board. The caller guarantees size >= MinSize.
func New(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]Mark, size*size),
	}
}

// FromCells rebuilds a board from a row-major snapshot.
func FromCells(size int, cells []Mark) (*Board, error) {
	if size < MinSize || len(cells) != size*size {
		return nil, fmt.Errorf("%w: size %d with %d cells", apperror.ErrInvalidBoardSize, size, len(cells))
	}

	b := New(size)
	copy(b.cells, cells)

	return b, nil
}

func (that *Board) Size() int {
	return that.size
}

// Len is the number of cells.
func (that *Board) Len() int {
	return len(that.cells)
}

func (that *Board) Index(row, col int) int {
	return row*that.size + col
}

func (that *Board) Coords(pos int) (int, int) {
	return pos / that.size, pos % that.size
}

func (that *Board) InRange(pos int) bool {
	return pos >= 0 && pos < len(that.cells)
}

func (that *Board) Get(pos int) Mark {
	return that.cells[pos]
}

// Set puts mark into an empty cell. An occupied cell is left untouched and
// the mark already there is reported through *OccupiedError.
func (that *Board) Set(pos int, mark Mark) error {
	if existing := that.cells[pos]; existing != None {
		return &OccupiedError{Pos: pos, Mark: existing}
	}

	that.cells[pos] = mark

	return nil
}

// Unset clears a cell whatever it holds. Only the search uses it to take back trial moves.
func (that *Board) Unset(pos int) {
	that.cells[pos] = None
}

func (that *Board) Clear() {
	for i := range that.cells {
		that.cells[i] = None
	}
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == None {
			return false
		}
	}

	return true
}

// Winner returns the mark filling a whole row, column or one of the two main diagonals.
func (that *Board) Winner() Mark {
	size := that.size

	for i := 0; i < size; i++ {
		if w := that.line(i*size, 1); w != None {
			return w
		}
		if w := that.line(i, size); w != None {
			return w
		}
	}

	if w := that.line(0, size+1); w != None {
		return w
	}

	return that.line(size-1, size-1)
}

// line checks size cells starting at start and advancing by step.
func (that *Board) line(start, step int) Mark {
	first := that.cells[start]
	if first == None {
		return None
	}

	for i, pos := 1, start+step; i < that.size; i, pos = i+1, pos+step {
		if that.cells[pos] != first {
			return None
		}
	}

	return first
}

func (that *Board) Clone() *Board {
	clone := New(that.size)
	copy(clone.cells, that.cells)

	return clone
}

// Cells returns a copy of the row-major cell slice.
func (that *Board) Cells() []Mark {
	cells := make([]Mark, len(that.cells))
	copy(cells, that.cells)

	return cells
}

func (that *Board) String() string {
	var sb strings.Builder

	for row := 0; row < that.size; row++ {
		for col := 0; col < that.size; col++ {
			if col > 0 {
				sb.WriteByte('|')
			}

			mark := that.cells[that.Index(row, col)]
			if mark == None {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(mark.String())
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
