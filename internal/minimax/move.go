package minimax

import (
	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
)

// Move pairs a mark with the row-major cell it goes to.
type Move struct {
	Mark board.Mark
	Pos  int
}

// trial is a move that stays on the board only until release is called.
type trial struct {
	board *board.Board
	move  Move
}

// applyTemporary places the move and returns the guard that takes it back.
// It reports false when the cell is occupied.
func applyTemporary(b *board.Board, m Move) (*trial, bool) {
	if err := b.Set(m.Pos, m.Mark); err != nil {
		return nil, false
	}

	return &trial{board: b, move: m}, true
}

func (that *trial) release() {
	that.board.Unset(that.move.Pos)
}

// applyPermanent places the move for good.
func applyPermanent(b *board.Board, m Move) error {
	return b.Set(m.Pos, m.Mark)
}
