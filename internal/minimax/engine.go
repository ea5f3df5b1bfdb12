// Package minimax picks the machine's move by exhaustive alpha-beta search.
//
// The search always runs to terminal positions and has no static evaluation,
// so it is only practical on boards up to 3x3. Recursion depth equals the
// number of empty cells.
package minimax

import (
	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
)

// ProgressFunc is called for every trial move; ply is 1 for the machine's candidate moves.
type ProgressFunc func(ply int, m Move)

type Option func(*Engine)

// WithProgress registers a callback invoked at each ply of the search.
func WithProgress(fn ProgressFunc) Option {
	return func(e *Engine) {
		e.progress = fn
	}
}

// Engine holds only the two sides. It keeps no board between calls and must
// have exclusive access to the board for the duration of a call.
type Engine struct {
	maxSide  board.Mark
	minSide  board.Mark
	progress ProgressFunc
}

func New(machine board.Mark, opts ...Option) *Engine {
	engine := &Engine{
		maxSide: machine,
		minSide: machine.Opponent(),
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

func (that *Engine) MachineSide() board.Mark {
	return that.maxSide
}

func (that *Engine) OpponentSide() board.Mark {
	return that.minSide
}

// SelectAndApplyMove commits the machine's move to the board. It reports
// false when the game is already decided or no cell is empty; the board is
// then unchanged.
func (that *Engine) SelectAndApplyMove(b *board.Board) bool {
	m, ok := that.SelectMove(b)
	if !ok {
		return false
	}

	return applyPermanent(b, m) == nil
}

// SelectMove searches for the machine's move without committing it.
//
// Ties keep the first move in row-major order. When every move loses the
// last legal move tried is returned, so the machine still moves.
func (that *Engine) SelectMove(b *board.Board) (Move, bool) {
	if b.Winner() != board.None {
		return Move{}, false
	}

	alpha, beta := Loss, Win
	bestOutcome := Loss

	var bestMove, lastMove Move
	var improved, tried bool

	for pos := 0; pos < b.Len(); pos++ {
		m := Move{Mark: that.maxSide, Pos: pos}

		outcome, ok := that.try(b, m, 1, func() Outcome {
			return that.minimizing(b, alpha, beta, 2)
		})
		if !ok {
			continue
		}

		lastMove, tried = m, true

		if outcome > bestOutcome {
			bestOutcome = outcome
			bestMove, improved = m, true
		}

		if bestOutcome >= beta {
			break
		}

		alpha = max(alpha, bestOutcome)
	}

	switch {
	case improved:
		return bestMove, true
	case tried:
		return lastMove, true
	default:
		return Move{}, false
	}
}

func (that *Engine) maximizing(b *board.Board, alpha, beta Outcome, ply int) Outcome {
	if outcome, done := that.terminal(b); done {
		return outcome
	}

	best := Loss

	for pos := 0; pos < b.Len(); pos++ {
		outcome, ok := that.try(b, Move{Mark: that.maxSide, Pos: pos}, ply, func() Outcome {
			return that.minimizing(b, alpha, beta, ply+1)
		})
		if !ok {
			continue
		}

		best = max(best, outcome)
		if best >= beta {
			break
		}

		alpha = max(alpha, best)
	}

	return best
}

func (that *Engine) minimizing(b *board.Board, alpha, beta Outcome, ply int) Outcome {
	if outcome, done := that.terminal(b); done {
		return outcome
	}

	best := Win

	for pos := 0; pos < b.Len(); pos++ {
		outcome, ok := that.try(b, Move{Mark: that.minSide, Pos: pos}, ply, func() Outcome {
			return that.maximizing(b, alpha, beta, ply+1)
		})
		if !ok {
			continue
		}

		best = min(best, outcome)
		if best <= alpha {
			break
		}

		beta = min(beta, best)
	}

	return best
}

// try plays m for the duration of eval. The move is taken back on every exit path.
func (that *Engine) try(b *board.Board, m Move, ply int, eval func() Outcome) (Outcome, bool) {
	t, ok := applyTemporary(b, m)
	if !ok {
		return Loss, false
	}
	defer t.release()

	if that.progress != nil {
		that.progress(ply, m)
	}

	return eval(), true
}

func (that *Engine) terminal(b *board.Board) (Outcome, bool) {
	switch b.Winner() {
	case that.maxSide:
		return Win, true
	case that.minSide:
		return Loss, true
	}

	if b.IsFull() {
		return Draw, true
	}

	return Loss, false
}
