package board

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Mark is the symbol a player puts into a cell. None is the content of an empty cell.
type Mark uint8

const (
	None Mark = iota
	Cross
	Nought
)

// Opponent returns the other player's mark. None has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case Cross:
		return Nought
	case Nought:
		return Cross
	default:
		return None
	}
}

func (that Mark) String() string {
	switch that {
	case Cross:
		return "X"
	case Nought:
		return "O"
	default:
		return ""
	}
}

// ParseMark accepts "X" or "O" in either case.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return Cross, nil
	case "O":
		return Nought, nil
	default:
		return None, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, s)
	}
}
