package console

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
)

// render prints the board the same way board.String does, with the marks coloured.
func (that *Console) render() {
	var sb strings.Builder

	size := that.board.Size()
	for row := range size {
		for col := range size {
			if col > 0 {
				sb.WriteByte('|')
			}

			sb.WriteString(that.mark(that.board.Get(that.board.Index(row, col))))
		}

		sb.WriteByte('\n')
	}

	_, _ = that.out.WriteString(sb.String())
}

func (that *Console) mark(m board.Mark) string {
	switch m {
	case board.Cross:
		return that.out.String(m.String()).Foreground(that.out.Color("12")).Bold().String()
	case board.Nought:
		return that.out.String(m.String()).Foreground(that.out.Color("11")).Bold().String()
	default:
		return " "
	}
}
