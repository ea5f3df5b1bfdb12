package entity

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

const (
	PrivateType = "private"
	WithBotType = "bot"
)

// Game is the persisted state of one round. Board is row-major with Size*Size cells.
type Game struct {
	ID      string    `json:"id"`
	Size    int       `json:"size"`
	Board   []string  `json:"board"`
	Winner  string    `json:"winner"`
	Status  string    `json:"status"`
	Turn    string    `json:"player_turn"`
	Players []*Player `json:"players,omitempty"`
	Type    string    `json:"type,omitempty"`
}

func NewGame(id, gameType string, size int) *Game {
	return &Game{
		ID:     id,
		Size:   size,
		Board:  make([]string, size*size),
		Turn:   PlayerX,
		Status: StatusWaiting,
		Type:   gameType,
	}
}

// ToBoard converts the persisted cells into a board.Board.
func (that *Game) ToBoard() (*board.Board, error) {
	cells := make([]board.Mark, len(that.Board))
	for i, cell := range that.Board {
		if cell == EmptyCell {
			continue
		}

		mark, err := board.ParseMark(cell)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		cells[i] = mark
	}

	b, err := board.FromCells(that.Size, cells)
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", that.ID, err)
	}

	return b, nil
}

// DetermineGameResult returns the winning mark, PlayerTie for a full board, or "" while the game goes on.
func (that *Game) DetermineGameResult() (string, error) {
	b, err := that.ToBoard()
	if err != nil {
		return "", err
	}

	if winner := b.Winner(); winner != board.None {
		return winner.String(), nil
	}

	// the game will continue until all the squares are full
	if !b.IsFull() {
		return "", nil
	}

	return PlayerTie, nil
}

// UpdateGameState leaves the game untouched when the stored board cannot be read.
func (that *Game) UpdateGameState() error {
	winner, err := that.DetermineGameResult()
	if err != nil {
		return fmt.Errorf("failed to determine game result: %w", err)
	}

	switch winner {
	// one player wins
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = ""
	// tie
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	// game continue
	default:
		that.Status = StatusOngoing
	}

	return nil
}

func (that *Game) MakeTurn(playerMark string, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	b, err := that.ToBoard()
	if err != nil {
		return fmt.Errorf("failed to read board: %w", err)
	}

	if !b.InRange(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if b.Get(cell) != board.None {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = playerMark

	// It's simple logic for a game changing move
	if that.Turn == PlayerX {
		that.Turn = PlayerO
	} else {
		that.Turn = PlayerX
	}

	return that.UpdateGameState()
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

// GetBot returns the engine-controlled player, or nil in a game between humans.
func (that *Game) GetBot() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

func (that *Game) GetRandomMarks() (string, string) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return PlayerX, PlayerO
	}
	return PlayerO, PlayerX
}
