package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger,
	}
}

// MakeTurn lets the search engine play the bot's mark on the game.
func (that *botService) MakeTurn(game *entity.Game) error {
	log := that.logger.With("method", "botMakeTurn", "gameID", game.ID)

	botPlayer := game.GetBot()
	if botPlayer == nil {
		return ErrBotNotFound
	}

	botMark, err := board.ParseMark(botPlayer.Mark)
	if err != nil {
		return fmt.Errorf("bot has no valid mark: %w", err)
	}

	position, err := game.ToBoard()
	if err != nil {
		return fmt.Errorf("failed to read board: %w", err)
	}

	var nodes int
	engine := minimax.New(botMark, minimax.WithProgress(func(int, minimax.Move) {
		nodes++
	}))

	move, ok := engine.SelectMove(position)
	if !ok {
		return apperror.ErrNoAvailableMoves
	}

	if err = game.MakeTurn(botPlayer.Mark, move.Pos); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	row, col := position.Coords(move.Pos)
	log.Debug("bot made turn", "cell", move.Pos, "row", row, "col", col, "nodes", nodes)

	return nil
}
