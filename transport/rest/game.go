package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
)

type gameGetter interface {
	GetGameByID(ctx context.Context, gameID string) (*entity.Game, error)
}

type GameHandler interface {
	GetGame(w http.ResponseWriter, r *http.Request)
}

type gameHandler struct {
	logger *slog.Logger
	games  gameGetter
}

func NewGameHandler(logger *slog.Logger, games gameGetter) GameHandler {
	return &gameHandler{
		logger: logger,
		games:  games,
	}
}

// GetGame answers GET /game?id=<id> with the public view of a stored game.
func (that *gameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "GetGame")

	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	gameID := r.URL.Query().Get("id")
	if gameID == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	game, err := that.games.GetGameByID(r.Context(), gameID)
	if errors.Is(err, repository.ErrGameNotFound) {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	if err != nil {
		log.Error("failed to get game", "gameID", gameID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view := *game
	view.Players = nil

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(&view); err != nil {
		log.Error("failed to encode game", "error", err)
	}
}
