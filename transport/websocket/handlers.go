package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nhooyr.io/websocket"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	gameStatusOpponentOut  = "opponent_out"
	payloadActionGameLeave = "game:leave"
	gameStatusLeave        = "leave"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleConnect")

	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(ctx, conn, msg.Action, "Player is required")
	}

	player, err := that.gameUseCase.GetOrCreatePlayer(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to create or get", "player", err)
		return that.sendErrorResponse(ctx, conn, msg.Action, "failed to create a new player")
	}

	that.register(player.ID, conn)

	if player.GameID != "" {
		return that.handleExistingGame(ctx, conn, msg, player)
	}

	if err = that.sendMessage(ctx, conn, msg.Action, Payload{Player: player}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected player", "playerID", player.ID)

	return nil
}

// handleExistingGame processes a player already in a game.
func (that *Server) handleExistingGame(ctx context.Context, conn *websocket.Conn, msg *Message, player *entity.Player) error {
	log := that.logger.With("method", "handleExistingGame")

	game, err := that.gameUseCase.GetGameByPlayerID(ctx, player.ID)
	if err != nil {
		log.Error("failed to get game", "gameID", player.GameID, "error", err)
		return that.sendErrorResponse(ctx, conn, msg.Action, "failed to get the game")
	}

	payload := Payload{
		Player: player,
		Game:   maskGameDetails(game),
	}

	return that.sendMessage(ctx, conn, msg.Action, payload)
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleNewGame")

	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(ctx, conn, msg.Action, "Player is required")
	}

	if payloadReq.Game == nil {
		log.Error("Game is missing in payload")
		return that.sendErrorResponse(ctx, conn, msg.Action, "Game is required")
	}

	that.register(payloadReq.Player.ID, conn)

	game, err := that.gameUseCase.GetOrCreateGame(ctx, payloadReq.Player.ID, payloadReq.Game.Type, payloadReq.Game.Size)
	if errors.Is(err, apperror.ErrInvalidBoardSize) {
		return that.sendErrorResponse(ctx, conn, msg.Action, fmt.Sprintf("size %d: %v", payloadReq.Game.Size, apperror.ErrInvalidBoardSize))
	}

	if err != nil {
		log.Error("failed to create or get", "error", err)
		return that.sendErrorResponse(ctx, conn, msg.Action, "failed to create a new game")
	}

	that.broadcast(ctx, msg.Action, game, "")

	log.Info("game is ready", "gameID", game.ID, "size", game.Size)

	return nil
}

func (that *Server) handleJoinGame(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleJoinGame")

	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(ctx, conn, msg.Action, "Player is required")
	}

	if payloadReq.Game == nil {
		log.Error("Game is missing in payload")
		return that.sendErrorResponse(ctx, conn, msg.Action, "Game is required")
	}

	that.register(payloadReq.Player.ID, conn)

	log = log.With("playerID", payloadReq.Player.ID)

	game, err := that.gameUseCase.JoinGame(ctx, payloadReq.Game.ID, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to join game", "error", err)
		return that.sendErrorResponse(ctx, conn, msg.Action, fmt.Sprintf("game %s: %v", payloadReq.Game.ID, err))
	}

	that.broadcast(ctx, msg.Action, game, "")

	log.Info("Player joined game", "gameID", game.ID)

	return nil
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleGameTurn")

	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(ctx, conn, msg.Action, "Player is required")
	}

	if payloadReq.Cell == nil {
		log.Error("Cell is missing in payload")
		return that.sendErrorResponse(ctx, conn, msg.Action, "Cell is required")
	}

	that.register(payloadReq.Player.ID, conn)

	log = log.With("playerID", payloadReq.Player.ID)

	game, err := that.gameUseCase.MakeTurn(ctx, payloadReq.Player.ID, *payloadReq.Cell)
	switch {
	case errors.Is(err, apperror.ErrGameFinished) && game != nil:
		that.broadcast(ctx, msg.Action, game, "")
		log.Info("Game finished", "gameID", game.ID, "winner", game.Winner)
		return nil
	case errors.Is(err, apperror.ErrGameIsNotStarted),
		errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrNotYourTurn):
		return that.sendErrorResponse(ctx, conn, msg.Action, fmt.Sprintf("cell %d: %v", *payloadReq.Cell, err))
	case err != nil:
		log.Error("failed to make turn", "error", err)
		return that.sendErrorResponse(ctx, conn, msg.Action, fmt.Sprintf("failed to turn in game %v", err))
	}

	that.broadcast(ctx, msg.Action, game, "")

	log.Info("Player made a turn", "gameID", game.ID)

	return nil
}

func (that *Server) handleGameLeave(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleGameLeave")

	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(ctx, conn, msg.Action, "Player is required")
	}

	that.register(payloadReq.Player.ID, conn)

	game, err := that.gameUseCase.GetGameByPlayerID(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to find game", "error", err)
		return that.sendErrorResponse(ctx, conn, msg.Action, "game doesn't exist")
	}

	if err = that.gameUseCase.EndGame(ctx, game); err != nil {
		log.Error("failed to end game", "error", err)
		return that.sendErrorResponse(ctx, conn, msg.Action, "game doesn't exist")
	}

	that.broadcast(ctx, payloadActionGameLeave, game, gameStatusLeave)

	log.Info("Player leaving", "gameID", game.ID)

	return nil
}

// broadcast sends the masked game to every connected human in it. A non-empty status overrides the game status.
func (that *Server) broadcast(ctx context.Context, action string, game *entity.Game, status string) {
	log := that.logger.With("method", "broadcast", "gameID", game.ID)

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		conn, ok := that.connection(player.ID)
		if !ok {
			log.Warn("connection not found for player", "playerID", player.ID)
			continue
		}

		payloadResp := Payload{
			Player: player,
			Game:   maskGameDetails(game),
		}

		if status != "" {
			payloadResp.Game.Status = status
		}

		if err := that.sendMessage(ctx, conn, action, payloadResp); err != nil {
			log.Error("failed to send game update", "playerID", player.ID, "error", err)
		}
	}
}

func (that *Server) handleDisconnect(conn *websocket.Conn) {
	log := that.logger.With("method", "handleDisconnect")

	that.connectionsMutex.Lock()
	var disconnectedPlayerID string
	for playerID, connection := range that.connections {
		if connection == conn {
			disconnectedPlayerID = playerID
			break
		}
	}

	if disconnectedPlayerID == "" {
		that.connectionsMutex.Unlock()
		return
	}

	delete(that.connections, disconnectedPlayerID)
	that.connectionsMutex.Unlock()

	log.Info("player disconnected", "playerID", disconnectedPlayerID)

	that.disconnectedMutex.Lock()
	that.disconnectedPlayers[disconnectedPlayerID] = time.Now()
	that.disconnectedMutex.Unlock()
}

func (that *Server) handleOpponentOut(ctx context.Context, playerID string) {
	log := that.logger.With("method", "handleOpponentOut")

	game, err := that.gameUseCase.GetGameByPlayerID(ctx, playerID)
	if errors.Is(err, apperror.ErrNoActiveGames) {
		return
	}

	if err != nil {
		log.Error("failed to get game by player ID", "playerID", playerID, "error", err)
		return
	}

	if game.IsFinished() {
		return
	}

	if err = that.gameUseCase.EndGame(ctx, game); err != nil {
		log.Error("failed to finish game", "gameID", game.ID, "error", err)
		return
	}

	for _, player := range game.Players {
		if player.ID == playerID || player.IsBot() {
			continue
		}

		opponentConn, ok := that.connection(player.ID)
		if !ok {
			log.Warn("opponent connection not found", "playerID", player.ID)
			continue
		}

		payloadResp := Payload{Game: maskGameDetails(game)}
		payloadResp.Game.Status = gameStatusOpponentOut

		if err = that.sendMessage(ctx, opponentConn, payloadActionGameLeave, payloadResp); err != nil {
			log.Error("failed to send game:leave message", "playerID", player.ID, "error", err)
		}
	}

	log.Info("handled opponent out", "gameID", game.ID)
}

func (that *Server) playerReconnected(playerID string) {
	that.disconnectedMutex.Lock()
	defer that.disconnectedMutex.Unlock()
	delete(that.disconnectedPlayers, playerID)
}
