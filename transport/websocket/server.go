package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"nhooyr.io/websocket"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	reconnectTimeout = 30 * time.Second
	shutdownTimeout  = 5 * time.Second
)

type gameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	GetOrCreateGame(ctx context.Context, playerID, gameType string, size int) (*entity.Game, error)
	GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	EndGame(ctx context.Context, game *entity.Game) error

	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
}

type handlerFunc func(ctx context.Context, msg *Message, conn *websocket.Conn) error

type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase

	handlers map[string]handlerFunc

	connectionsMutex sync.RWMutex
	connections      map[string]*websocket.Conn

	disconnectedMutex   sync.Mutex
	disconnectedPlayers map[string]time.Time
}

func New(logger *slog.Logger, gameUseCase gameUseCase) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameUseCase: gameUseCase,

		handlers:            make(map[string]handlerFunc),
		connections:         make(map[string]*websocket.Conn),
		disconnectedPlayers: make(map[string]time.Time),
	}

	server.handlers["connect"] = server.handleConnect
	server.handlers["game:new"] = server.handleNewGame
	server.handlers["game:join"] = server.handleJoinGame
	server.handlers["game:turn"] = server.handleGameTurn
	server.handlers[payloadActionGameLeave] = server.handleGameLeave

	return server
}

// Start serves /ws on port until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", that)

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}

	go that.monitorDisconnected(ctx)

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// ServeHTTP upgrades the request and processes messages until the client goes away.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := websocket.Accept(writer, req, &websocket.AcceptOptions{OriginPatterns: []string{"*"}})
	if err != nil {
		log.Error("failed to accept websocket", "error", err)
		return
	}

	defer conn.CloseNow()

	log.Info("WebSocket connection established")

	err = that.handleMessages(req.Context(), conn)
	that.handleDisconnect(conn)

	if err != nil {
		log.Error("error handling messages", "error", err)
		return
	}

	conn.Close(websocket.StatusNormalClosure, "")
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := conn.Read(ctx)
		if isClosed(err) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		var msg Message
		if err = json.Unmarshal(data, &msg); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			if err = that.sendErrorResponse(ctx, conn, "", "malformed message"); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[msg.Action]
		if !ok {
			log.Warn("unknown action", "action", msg.Action)
			if err = that.sendErrorResponse(ctx, conn, msg.Action, "unknown action"); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, &msg, conn); err != nil {
			log.Error("error processing message", "action", msg.Action, "error", err)
		}
	}
}

func isClosed(err error) bool {
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return true
	default:
		return false
	}
}

func (that *Server) register(playerID string, conn *websocket.Conn) {
	that.connectionsMutex.Lock()
	that.connections[playerID] = conn
	that.connectionsMutex.Unlock()

	that.playerReconnected(playerID)
}

func (that *Server) connection(playerID string) (*websocket.Conn, bool) {
	that.connectionsMutex.RLock()
	defer that.connectionsMutex.RUnlock()

	conn, ok := that.connections[playerID]
	return conn, ok
}

// monitorDisconnected ends games of players that did not come back in time.
func (that *Server) monitorDisconnected(ctx context.Context) {
	ticker := time.NewTicker(reconnectTimeout / 3)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			for _, playerID := range that.expiredPlayers(now) {
				that.handleOpponentOut(ctx, playerID)
			}
		}
	}
}

func (that *Server) expiredPlayers(now time.Time) []string {
	that.disconnectedMutex.Lock()
	defer that.disconnectedMutex.Unlock()

	var expired []string
	for playerID, at := range that.disconnectedPlayers {
		if now.Sub(at) >= reconnectTimeout {
			expired = append(expired, playerID)
			delete(that.disconnectedPlayers, playerID)
		}
	}

	return expired
}
