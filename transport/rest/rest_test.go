package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
)

type stubGames map[string]*entity.Game

func (that stubGames) GetGameByID(_ context.Context, gameID string) (*entity.Game, error) {
	if gameID == "broken" {
		return nil, io.ErrUnexpectedEOF
	}

	game, ok := that[gameID]
	if !ok {
		return nil, fmt.Errorf("failed to get game: %w", repository.ErrGameNotFound)
	}

	return game, nil
}

func newTestServer(t *testing.T, games stubGames) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(NewMux(logger, games))
	t.Cleanup(srv.Close)

	return srv
}

func TestPing(t *testing.T) {
	// Given: a running REST server
	srv := newTestServer(t, stubGames{})

	// When: pinging it
	resp, err := http.Get(srv.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	// Then: it answers pong
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
}

func TestPing_Methods(t *testing.T) {
	srv := newTestServer(t, stubGames{})

	t.Run("HEAD has no body", func(t *testing.T) {
		resp, err := http.Head(srv.URL + "/ping")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, body)
	})

	t.Run("POST is rejected", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/ping", "text/plain", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}

func TestGetGame(t *testing.T) {
	game := entity.NewGame("abcd", entity.WithBotType, 3)
	game.Players = []*entity.Player{{ID: "p1", Mark: entity.PlayerX}}
	game.Board[4] = entity.PlayerX

	srv := newTestServer(t, stubGames{"abcd": game})

	t.Run("Existing game without players", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/game?id=abcd")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got entity.Game
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "abcd", got.ID)
		assert.Equal(t, 3, got.Size)
		assert.Equal(t, entity.PlayerX, got.Board[4])
		assert.Empty(t, got.Players)
		assert.Len(t, game.Players, 1, "stored game must not be modified")
	})

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{name: "Missing id", query: "", status: http.StatusBadRequest},
		{name: "Unknown game", query: "?id=zzzz", status: http.StatusNotFound},
		{name: "Storage failure", query: "?id=broken", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + "/game" + tt.query)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}

	t.Run("Wrong method", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/game?id=abcd", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}
