package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errStorageIsFull = errors.New("storage is full")

func TestGameService_CreateGame(t *testing.T) {
	ctx := context.Background()
	conf := config.Game{DefaultSize: 3, MaxSize: 4}

	t.Run("Uses the default size", func(t *testing.T) {
		// Given: a repository that accepts the game
		repo := &mockGameRepo{}
		repo.On("CreateOrUpdate", mock.Anything, mock.AnythingOfType("*entity.Game")).Return(nil).Once()

		// When: a game is created without a size
		game, player, err := NewGameService(repo, conf).CreateGame(ctx, &entity.Player{ID: "p1"}, entity.WithBotType, 0)

		// Then: it is a 3x3 game owned by the player as X
		require.NoError(t, err)
		assert.Equal(t, 3, game.Size)
		assert.Len(t, game.Board, 9)
		assert.Equal(t, entity.PlayerX, player.Mark)
		assert.Equal(t, game.ID, player.GameID)
		repo.AssertExpectations(t)
	})

	t.Run("Rejects sizes out of range", func(t *testing.T) {
		repo := &mockGameRepo{}
		svc := NewGameService(repo, conf)

		for _, size := range []int{1, 5} {
			_, _, err := svc.CreateGame(ctx, &entity.Player{ID: "p1"}, entity.WithBotType, size)
			require.ErrorIs(t, err, apperror.ErrInvalidBoardSize)
		}

		repo.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
	})

	t.Run("Storage failure", func(t *testing.T) {
		repo := &mockGameRepo{}
		repo.On("CreateOrUpdate", mock.Anything, mock.Anything).Return(errStorageIsFull).Once()

		_, _, err := NewGameService(repo, conf).CreateGame(ctx, &entity.Player{ID: "p1"}, entity.PrivateType, 4)

		require.ErrorIs(t, err, errStorageIsFull)
	})
}
