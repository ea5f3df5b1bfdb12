package service

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlayerService_CreatePlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("Every player gets its own id", func(t *testing.T) {
		// Given: a repository that stores players
		repo := &mockPlayerRepo{}
		repo.On("CreateOrUpdate", mock.Anything, mock.AnythingOfType("*entity.Player")).Return(nil).Twice()
		svc := NewPlayerService(repo)

		// When: two players are created
		first, err := svc.CreatePlayer(ctx)
		require.NoError(t, err)
		second, err := svc.CreatePlayer(ctx)
		require.NoError(t, err)

		// Then: their ids differ
		assert.NotEmpty(t, first.ID)
		assert.NotEqual(t, first.ID, second.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Storage failure", func(t *testing.T) {
		repo := &mockPlayerRepo{}
		repo.On("CreateOrUpdate", mock.Anything, mock.AnythingOfType("*entity.Player")).Return(errStorageIsFull).Once()

		player, err := NewPlayerService(repo).CreatePlayer(ctx)

		require.ErrorIs(t, err, errStorageIsFull)
		assert.Nil(t, player)
	})
}

func TestPlayerService_UpdatePlayer(t *testing.T) {
	// Given: a repository that rejects writes
	repo := &mockPlayerRepo{}
	player := &entity.Player{ID: "p1"}
	repo.On("CreateOrUpdate", mock.Anything, player).Return(errStorageIsFull).Once()

	// When: the player is updated
	err := NewPlayerService(repo).UpdatePlayer(context.Background(), player)

	// Then: the cause is kept
	require.ErrorIs(t, err, errStorageIsFull)
}
