package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type mockPlayerService struct {
	mock.Mock
}

func (that *mockPlayerService) CreatePlayer(ctx context.Context) (*entity.Player, error) {
	args := that.Called(ctx)
	player, _ := args.Get(0).(*entity.Player)
	return player, args.Error(1)
}

func (that *mockPlayerService) GetPlayerByID(ctx context.Context, id string) (*entity.Player, error) {
	args := that.Called(ctx, id)
	player, _ := args.Get(0).(*entity.Player)
	return player, args.Error(1)
}

type mockGameService struct {
	mock.Mock
}

func (that *mockGameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

type mockGamePlayService struct {
	mock.Mock
}

func (that *mockGamePlayService) GetOrCreateGame(ctx context.Context, player *entity.Player, gameType string, size int) (*entity.Game, error) {
	args := that.Called(ctx, player, gameType, size)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGamePlayService) JoinGameByID(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	args := that.Called(ctx, gameID, playerID)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGamePlayService) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	args := that.Called(ctx, playerID, cell)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGamePlayService) CleanupGame(ctx context.Context, game *entity.Game) {
	that.Called(ctx, game)
}
