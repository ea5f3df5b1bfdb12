package entity

import "strings"

const BotID = "bot"

type Player struct {
	ID     string `json:"id"`
	Mark   string `json:"mark,omitempty"`
	GameID string `json:"game_id,omitempty"`
}

// NewBotPlayer creates the engine-controlled player of a game. Its ID is scoped to the game.
func NewBotPlayer(gameID, mark string) *Player {
	return &Player{
		ID:     BotID + ":" + gameID,
		Mark:   mark,
		GameID: gameID,
	}
}

func (that *Player) IsBot() bool {
	return strings.HasPrefix(that.ID, BotID+":")
}
