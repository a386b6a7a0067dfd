package player

import (
	"github.com/dvaquero/mazmorra/internal/entities"
)

// GetPlayerInput defines the request for player info
type GetPlayerInput struct {
	ID string
}

// GetPlayerOutput defines the response for player info
type GetPlayerOutput struct {
	Player *entities.Player
}

// CreatePlayerInput defines the request for creating a player. ID is
// optional; a timestamp id is generated when absent.
type CreatePlayerInput struct {
	Name string
	ID   string
}

// CreatePlayerOutput defines the response for creating a player
type CreatePlayerOutput struct {
	Player *entities.Player
}

// GetCurrentRoomInput defines the request for the player's room
type GetCurrentRoomInput struct {
	PlayerID string
}

// GetCurrentRoomOutput defines the response for the player's room
type GetCurrentRoomOutput struct {
	Room *entities.Room
}

// MoveToRoomInput defines the request for moving a player
type MoveToRoomInput struct {
	PlayerID string
	RoomID   string
}

// MoveToRoomOutput defines the response for moving a player
type MoveToRoomOutput struct {
	Player *entities.Player
	Room   *entities.Room
}
