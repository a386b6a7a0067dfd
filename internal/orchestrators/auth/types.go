package auth

import (
	"github.com/dvaquero/mazmorra/internal/entities"
)

// RegisterInput defines the request for registering a new player
type RegisterInput struct {
	Name string
}

// RegisterOutput defines the response for registration
type RegisterOutput struct {
	Token  string
	Player *entities.Player
}

// LoginInput defines the request for logging in an existing player
type LoginInput struct {
	PlayerID string
}

// LoginOutput defines the response for login
type LoginOutput struct {
	Token  string
	Player *entities.Player
}
