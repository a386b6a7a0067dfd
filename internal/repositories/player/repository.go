// Package player provides the durable registry of players. Two
// implementations exist: an in-memory map (the default) and a Redis
// store for deployments that want players to outlive the process.
package player

import (
	"context"

	"github.com/dvaquero/mazmorra/internal/entities"
)

// Repository defines the storage interface for players
type Repository interface {
	// Create stores a new player; fails if the id is taken
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get retrieves a player by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Save overwrites an existing player
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Exists reports whether a player id is taken
	Exists(ctx context.Context, input *ExistsInput) (*ExistsOutput, error)
}

// CreateInput defines the request for creating a player
type CreateInput struct {
	Player *entities.Player
}

// CreateOutput defines the response for creating a player
type CreateOutput struct {
	Player *entities.Player
}

// GetInput defines the request for retrieving a player
type GetInput struct {
	ID string
}

// GetOutput defines the response for retrieving a player
type GetOutput struct {
	Player *entities.Player
}

// SaveInput defines the request for overwriting a player
type SaveInput struct {
	Player *entities.Player
}

// SaveOutput defines the response for overwriting a player
type SaveOutput struct {
	Player *entities.Player
}

// ExistsInput defines the request for checking a player id
type ExistsInput struct {
	ID string
}

// ExistsOutput defines the response for checking a player id
type ExistsOutput struct {
	Exists bool
}
