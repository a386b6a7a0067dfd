// Package world provides the store that owns the generated world: the
// room grid, each room's embedded enemy list, and the visited-room set.
// The world is rebuilt at process start, so there is no durable backend.
package world

import (
	"context"

	"github.com/dvaquero/mazmorra/internal/entities"
)

// Repository defines the storage interface for the world
type Repository interface {
	// GetRoom retrieves a room by id
	GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error)

	// GetRoomByCoordinates retrieves a room by grid position
	GetRoomByCoordinates(ctx context.Context, input *GetRoomByCoordinatesInput) (*GetRoomByCoordinatesOutput, error)

	// ListRooms returns every room in generation order
	ListRooms(ctx context.Context, input *ListRoomsInput) (*ListRoomsOutput, error)

	// ListVisitedRooms returns the rooms whose ids are in the visited set
	ListVisitedRooms(ctx context.Context, input *ListVisitedRoomsInput) (*ListVisitedRoomsOutput, error)

	// MarkVisited adds a room id to the visited set
	MarkVisited(ctx context.Context, input *MarkVisitedInput) (*MarkVisitedOutput, error)

	// IsVisited reports whether a room id is in the visited set
	IsVisited(ctx context.Context, input *IsVisitedInput) (*IsVisitedOutput, error)

	// AreAdjacent reports whether two rooms are axis-aligned neighbors
	AreAdjacent(ctx context.Context, input *AreAdjacentInput) (*AreAdjacentOutput, error)

	// AdjacentRooms returns the up-to-four existing neighbors of a room
	AdjacentRooms(ctx context.Context, input *AdjacentRoomsInput) (*AdjacentRoomsOutput, error)

	// FindEnemy scans every room's enemy list for a matching id
	FindEnemy(ctx context.Context, input *FindEnemyInput) (*FindEnemyOutput, error)

	// UpdateEnemy applies a partial attribute update to an enemy in place
	UpdateEnemy(ctx context.Context, input *UpdateEnemyInput) (*UpdateEnemyOutput, error)
}

// GetRoomInput defines the request for retrieving a room by id
type GetRoomInput struct {
	ID string
}

// GetRoomOutput defines the response for retrieving a room
type GetRoomOutput struct {
	Room *entities.Room
}

// GetRoomByCoordinatesInput defines the request for a coordinate lookup
type GetRoomByCoordinatesInput struct {
	X int
	Y int
}

// GetRoomByCoordinatesOutput defines the response for a coordinate lookup
type GetRoomByCoordinatesOutput struct {
	Room *entities.Room
}

// ListRoomsInput defines the request for listing all rooms
type ListRoomsInput struct{}

// ListRoomsOutput defines the response for listing all rooms
type ListRoomsOutput struct {
	Rooms []*entities.Room
	// Visited carries the visited flag per room id, for admin listings
	Visited map[string]bool
}

// ListVisitedRoomsInput defines the request for listing visited rooms
type ListVisitedRoomsInput struct{}

// ListVisitedRoomsOutput defines the response for listing visited rooms
type ListVisitedRoomsOutput struct {
	Rooms []*entities.Room
}

// MarkVisitedInput defines the request for marking a room visited
type MarkVisitedInput struct {
	RoomID string
}

// MarkVisitedOutput defines the response for marking a room visited
type MarkVisitedOutput struct{}

// IsVisitedInput defines the request for a visited check
type IsVisitedInput struct {
	RoomID string
}

// IsVisitedOutput defines the response for a visited check
type IsVisitedOutput struct {
	Visited bool
}

// AreAdjacentInput defines the request for an adjacency check
type AreAdjacentInput struct {
	RoomID1 string
	RoomID2 string
}

// AreAdjacentOutput defines the response for an adjacency check
type AreAdjacentOutput struct {
	Adjacent bool
}

// AdjacentRoomsInput defines the request for neighbor enumeration
type AdjacentRoomsInput struct {
	RoomID string
}

// AdjacentRoomsOutput defines the response for neighbor enumeration
type AdjacentRoomsOutput struct {
	Rooms []*entities.Room
}

// FindEnemyInput defines the request for locating an enemy
type FindEnemyInput struct {
	EnemyID string
}

// FindEnemyOutput defines the response for locating an enemy
type FindEnemyOutput struct {
	Enemy  *entities.Combatant
	RoomID string
}

// UpdateEnemyInput defines the request for mutating an enemy in place
type UpdateEnemyInput struct {
	EnemyID string
	Update  entities.AttributeUpdate
}

// UpdateEnemyOutput defines the response for mutating an enemy
type UpdateEnemyOutput struct {
	Enemy *entities.Combatant
}
