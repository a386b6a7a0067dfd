package room

import (
	"github.com/dvaquero/mazmorra/internal/entities"
)

// ListVisitedRoomsInput defines the request for listing visited rooms
type ListVisitedRoomsInput struct{}

// ListVisitedRoomsOutput defines the response for listing visited rooms
type ListVisitedRoomsOutput struct {
	Rooms []*entities.Room
}

// GetRoomInput defines the request for room detail
type GetRoomInput struct {
	ID string
}

// GetRoomOutput defines the response for room detail
type GetRoomOutput struct {
	Room *entities.Room
}

// GetAdjacentRoomsInput defines the request for neighbor listing
type GetAdjacentRoomsInput struct {
	ID string
}

// GetAdjacentRoomsOutput defines the response for neighbor listing
type GetAdjacentRoomsOutput struct {
	Rooms []*entities.Room
}

// ListAllRoomsInput defines the request for the admin listing
type ListAllRoomsInput struct{}

// ListAllRoomsOutput defines the response for the admin listing
type ListAllRoomsOutput struct {
	Rooms []entities.RoomSummary
}
