// Package room implements the room orchestrator. Room detail is gated
// behind the visited set: a room must have been seen before its full
// content is exposed. The admin listing bypasses the gate.
package room

import (
	"context"

	"github.com/dvaquero/mazmorra/internal/entities"
	"github.com/dvaquero/mazmorra/internal/errors"
	worldrepo "github.com/dvaquero/mazmorra/internal/repositories/world"
)

// Service defines the interface for room operations
type Service interface {
	// ListVisitedRooms returns the rooms discovered so far
	ListVisitedRooms(ctx context.Context, input *ListVisitedRoomsInput) (*ListVisitedRoomsOutput, error)

	// GetRoom returns full room detail, subject to the visited gate
	GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error)

	// GetAdjacentRooms returns a visited room's existing neighbors
	GetAdjacentRooms(ctx context.Context, input *GetAdjacentRoomsInput) (*GetAdjacentRoomsOutput, error)

	// ListAllRooms returns every room summary with its visited flag
	ListAllRooms(ctx context.Context, input *ListAllRoomsInput) (*ListAllRoomsOutput, error)
}

// Config holds the dependencies for the room orchestrator
type Config struct {
	WorldRepo worldrepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.WorldRepo == nil {
		vb.RequiredField("WorldRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	worldRepo worldrepo.Repository
}

// NewOrchestrator creates a new room orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{worldRepo: cfg.WorldRepo}, nil
}

func (o *orchestrator) ListVisitedRooms(ctx context.Context, input *ListVisitedRoomsInput) (*ListVisitedRoomsOutput, error) {
	out, err := o.worldRepo.ListVisitedRooms(ctx, &worldrepo.ListVisitedRoomsInput{})
	if err != nil {
		return nil, err
	}

	return &ListVisitedRoomsOutput{Rooms: out.Rooms}, nil
}

// checkGate returns the room if it exists and has been visited
func (o *orchestrator) checkGate(ctx context.Context, roomID string) (*entities.Room, error) {
	roomOut, err := o.worldRepo.GetRoom(ctx, &worldrepo.GetRoomInput{ID: roomID})
	if err != nil {
		return nil, err
	}

	visited, err := o.worldRepo.IsVisited(ctx, &worldrepo.IsVisitedInput{RoomID: roomID})
	if err != nil {
		return nil, err
	}
	if !visited.Visited {
		return nil, errors.PermissionDeniedf("room %s has not been visited yet", roomID)
	}

	return roomOut.Room, nil
}

func (o *orchestrator) GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("room ID is required")
	}

	room, err := o.checkGate(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetRoomOutput{Room: room}, nil
}

func (o *orchestrator) GetAdjacentRooms(ctx context.Context, input *GetAdjacentRoomsInput) (*GetAdjacentRoomsOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("room ID is required")
	}

	// the gate applies to the source room; neighbors are listed even
	// when unvisited, so the player can see where to go next
	if _, err := o.checkGate(ctx, input.ID); err != nil {
		return nil, err
	}

	out, err := o.worldRepo.AdjacentRooms(ctx, &worldrepo.AdjacentRoomsInput{RoomID: input.ID})
	if err != nil {
		return nil, err
	}

	return &GetAdjacentRoomsOutput{Rooms: out.Rooms}, nil
}

func (o *orchestrator) ListAllRooms(ctx context.Context, input *ListAllRoomsInput) (*ListAllRoomsOutput, error) {
	out, err := o.worldRepo.ListRooms(ctx, &worldrepo.ListRoomsInput{})
	if err != nil {
		return nil, err
	}

	summaries := make([]entities.RoomSummary, 0, len(out.Rooms))
	for _, r := range out.Rooms {
		summaries = append(summaries, entities.RoomSummary{
			ID:          r.ID,
			Name:        r.Name,
			Type:        r.Type,
			Coordinates: r.Coordinates,
			Visited:     out.Visited[r.ID],
		})
	}

	return &ListAllRoomsOutput{Rooms: summaries}, nil
}
