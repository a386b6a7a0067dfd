// Package player implements the player orchestrator: info lookup,
// creation, and movement through the world grid.
package player

import (
	"context"
	"log/slog"

	"github.com/dvaquero/mazmorra/internal/entities"
	"github.com/dvaquero/mazmorra/internal/errors"
	"github.com/dvaquero/mazmorra/internal/pkg/idgen"
	playerrepo "github.com/dvaquero/mazmorra/internal/repositories/player"
	worldrepo "github.com/dvaquero/mazmorra/internal/repositories/world"
)

// DefaultSpawnRoom is where new players appear
const DefaultSpawnRoom = "0-0"

// Service defines the interface for player operations
type Service interface {
	// GetPlayer returns a player's full info
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)

	// CreatePlayer registers a new player and marks its spawn room visited
	CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*CreatePlayerOutput, error)

	// GetCurrentRoom returns the player's room, marking it visited
	GetCurrentRoom(ctx context.Context, input *GetCurrentRoomInput) (*GetCurrentRoomOutput, error)

	// MoveToRoom moves the player to an adjacent room
	MoveToRoom(ctx context.Context, input *MoveToRoomInput) (*MoveToRoomOutput, error)
}

// Config holds the dependencies for the player orchestrator
type Config struct {
	PlayerRepo  playerrepo.Repository
	WorldRepo   worldrepo.Repository
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.WorldRepo == nil {
		vb.RequiredField("WorldRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo playerrepo.Repository
	worldRepo  worldrepo.Repository
	idGen      idgen.Generator
}

// NewOrchestrator creates a new player orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		playerRepo: cfg.PlayerRepo,
		worldRepo:  cfg.WorldRepo,
		idGen:      cfg.IDGenerator,
	}, nil
}

func (o *orchestrator) GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.playerRepo.Get(ctx, &playerrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	return &GetPlayerOutput{Player: out.Player}, nil
}

func (o *orchestrator) CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*CreatePlayerOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("player name is required")
	}

	id := input.ID
	if id == "" {
		id = o.idGen.Generate()
	}

	p := entities.NewPlayer(id, input.Name, DefaultSpawnRoom)
	created, err := o.playerRepo.Create(ctx, &playerrepo.CreateInput{Player: p})
	if err != nil {
		return nil, err
	}

	if _, err := o.worldRepo.MarkVisited(ctx, &worldrepo.MarkVisitedInput{RoomID: DefaultSpawnRoom}); err != nil {
		return nil, errors.Wrap(err, "failed to mark spawn room visited")
	}

	slog.Info("player created", "player_id", id, "name", input.Name)

	return &CreatePlayerOutput{Player: created.Player}, nil
}

func (o *orchestrator) GetCurrentRoom(ctx context.Context, input *GetCurrentRoomInput) (*GetCurrentRoomOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	playerOut, err := o.playerRepo.Get(ctx, &playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	roomOut, err := o.worldRepo.GetRoom(ctx, &worldrepo.GetRoomInput{ID: playerOut.Player.CurrentRoom})
	if err != nil {
		return nil, err
	}

	// looking at your own room reveals it
	if _, err := o.worldRepo.MarkVisited(ctx, &worldrepo.MarkVisitedInput{RoomID: roomOut.Room.ID}); err != nil {
		return nil, errors.Wrap(err, "failed to mark room visited")
	}

	return &GetCurrentRoomOutput{Room: roomOut.Room}, nil
}

func (o *orchestrator) MoveToRoom(ctx context.Context, input *MoveToRoomInput) (*MoveToRoomOutput, error) {
	if input == nil || input.PlayerID == "" || input.RoomID == "" {
		return nil, errors.InvalidArgument("player ID and room ID are required")
	}

	playerOut, err := o.playerRepo.Get(ctx, &playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	p := playerOut.Player

	roomOut, err := o.worldRepo.GetRoom(ctx, &worldrepo.GetRoomInput{ID: input.RoomID})
	if err != nil {
		return nil, err
	}

	adjacent, err := o.worldRepo.AreAdjacent(ctx, &worldrepo.AreAdjacentInput{
		RoomID1: p.CurrentRoom,
		RoomID2: input.RoomID,
	})
	if err != nil {
		return nil, err
	}
	if !adjacent.Adjacent {
		return nil, errors.InvalidArgumentf("room %s is not adjacent to %s", input.RoomID, p.CurrentRoom)
	}

	p.MoveToRoom(input.RoomID)
	if _, err := o.playerRepo.Save(ctx, &playerrepo.SaveInput{Player: p}); err != nil {
		return nil, err
	}

	if _, err := o.worldRepo.MarkVisited(ctx, &worldrepo.MarkVisitedInput{RoomID: input.RoomID}); err != nil {
		return nil, errors.Wrap(err, "failed to mark room visited")
	}

	slog.Info("player moved", "player_id", p.ID, "room_id", input.RoomID)

	return &MoveToRoomOutput{Player: p, Room: roomOut.Room}, nil
}
