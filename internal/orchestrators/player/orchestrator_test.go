package player_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dvaquero/mazmorra/internal/entities"
	"github.com/dvaquero/mazmorra/internal/errors"
	"github.com/dvaquero/mazmorra/internal/orchestrators/player"
	"github.com/dvaquero/mazmorra/internal/pkg/idgen"
	playerrepo "github.com/dvaquero/mazmorra/internal/repositories/player"
	worldrepo "github.com/dvaquero/mazmorra/internal/repositories/world"
	"github.com/dvaquero/mazmorra/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx        context.Context
	playerRepo *playerrepo.InMemoryRepository
	worldRepo  *worldrepo.InMemoryRepository
	service    player.Service
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.playerRepo = playerrepo.NewInMemory()
	s.worldRepo = worldrepo.NewInMemory(testutils.CreateTestWorld(3, 3))

	svc, err := player.NewOrchestrator(&player.Config{
		PlayerRepo:  s.playerRepo,
		WorldRepo:   s.worldRepo,
		IDGenerator: idgen.NewSequential("player"),
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := player.NewOrchestrator(&player.Config{})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestCreatePlayer() {
	out, err := s.service.CreatePlayer(s.ctx, &player.CreatePlayerInput{Name: "Lira"})
	s.Require().NoError(err)

	p := out.Player
	s.Equal("Lira", p.Name)
	s.Equal(entities.KindPlayer, p.Kind)
	s.Equal(100, p.Health)
	s.Equal(1, p.Level)
	s.Equal(player.DefaultSpawnRoom, p.CurrentRoom)
	s.NotEmpty(p.ID)

	// creation reveals the spawn room
	visited, err := s.worldRepo.IsVisited(s.ctx, &worldrepo.IsVisitedInput{RoomID: player.DefaultSpawnRoom})
	s.Require().NoError(err)
	s.True(visited.Visited)
}

func (s *OrchestratorTestSuite) TestCreatePlayerWithExplicitID() {
	out, err := s.service.CreatePlayer(s.ctx, &player.CreatePlayerInput{Name: "Lira", ID: "player1"})
	s.Require().NoError(err)
	s.Equal("player1", out.Player.ID)
}

func (s *OrchestratorTestSuite) TestCreatePlayerDuplicateID() {
	_, err := s.service.CreatePlayer(s.ctx, &player.CreatePlayerInput{Name: "Lira", ID: "player1"})
	s.Require().NoError(err)

	_, err = s.service.CreatePlayer(s.ctx, &player.CreatePlayerInput{Name: "Otro", ID: "player1"})
	s.True(errors.IsAlreadyExists(err))

	// the original player is untouched
	got, err := s.service.GetPlayer(s.ctx, &player.GetPlayerInput{ID: "player1"})
	s.Require().NoError(err)
	s.Equal("Lira", got.Player.Name)
}

func (s *OrchestratorTestSuite) TestCreatePlayerRequiresName() {
	_, err := s.service.CreatePlayer(s.ctx, &player.CreatePlayerInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetPlayerNotFound() {
	_, err := s.service.GetPlayer(s.ctx, &player.GetPlayerInput{ID: "ghost"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGetCurrentRoomMarksVisited() {
	_, err := s.service.CreatePlayer(s.ctx, &player.CreatePlayerInput{Name: "Lira", ID: "player1"})
	s.Require().NoError(err)

	out, err := s.service.GetCurrentRoom(s.ctx, &player.GetCurrentRoomInput{PlayerID: "player1"})
	s.Require().NoError(err)
	s.Equal("0-0", out.Room.ID)

	visited, err := s.worldRepo.IsVisited(s.ctx, &worldrepo.IsVisitedInput{RoomID: "0-0"})
	s.Require().NoError(err)
	s.True(visited.Visited)
}

func (s *OrchestratorTestSuite) TestMoveToAdjacentRoom() {
	_, err := s.service.CreatePlayer(s.ctx, &player.CreatePlayerInput{Name: "Lira", ID: "player1"})
	s.Require().NoError(err)

	out, err := s.service.MoveToRoom(s.ctx, &player.MoveToRoomInput{PlayerID: "player1", RoomID: "1-0"})
	s.Require().NoError(err)
	s.Equal("1-0", out.Player.CurrentRoom)
	s.Equal("1-0", out.Room.ID)

	// the move is persisted and the room is revealed
	got, err := s.service.GetPlayer(s.ctx, &player.GetPlayerInput{ID: "player1"})
	s.Require().NoError(err)
	s.Equal("1-0", got.Player.CurrentRoom)

	visited, err := s.worldRepo.IsVisited(s.ctx, &worldrepo.IsVisitedInput{RoomID: "1-0"})
	s.Require().NoError(err)
	s.True(visited.Visited)
}

func (s *OrchestratorTestSuite) TestMoveToNonAdjacentRoom() {
	_, err := s.service.CreatePlayer(s.ctx, &player.CreatePlayerInput{Name: "Lira", ID: "player1"})
	s.Require().NoError(err)

	_, err = s.service.MoveToRoom(s.ctx, &player.MoveToRoomInput{PlayerID: "player1", RoomID: "2-2"})
	s.True(errors.IsInvalidArgument(err))

	// diagonals do not count either
	_, err = s.service.MoveToRoom(s.ctx, &player.MoveToRoomInput{PlayerID: "player1", RoomID: "1-1"})
	s.True(errors.IsInvalidArgument(err))

	got, err := s.service.GetPlayer(s.ctx, &player.GetPlayerInput{ID: "player1"})
	s.Require().NoError(err)
	s.Equal("0-0", got.Player.CurrentRoom)
}

func (s *OrchestratorTestSuite) TestMoveToUnknownRoom() {
	_, err := s.service.CreatePlayer(s.ctx, &player.CreatePlayerInput{Name: "Lira", ID: "player1"})
	s.Require().NoError(err)

	_, err = s.service.MoveToRoom(s.ctx, &player.MoveToRoomInput{PlayerID: "player1", RoomID: "9-9"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestMoveUnknownPlayer() {
	_, err := s.service.MoveToRoom(s.ctx, &player.MoveToRoomInput{PlayerID: "ghost", RoomID: "1-0"})
	s.True(errors.IsNotFound(err))
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
