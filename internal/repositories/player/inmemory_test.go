package player_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dvaquero/mazmorra/internal/errors"
	player "github.com/dvaquero/mazmorra/internal/repositories/player"
	"github.com/dvaquero/mazmorra/internal/testutils"
)

// RepositoryTestSuite runs the same contract against any Repository
// implementation.
type RepositoryTestSuite struct {
	suite.Suite
	repo player.Repository
	ctx  context.Context
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	p := testutils.CreateTestPlayer("player1")

	created, err := s.repo.Create(s.ctx, &player.CreateInput{Player: p})
	s.Require().NoError(err)
	s.Equal("player1", created.Player.ID)

	got, err := s.repo.Get(s.ctx, &player.GetInput{ID: "player1"})
	s.Require().NoError(err)
	s.Equal(p.Name, got.Player.Name)
	s.Equal(100, got.Player.Health)
	s.NotNil(got.Player.Inventory)
}

func (s *RepositoryTestSuite) TestCreateDuplicate() {
	p := testutils.CreateTestPlayer("dup")

	_, err := s.repo.Create(s.ctx, &player.CreateInput{Player: p})
	s.Require().NoError(err)

	other := testutils.CreateTestPlayer("dup")
	other.Name = "Impostor"
	_, err = s.repo.Create(s.ctx, &player.CreateInput{Player: other})
	s.True(errors.IsAlreadyExists(err))

	// original untouched
	got, err := s.repo.Get(s.ctx, &player.GetInput{ID: "dup"})
	s.Require().NoError(err)
	s.Equal("Aventurero de prueba", got.Player.Name)
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, &player.GetInput{ID: "ghost"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestSave() {
	p := testutils.CreateTestPlayer("hero")
	_, err := s.repo.Create(s.ctx, &player.CreateInput{Player: p})
	s.Require().NoError(err)

	p.Health = 42
	p.GainExperience(100)
	_, err = s.repo.Save(s.ctx, &player.SaveInput{Player: p})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, &player.GetInput{ID: "hero"})
	s.Require().NoError(err)
	s.Equal(52, got.Player.Health) // 42 + level-up heal
	s.Equal(2, got.Player.Level)
}

func (s *RepositoryTestSuite) TestSaveMissing() {
	p := testutils.CreateTestPlayer("nobody")
	_, err := s.repo.Save(s.ctx, &player.SaveInput{Player: p})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestExists() {
	p := testutils.CreateTestPlayer("present")
	_, err := s.repo.Create(s.ctx, &player.CreateInput{Player: p})
	s.Require().NoError(err)

	out, err := s.repo.Exists(s.ctx, &player.ExistsInput{ID: "present"})
	s.Require().NoError(err)
	s.True(out.Exists)

	out, err = s.repo.Exists(s.ctx, &player.ExistsInput{ID: "absent"})
	s.Require().NoError(err)
	s.False(out.Exists)
}

func (s *RepositoryTestSuite) TestStoredCopyIsIsolated() {
	p := testutils.CreateTestPlayer("isolated")
	_, err := s.repo.Create(s.ctx, &player.CreateInput{Player: p})
	s.Require().NoError(err)

	// mutating the caller's copy must not leak into the store
	p.Health = 1

	got, err := s.repo.Get(s.ctx, &player.GetInput{ID: "isolated"})
	s.Require().NoError(err)
	s.Equal(100, got.Player.Health)
}

type InMemoryRepositoryTestSuite struct {
	RepositoryTestSuite
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.repo = player.NewInMemory()
	s.ctx = context.Background()
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}
