// Package auth implements the auth orchestrator: player registration
// and login, both of which hand out a signed bearer token.
package auth

import (
	"context"
	"log/slog"

	tokens "github.com/dvaquero/mazmorra/internal/auth"
	"github.com/dvaquero/mazmorra/internal/errors"
	playersvc "github.com/dvaquero/mazmorra/internal/orchestrators/player"
	playerrepo "github.com/dvaquero/mazmorra/internal/repositories/player"
)

// Service defines the interface for auth operations
type Service interface {
	// Register creates a player and issues a token for it
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login issues a token for an existing player
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}

// Config holds the dependencies for the auth orchestrator
type Config struct {
	PlayerService playersvc.Service
	PlayerRepo    playerrepo.Repository
	TokenIssuer   *tokens.Issuer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerService == nil {
		vb.RequiredField("PlayerService")
	}
	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.TokenIssuer == nil {
		vb.RequiredField("TokenIssuer")
	}

	return vb.Build()
}

type orchestrator struct {
	playerService playersvc.Service
	playerRepo    playerrepo.Repository
	issuer        *tokens.Issuer
}

// NewOrchestrator creates a new auth orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		playerService: cfg.PlayerService,
		playerRepo:    cfg.PlayerRepo,
		issuer:        cfg.TokenIssuer,
	}, nil
}

func (o *orchestrator) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("player name is required")
	}

	created, err := o.playerService.CreatePlayer(ctx, &playersvc.CreatePlayerInput{Name: input.Name})
	if err != nil {
		return nil, err
	}

	token, err := o.issuer.Issue(created.Player.ID)
	if err != nil {
		return nil, err
	}

	slog.Info("player registered", "player_id", created.Player.ID)

	return &RegisterOutput{Token: token, Player: created.Player}, nil
}

func (o *orchestrator) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	playerOut, err := o.playerRepo.Get(ctx, &playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	token, err := o.issuer.Issue(playerOut.Player.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{Token: token, Player: playerOut.Player}, nil
}
