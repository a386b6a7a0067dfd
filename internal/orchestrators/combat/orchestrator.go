// Package combat implements the combat orchestrator: it resolves
// character ids against the stores, runs the combat engine over
// snapshots, and reconciles the outcome back into whichever store each
// side came from.
package combat

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dvaquero/mazmorra/internal/engine"
	"github.com/dvaquero/mazmorra/internal/entities"
	"github.com/dvaquero/mazmorra/internal/errors"
	playerrepo "github.com/dvaquero/mazmorra/internal/repositories/player"
	worldrepo "github.com/dvaquero/mazmorra/internal/repositories/world"
)

// Experience granted to a player for winning a fight
const victoryExperience = 50

// Service defines the interface for combat operations
type Service interface {
	// GetCharacter returns character attributes, players first
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)

	// ResolveCombat runs a fight between two characters and reconciles
	// the outcome into the stores
	ResolveCombat(ctx context.Context, input *ResolveCombatInput) (*ResolveCombatOutput, error)

	// UpdateCharacter applies a whitelisted attribute update
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	PlayerRepo playerrepo.Repository
	WorldRepo  worldrepo.Repository
	Engine     engine.Engine
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
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo playerrepo.Repository
	worldRepo  worldrepo.Repository
	engine     engine.Engine

	// locks serializes fights per combatant id, so two concurrent
	// resolutions touching the same character cannot interleave their
	// read-modify-write cycles
	locks sync.Map // string -> *sync.Mutex
}

// NewOrchestrator creates a new combat orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		playerRepo: cfg.PlayerRepo,
		worldRepo:  cfg.WorldRepo,
		engine:     cfg.Engine,
	}, nil
}

func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	// player registry wins on id clashes
	playerOut, err := o.playerRepo.Get(ctx, &playerrepo.GetInput{ID: input.ID})
	if err == nil {
		return &GetCharacterOutput{
			Character: &playerOut.Player.Combatant,
			Level:     playerOut.Player.Level,
		}, nil
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	enemyOut, err := o.worldRepo.FindEnemy(ctx, &worldrepo.FindEnemyInput{EnemyID: input.ID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("character %s not found", input.ID)
		}
		return nil, err
	}

	return &GetCharacterOutput{Character: enemyOut.Enemy}, nil
}

func (o *orchestrator) UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	unlock := o.lockIDs(input.ID)
	defer unlock()

	playerOut, err := o.playerRepo.Get(ctx, &playerrepo.GetInput{ID: input.ID})
	if err == nil {
		p := playerOut.Player
		p.ApplyUpdate(input.Update)
		if _, err := o.playerRepo.Save(ctx, &playerrepo.SaveInput{Player: p}); err != nil {
			return nil, err
		}
		return &UpdateCharacterOutput{Character: &p.Combatant}, nil
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	// enemies only expose the numeric combat fields through this path
	enemyOut, err := o.worldRepo.UpdateEnemy(ctx, &worldrepo.UpdateEnemyInput{
		EnemyID: input.ID,
		Update:  input.Update.CombatFieldsOnly(),
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("character %s not found", input.ID)
		}
		return nil, err
	}

	return &UpdateCharacterOutput{Character: enemyOut.Enemy}, nil
}

func (o *orchestrator) ResolveCombat(ctx context.Context, input *ResolveCombatInput) (*ResolveCombatOutput, error) {
	if input == nil || input.CombatantID1 == "" || input.CombatantID2 == "" {
		return nil, errors.InvalidArgument("two combatant IDs are required (p1 and p2)")
	}
	if input.CombatantID1 == input.CombatantID2 {
		return nil, errors.InvalidArgument("a character cannot fight itself")
	}

	unlock := o.lockIDs(input.CombatantID1, input.CombatantID2)
	defer unlock()

	c1, c1IsPlayer, err := o.resolveCombatant(ctx, input.CombatantID1)
	if err != nil {
		return nil, err
	}
	c2, c2IsPlayer, err := o.resolveCombatant(ctx, input.CombatantID2)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.ResolveCombat(ctx, &engine.ResolveCombatInput{
		Combatant1: c1,
		Combatant2: c2,
	})
	if err != nil {
		return nil, err
	}

	sides := []struct {
		final    entities.Combatant
		isPlayer bool
	}{
		{result.Combatant1, c1IsPlayer},
		{result.Combatant2, c2IsPlayer},
	}

	for _, side := range sides {
		if err := o.writeBack(ctx, side.final, side.isPlayer, result); err != nil {
			return nil, err
		}
	}

	slog.Info("combat resolved",
		"p1", input.CombatantID1,
		"p2", input.CombatantID2,
		"turns", len(result.Log),
		"winner", result.WinnerID,
		"draw", result.Draw,
	)

	return &ResolveCombatOutput{
		Log: result.Log,
		FinalState: map[string]CombatantState{
			result.Combatant1.ID: {Health: result.Combatant1.Health, IsAlive: result.Combatant1.IsAlive()},
			result.Combatant2.ID: {Health: result.Combatant2.Health, IsAlive: result.Combatant2.IsAlive()},
		},
		WinnerID: result.WinnerID,
		Draw:     result.Draw,
	}, nil
}

// resolveCombatant materializes a character snapshot for the fight:
// player registry first, then a scan of every room's enemy list. The
// snapshot is detached; fighting it does not touch the stores.
func (o *orchestrator) resolveCombatant(ctx context.Context, id string) (*entities.Combatant, bool, error) {
	playerOut, err := o.playerRepo.Get(ctx, &playerrepo.GetInput{ID: id})
	if err == nil {
		c := playerOut.Player.Combatant
		return &c, true, nil
	}
	if !errors.IsNotFound(err) {
		return nil, false, err
	}

	enemyOut, err := o.worldRepo.FindEnemy(ctx, &worldrepo.FindEnemyInput{EnemyID: id})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, false, errors.NotFoundf("character %s not found", id)
		}
		return nil, false, err
	}

	return enemyOut.Enemy, false, nil
}

// writeBack reconciles one side's final state into its origin store.
// Losers always get their health written back; a winning player also
// keeps its wounds and collects experience. A winning enemy is left
// untouched: its room copy never joined the fight.
func (o *orchestrator) writeBack(ctx context.Context, final entities.Combatant, isPlayer bool, result *engine.ResolveCombatOutput) error {
	won := final.ID == result.WinnerID

	if !result.Draw && won && !isPlayer {
		return nil
	}

	if isPlayer {
		playerOut, err := o.playerRepo.Get(ctx, &playerrepo.GetInput{ID: final.ID})
		if err != nil {
			return err
		}
		p := playerOut.Player
		p.Health = final.Health
		if won {
			p.GainExperience(victoryExperience)
		}
		_, err = o.playerRepo.Save(ctx, &playerrepo.SaveInput{Player: p})
		return err
	}

	health := final.Health
	_, err := o.worldRepo.UpdateEnemy(ctx, &worldrepo.UpdateEnemyInput{
		EnemyID: final.ID,
		Update:  entities.AttributeUpdate{Health: &health},
	})
	return err
}

// lockIDs acquires the per-character locks in sorted order so two
// overlapping fights can never deadlock.
func (o *orchestrator) lockIDs(ids ...string) func() {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	mus := make([]*sync.Mutex, 0, len(sorted))
	for _, id := range sorted {
		v, _ := o.locks.LoadOrStore(id, &sync.Mutex{})
		mu := v.(*sync.Mutex)
		mu.Lock()
		mus = append(mus, mu)
	}

	return func() {
		for i := len(mus) - 1; i >= 0; i-- {
			mus[i].Unlock()
		}
	}
}
