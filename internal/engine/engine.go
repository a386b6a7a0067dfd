package engine

import (
	"context"

	"github.com/dvaquero/mazmorra/internal/entities"
	"github.com/dvaquero/mazmorra/internal/errors"
	"github.com/dvaquero/mazmorra/internal/pkg/dice"
)

// Combat stops after this many turns with both sides alive. The
// minimum-1 damage floor already guarantees progress; the cap bounds
// worst-case fight length.
const maxTurns = 20

// Probability thresholds, compared against a uniform draw in [0,1)
const (
	magicAttackThreshold   = 0.7 // draw > 0.7 -> magic (30%)
	firstAttackerThreshold = 0.5 // draw > 0.5 -> combatant 1 opens
)

// Config holds the dependencies for the combat engine
type Config struct {
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type combatEngine struct {
	roller dice.Roller
}

// New creates a combat engine with the provided dependencies
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &combatEngine{roller: cfg.Roller}, nil
}

// ResolveCombat simulates turns until one side dies or the turn cap is
// reached. Roles alternate strictly; each turn draws an attack type,
// applies damage, and appends a log entry.
func (e *combatEngine) ResolveCombat(ctx context.Context, input *ResolveCombatInput) (*ResolveCombatOutput, error) {
	if input == nil || input.Combatant1 == nil || input.Combatant2 == nil {
		return nil, errors.InvalidArgument("two combatants are required")
	}
	if input.Combatant1.ID == input.Combatant2.ID {
		return nil, errors.InvalidArgument("a combatant cannot fight itself")
	}

	c1 := *input.Combatant1
	c2 := *input.Combatant2

	var attacker, defender *entities.Combatant
	if e.roller.Float64() > firstAttackerThreshold {
		attacker, defender = &c1, &c2
	} else {
		attacker, defender = &c2, &c1
	}

	log := make([]LogEntry, 0, maxTurns)
	for turn := 1; c1.IsAlive() && c2.IsAlive() && turn <= maxTurns; turn++ {
		attackType := AttackPhysical
		var damage int
		if e.roller.Float64() > magicAttackThreshold {
			attackType = AttackMagic
			damage = attacker.MagicDamage(e.roller)
		} else {
			damage = attacker.AttackDamage(e.roller)
		}

		actual := defender.TakeDamage(damage)

		log = append(log, LogEntry{
			Turn:                    turn,
			Attacker:                attacker.ID,
			AttackType:              attackType,
			Damage:                  actual,
			Defender:                defender.ID,
			DefenderHealthRemaining: defender.Health,
		})

		attacker, defender = defender, attacker
	}

	output := &ResolveCombatOutput{
		Log:        log,
		Combatant1: c1,
		Combatant2: c2,
	}

	switch {
	case !c1.IsAlive():
		output.WinnerID = c2.ID
		output.LoserID = c1.ID
	case !c2.IsAlive():
		output.WinnerID = c1.ID
		output.LoserID = c2.ID
	default:
		output.Draw = true
	}

	return output, nil
}
