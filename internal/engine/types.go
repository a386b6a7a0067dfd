package engine

import (
	"github.com/dvaquero/mazmorra/internal/entities"
)

// AttackType identifies how a turn's damage was dealt
type AttackType string

// Attack types
const (
	AttackPhysical AttackType = "physical"
	AttackMagic    AttackType = "magic"
)

// LogEntry records the outcome of a single turn
type LogEntry struct {
	Turn                    int        `json:"turn"`
	Attacker                string     `json:"attacker"`
	AttackType              AttackType `json:"attackType"`
	Damage                  int        `json:"damage"`
	Defender                string     `json:"defender"`
	DefenderHealthRemaining int        `json:"defenderHealthRemaining"`
}

// ResolveCombatInput defines the request for resolving a combat. The
// snapshots are copied internally; the caller's values are not touched.
type ResolveCombatInput struct {
	Combatant1 *entities.Combatant
	Combatant2 *entities.Combatant
}

// ResolveCombatOutput defines the response for resolving a combat.
// Combatant1/Combatant2 carry the final state of the two inputs, in
// order. On a draw both ids are empty and Draw is set.
type ResolveCombatOutput struct {
	Log        []LogEntry
	Combatant1 entities.Combatant
	Combatant2 entities.Combatant
	WinnerID   string
	LoserID    string
	Draw       bool
}
