// Package entities provides the core data structures for the game:
// combatants, players, rooms, items, and the generated world.
package entities

import (
	"github.com/dvaquero/mazmorra/internal/pkg/dice"
)

// Kind distinguishes the two combatant populations
type Kind string

// Combatant kinds
const (
	KindPlayer Kind = "player"
	KindEnemy  Kind = "enemy"
)

// Combatant is the stat bag shared by every fighting entity. Players
// embed it; room enemies are stored as plain Combatants.
type Combatant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Kind      Kind   `json:"type"`
	Health    int    `json:"health"`
	MaxHealth int    `json:"maxHealth"`
	Attack    int    `json:"attack"`
	Defense   int    `json:"defense"`
	Magic     int    `json:"magic"`
	Strength  int    `json:"strength"`
}

// TakeDamage applies incoming damage reduced by defense. At least 1
// point always lands, and health never drops below zero. Returns the
// damage actually inflicted.
func (c *Combatant) TakeDamage(amount int) int {
	actual := amount - c.Defense
	if actual < 1 {
		actual = 1
	}
	c.Health -= actual
	if c.Health < 0 {
		c.Health = 0
	}
	return actual
}

// Heal restores health capped at MaxHealth and returns the amount
// actually recovered.
func (c *Combatant) Heal(amount int) int {
	previous := c.Health
	c.Health += amount
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
	return c.Health - previous
}

// AttackDamage computes physical damage: (attack + strength/2) scaled
// by a random factor in [0.8, 1.2).
func (c *Combatant) AttackDamage(r dice.Roller) int {
	base := float64(c.Attack) + float64(c.Strength)*0.5
	factor := 0.8 + r.Float64()*0.4
	return int(base * factor)
}

// MagicDamage computes magic damage: magic*1.2 scaled by a random
// factor in [0.7, 1.3).
func (c *Combatant) MagicDamage(r dice.Roller) int {
	base := float64(c.Magic) * 1.2
	factor := 0.7 + r.Float64()*0.6
	return int(base * factor)
}

// IsAlive reports whether the combatant can still fight
func (c *Combatant) IsAlive() bool {
	return c.Health > 0
}

// AttributeUpdate is a partial update of combatant attributes. Nil
// fields are left untouched. Level, experience, and inventory are
// deliberately absent: they are never writable through this path.
type AttributeUpdate struct {
	Name      *string `json:"name"`
	Health    *int    `json:"health"`
	MaxHealth *int    `json:"maxHealth"`
	Attack    *int    `json:"attack"`
	Defense   *int    `json:"defense"`
	Magic     *int    `json:"magic"`
	Strength  *int    `json:"strength"`
}

// ApplyUpdate applies the non-nil fields of the update, then clamps
// health back under MaxHealth.
func (c *Combatant) ApplyUpdate(update AttributeUpdate) {
	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.Health != nil {
		c.Health = *update.Health
	}
	if update.MaxHealth != nil {
		c.MaxHealth = *update.MaxHealth
	}
	if update.Attack != nil {
		c.Attack = *update.Attack
	}
	if update.Defense != nil {
		c.Defense = *update.Defense
	}
	if update.Magic != nil {
		c.Magic = *update.Magic
	}
	if update.Strength != nil {
		c.Strength = *update.Strength
	}

	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
}

// CombatFieldsOnly strips the fields enemies are not allowed to change:
// name and maxHealth stay fixed for room enemies.
func (u AttributeUpdate) CombatFieldsOnly() AttributeUpdate {
	u.Name = nil
	u.MaxHealth = nil
	return u
}
