package combat

import (
	"github.com/dvaquero/mazmorra/internal/engine"
	"github.com/dvaquero/mazmorra/internal/entities"
)

// GetCharacterInput defines the request for character attributes
type GetCharacterInput struct {
	ID string
}

// GetCharacterOutput defines the response for character attributes.
// Level is only meaningful when the character is a player.
type GetCharacterOutput struct {
	Character *entities.Combatant
	Level     int
}

// UpdateCharacterInput defines the request for a character update
type UpdateCharacterInput struct {
	ID     string
	Update entities.AttributeUpdate
}

// UpdateCharacterOutput defines the response for a character update
type UpdateCharacterOutput struct {
	Character *entities.Combatant
}

// CombatantState is the per-combatant summary reported after a fight
type CombatantState struct {
	Health  int  `json:"health"`
	IsAlive bool `json:"isAlive"`
}

// ResolveCombatInput defines the request for resolving a combat
type ResolveCombatInput struct {
	CombatantID1 string
	CombatantID2 string
}

// ResolveCombatOutput defines the response for resolving a combat.
// WinnerID is empty when the fight ended in a draw.
type ResolveCombatOutput struct {
	Log        []engine.LogEntry
	FinalState map[string]CombatantState
	WinnerID   string
	Draw       bool
}
