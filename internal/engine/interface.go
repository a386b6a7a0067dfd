// Package engine implements combat resolution. The engine is
// stateless: it receives two combatant snapshots, simulates a bounded
// sequence of turns, and returns the log plus final state. Writing the
// outcome back into the stores is the caller's job.
package engine

import "context"

// Engine resolves combat between two combatants
type Engine interface {
	// ResolveCombat runs a full fight to its terminal state
	ResolveCombat(ctx context.Context, input *ResolveCombatInput) (*ResolveCombatOutput, error)
}
