package game

import "errors"

var (
	// ErrInvalidAction is returned when an action names a move slot or team
	// member that cannot be used this turn.
	ErrInvalidAction = errors.New("invalid action")
	// ErrInvalidCombatant is returned by NewCombatant for out-of-range inputs.
	ErrInvalidCombatant = errors.New("invalid combatant")
	// ErrInvalidTeam is returned by NewBattle for malformed teams.
	ErrInvalidTeam = errors.New("invalid team")
	// ErrBattleOver is returned when a finished battle is driven further.
	ErrBattleOver = errors.New("battle is over")
)
