package game

import "fmt"

// ActionKind tags the variant held by an Action.
type ActionKind int

const (
	ActionMove ActionKind = iota
	ActionSwitch
	// ActionSkip is forced inaction. Turn rejects it from callers.
	ActionSkip
)

func (k ActionKind) String() string {
	switch k {
	case ActionMove:
		return "move"
	case ActionSwitch:
		return "switch"
	case ActionSkip:
		return "skip"
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// Action is one side's choice for a turn. Move is a slot index into the
// active combatant's moves; Target is a team index for switches.
type Action struct {
	Kind   ActionKind
	Move   int
	Target int
}

// UseMove selects the move in slot.
func UseMove(slot int) Action {
	return Action{Kind: ActionMove, Move: slot}
}

// SwitchTo brings in the team member at index.
func SwitchTo(index int) Action {
	return Action{Kind: ActionSwitch, Target: index}
}

var skip = Action{Kind: ActionSkip}

func (a Action) String() string {
	switch a.Kind {
	case ActionMove:
		return fmt.Sprintf("move(%d)", a.Move)
	case ActionSwitch:
		return fmt.Sprintf("switch(%d)", a.Target)
	}
	return a.Kind.String()
}
