package game

import (
	"github.com/samber/lo"

	"gen1-battle/data"
)

// MoveSnapshot is a known move as shown to its owner.
type MoveSnapshot struct {
	Name     string
	Type     data.Type
	Power    int
	Accuracy int
	PP       int
	MaxPP    int
}

// CombatantSnapshot is the visible state of one team member.
type CombatantSnapshot struct {
	Species string
	Types   data.Types
	Level   int
	HP      int
	MaxHP   int
	Fainted bool
	Status  Status
	// Boosts holds the non-zero stat stages keyed by stat name.
	Boosts map[string]int
	Moves  []MoveSnapshot
}

// SideSnapshot is one player's half of a Snapshot. Active is -1 until a
// combatant has been sent out.
type SideSnapshot struct {
	Side   Side
	Name   string
	Active int
	Team   []CombatantSnapshot
}

// ActiveCombatant returns the active member, or nil.
func (s *SideSnapshot) ActiveCombatant() *CombatantSnapshot {
	if s.Active < 0 || s.Active >= len(s.Team) {
		return nil
	}
	return &s.Team[s.Active]
}

// Member returns the team member with the given species name, or nil.
func (s *SideSnapshot) Member(species string) *CombatantSnapshot {
	_, i, ok := lo.FindIndexOf(s.Team, func(c CombatantSnapshot) bool { return c.Species == species })
	if !ok {
		return nil
	}
	return &s.Team[i]
}

// Snapshot is a read-only copy of a battle. It is produced by
// Battle.Snapshot and rebuilt from the protocol stream by the parser.
type Snapshot struct {
	Turn   int
	Over   bool
	Winner Side
	Sides  [2]SideSnapshot
}

// NewSnapshot returns an empty snapshot for a battle that has not started.
func NewSnapshot() *Snapshot {
	s := &Snapshot{Winner: SideNone}
	for _, side := range sides {
		s.Sides[side] = SideSnapshot{Side: side, Name: side.String(), Active: -1}
	}
	return s
}

// Snapshot copies the battle state. Move lists are only filled in for the
// viewer's own side; pass SideNone for a spectator view.
func (b *Battle) Snapshot(viewer Side) Snapshot {
	snap := Snapshot{Turn: b.turn, Over: b.over, Winner: b.winner}
	for _, side := range sides {
		s := b.sides[side]
		snap.Sides[side] = SideSnapshot{
			Side:   side,
			Name:   s.name,
			Active: s.active,
			Team: lo.Map(s.team, func(c *Combatant, _ int) CombatantSnapshot {
				return snapshotOf(c, side == viewer)
			}),
		}
	}
	return snap
}

func snapshotOf(c *Combatant, withMoves bool) CombatantSnapshot {
	cs := CombatantSnapshot{
		Species: c.Name(),
		Types:   c.Types(),
		Level:   c.Level,
		HP:      c.HP(),
		MaxHP:   c.MaxHP(),
		Fainted: c.IsFainted(),
		Status:  c.Status(),
		Boosts:  make(map[string]int),
	}
	for stat := StatAttack; stat < numStats; stat++ {
		if v := c.Stage(stat); v != 0 {
			cs.Boosts[stat.String()] = v
		}
	}
	if withMoves {
		cs.Moves = lo.Map(c.Moves(), func(m MoveSlot, _ int) MoveSnapshot {
			mv := data.MustMove(m.ID)
			return MoveSnapshot{
				Name:     mv.Name,
				Type:     mv.Type,
				Power:    mv.Power,
				Accuracy: mv.Accuracy,
				PP:       m.PP,
				MaxPP:    m.MaxPP,
			}
		})
	}
	return cs
}
