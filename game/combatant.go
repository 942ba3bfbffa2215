package game

import (
	"fmt"

	"github.com/samber/lo"

	"gen1-battle/data"
)

// MaxMoves is the number of move slots a combatant has.
const MaxMoves = 4

// MoveSlot is one known move and its remaining uses.
type MoveSlot struct {
	ID    data.MoveID
	PP    int
	MaxPP int
}

// Combatant is one creature in battle. It is built once per team slot and
// mutated turn by turn; a fainted combatant stays in its team with HP 0.
type Combatant struct {
	Species *data.Species
	Level   int
	IVs     data.Stats
	EVs     data.Stats

	stats     data.Stats
	hp        int
	status    Status
	volatiles Volatile
	stages    [numStats]int
	moves     []MoveSlot

	// Overrides installed by Transform, Conversion and Mimic. They last
	// until the combatant leaves the field.
	types     data.Types
	current   data.Stats
	baseMoves []MoveSlot

	confusionTurns int
	substituteHP   int
	disabledSlot   int
	disabledTurns  int
	faintLogged    bool
}

// NewCombatant validates its inputs and derives the combatant's stats.
// IVs range over 0..15 and EVs over 0..255, the latter being the
// ceil(sqrt(stat experience)) term of the Generation I formula.
func NewCombatant(species *data.Species, level int, ivs, evs data.Stats, moves []data.MoveID) (*Combatant, error) {
	if species == nil {
		return nil, fmt.Errorf("nil species: %w", ErrInvalidCombatant)
	}
	if level < 1 || level > 100 {
		return nil, fmt.Errorf("%s level %d: %w", species.Name, level, ErrInvalidCombatant)
	}
	for _, v := range statValues(ivs) {
		if v < 0 || v > 15 {
			return nil, fmt.Errorf("%s iv %d out of range: %w", species.Name, v, ErrInvalidCombatant)
		}
	}
	for _, v := range statValues(evs) {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("%s ev %d out of range: %w", species.Name, v, ErrInvalidCombatant)
		}
	}
	if len(moves) == 0 || len(moves) > MaxMoves {
		return nil, fmt.Errorf("%s has %d moves: %w", species.Name, len(moves), ErrInvalidCombatant)
	}
	if len(lo.Uniq(moves)) != len(moves) {
		return nil, fmt.Errorf("%s has duplicate moves: %w", species.Name, ErrInvalidCombatant)
	}

	slots := make([]MoveSlot, 0, len(moves))
	for _, id := range moves {
		pp, err := data.BasePP(id)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", species.Name, err)
		}
		slots = append(slots, MoveSlot{ID: id, PP: pp, MaxPP: pp})
	}

	c := &Combatant{
		Species:      species,
		Level:        level,
		IVs:          ivs,
		EVs:          evs,
		moves:        slots,
		types:        species.Types,
		disabledSlot: -1,
	}
	c.stats = data.Stats{
		HP:      hpStat(species.Base.HP, ivs.HP, evs.HP, level),
		Attack:  otherStat(species.Base.Attack, ivs.Attack, evs.Attack, level),
		Defense: otherStat(species.Base.Defense, ivs.Defense, evs.Defense, level),
		Special: otherStat(species.Base.Special, ivs.Special, evs.Special, level),
		Speed:   otherStat(species.Base.Speed, ivs.Speed, evs.Speed, level),
	}
	c.current = c.stats
	c.hp = c.stats.HP
	return c, nil
}

func statValues(s data.Stats) []int {
	return []int{s.HP, s.Attack, s.Defense, s.Special, s.Speed}
}

func hpStat(base, iv, ev, level int) int {
	return ((base+iv)*2+ev/4)*level/100 + level + 10
}

func otherStat(base, iv, ev, level int) int {
	return ((base+iv)*2+ev/4)*level/100 + 5
}

// Name is the species name.
func (c *Combatant) Name() string { return c.Species.Name }

func (c *Combatant) HP() int    { return c.hp }
func (c *Combatant) MaxHP() int { return c.stats.HP }

// Stats returns the derived maximum stats, ignoring stages and status.
func (c *Combatant) Stats() data.Stats { return c.current }

// Types returns the current typing, which Conversion and Transform may
// have replaced.
func (c *Combatant) Types() data.Types { return c.types }

func (c *Combatant) Status() Status      { return c.status }
func (c *Combatant) Volatiles() Volatile { return c.volatiles }

// Stage returns the current stage of stat.
func (c *Combatant) Stage(stat Stat) int {
	if stat <= StatHP || stat >= numStats {
		return 0
	}
	return c.stages[stat]
}

// Moves returns a copy of the move slots.
func (c *Combatant) Moves() []MoveSlot {
	return append([]MoveSlot(nil), c.moves...)
}

func (c *Combatant) rawStat(stat Stat) int {
	switch stat {
	case StatHP:
		return c.stats.HP
	case StatAttack:
		return c.current.Attack
	case StatDefense:
		return c.current.Defense
	case StatSpecial:
		return c.current.Special
	case StatSpeed:
		return c.current.Speed
	case StatAccuracy, StatEvasion:
		return 100
	}
	return 0
}

// EffectiveStat returns stat after stages and status. HP is never staged.
// Accuracy and evasion are reported on a base of 100. Paralysis quarters
// speed and burn halves attack, both after staging.
func (c *Combatant) EffectiveStat(stat Stat) int {
	if stat == StatHP {
		return c.stats.HP
	}
	num, den := stageRatio(c.Stage(stat))
	v := c.rawStat(stat) * num / den
	switch {
	case stat == StatSpeed && c.status == StatusParalysis:
		v /= 4
	case stat == StatAttack && c.status == StatusBurn:
		v /= 2
	}
	return max(v, 1)
}

// ApplyDamage lowers HP by amount, never below zero, and returns the HP
// actually lost.
func (c *Combatant) ApplyDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	lost := min(amount, c.hp)
	c.hp -= lost
	return lost
}

// Heal raises HP by amount, never above the maximum, and returns the HP
// actually restored.
func (c *Combatant) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	gained := min(amount, c.stats.HP-c.hp)
	c.hp += gained
	return gained
}

// SetStatus applies s only when no status is present. The first status
// always wins until it is cured. It reports whether s was applied.
func (c *Combatant) SetStatus(s Status) bool {
	if c.status != StatusNone || s == StatusNone {
		return false
	}
	c.status = s
	return true
}

// ForceStatus overwrites any existing status. Only Rest uses it.
func (c *Combatant) ForceStatus(s Status) {
	c.status = s
}

func (c *Combatant) CureStatus() {
	c.status = StatusNone
}

// ModifyStat adds delta stages to stat, clamped to [-6, 6], and returns the
// number of stages actually applied. HP cannot be staged; it is a no-op
// returning 0.
func (c *Combatant) ModifyStat(stat Stat, delta int) int {
	if stat <= StatHP || stat >= numStats {
		return 0
	}
	before := c.stages[stat]
	c.stages[stat] = min(max(before+delta, minStage), maxStage)
	return c.stages[stat] - before
}

// ResetStatStages zeroes every stage.
func (c *Combatant) ResetStatStages() {
	c.stages = [numStats]int{}
}

func (c *Combatant) AddVolatile(v Volatile)      { c.volatiles |= v }
func (c *Combatant) RemoveVolatile(v Volatile)   { c.volatiles &^= v }
func (c *Combatant) HasVolatile(v Volatile) bool { return c.volatiles&v != 0 }

// ClearVolatiles drops every switch-scoped condition and reverts the
// overrides of Transform, Conversion and Mimic.
func (c *Combatant) ClearVolatiles() {
	c.volatiles = 0
	c.confusionTurns = 0
	c.substituteHP = 0
	c.disabledSlot = -1
	c.disabledTurns = 0
	c.types = c.Species.Types
	c.current = c.stats
	if c.baseMoves != nil {
		for i := range c.baseMoves {
			if i < len(c.moves) && c.moves[i].ID == c.baseMoves[i].ID {
				c.baseMoves[i].PP = c.moves[i].PP
			}
		}
		c.moves = c.baseMoves
		c.baseMoves = nil
	}
}

// IsFainted reports whether HP has reached zero.
func (c *Combatant) IsFainted() bool {
	return c.hp <= 0
}

func (c *Combatant) saveMoves() {
	if c.baseMoves == nil {
		c.baseMoves = append([]MoveSlot(nil), c.moves...)
	}
}

// usable reports whether slot can be chosen this turn.
func (c *Combatant) usable(slot int) bool {
	return slot >= 0 && slot < len(c.moves) && c.moves[slot].PP > 0 && slot != c.disabledSlot
}

// mustStruggle reports whether no slot is usable.
func (c *Combatant) mustStruggle() bool {
	for i := range c.moves {
		if c.usable(i) {
			return false
		}
	}
	return true
}
